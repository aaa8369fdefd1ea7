// Package testkit holds shared test helpers: an HTTP mock transport for
// outgoing requests and a few testify-based assertion shortcuts.
package testkit

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	mmhttp "github.com/shashiranjanraj/mangamart/pkg/http"
)

// Stub describes one expected outgoing HTTP call and the synthetic
// response to return for it. An empty Method or URLPrefix matches
// anything.
type Stub struct {
	Method    string
	URLPrefix string
	Status    int
	Body      string
	Err       error // returned instead of a response when set
}

type stubEntry struct {
	stub  Stub
	calls int
}

// MockTransport implements http.RoundTripper. It matches outgoing
// requests against its stubs and returns synthetic responses instead of
// making real network calls.
//
//	mt := testkit.NewMockTransport(testkit.Stub{URLPrefix: "https://api.example.com", Status: 200, Body: `{}`})
//	restore := mt.Install()
//	defer restore()
//	// ... run test ...
//	mt.AssertAllCalled(t)
type MockTransport struct {
	mu      sync.Mutex
	entries []*stubEntry
}

// NewMockTransport builds a MockTransport from the given stubs.
// Stubs are matched in order; the first match wins.
func NewMockTransport(stubs ...Stub) *MockTransport {
	mt := &MockTransport{}
	for _, s := range stubs {
		mt.entries = append(mt.entries, &stubEntry{stub: s})
	}
	return mt
}

// Install swaps the mock onto the shared outgoing HTTP client and
// returns a restore func for defer.
func (mt *MockTransport) Install() func() {
	original := mmhttp.DefaultClient.Transport
	mmhttp.DefaultClient.Transport = mt
	return func() {
		mmhttp.DefaultClient.Transport = original
	}
}

// RoundTrip intercepts the outgoing request and returns a synthetic
// response. Requests with no matching stub fail loudly so a test never
// talks to the network by accident.
func (mt *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	for _, e := range mt.entries {
		if e.stub.Method != "" && e.stub.Method != req.Method {
			continue
		}
		if !strings.HasPrefix(req.URL.String(), e.stub.URLPrefix) {
			continue
		}

		e.calls++
		if e.stub.Err != nil {
			return nil, e.stub.Err
		}
		return buildResponse(req, e.stub), nil
	}

	return nil, fmt.Errorf("testkit: unexpected outgoing HTTP call %s %s — no matching stub", req.Method, req.URL)
}

// Calls reports how many requests matched the stub at index i.
func (mt *MockTransport) Calls(i int) int {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if i < 0 || i >= len(mt.entries) {
		return 0
	}
	return mt.entries[i].calls
}

// AssertAllCalled fails the test if any stub was never triggered.
func (mt *MockTransport) AssertAllCalled(t *testing.T) {
	t.Helper()
	mt.mu.Lock()
	defer mt.mu.Unlock()

	for _, e := range mt.entries {
		if e.calls == 0 {
			t.Errorf("testkit: stub %s %q was never called", e.stub.Method, e.stub.URLPrefix)
		}
	}
}

func buildResponse(req *http.Request, s Stub) *http.Response {
	code := s.Status
	if code == 0 {
		code = http.StatusOK
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return &http.Response{
		StatusCode: code,
		Status:     fmt.Sprintf("%d %s", code, http.StatusText(code)),
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(s.Body)),
		Request:    req,
	}
}
