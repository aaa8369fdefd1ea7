package testkit

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatus checks the recorded response code with testify.
func AssertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	assert.Equal(t, want, rec.Code,
		"HTTP status code mismatch\nbody: %s", rec.Body.String())
}

// AssertJSONBody deep-compares the recorded body against expected JSON
// after normalising both through json.Unmarshal, so key order and
// whitespace never matter.
func AssertJSONBody(t *testing.T, rec *httptest.ResponseRecorder, expected string) {
	t.Helper()

	var expVal, actVal interface{}

	require.NoError(t, json.Unmarshal([]byte(expected), &expVal),
		"expected body is not valid JSON")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actVal),
		"actual response is not valid JSON\nbody: %s", rec.Body.String())

	assert.Equal(t, expVal, actVal, "response body mismatch")
}

// DecodeJSON unmarshals the recorded body into dest, failing the test
// on malformed JSON.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest),
		"response is not valid JSON\nbody: %s", rec.Body.String())
}
