package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shashiranjanraj/mangamart/app/services"
	"github.com/shashiranjanraj/mangamart/pkg/router"
	"github.com/shashiranjanraj/mangamart/pkg/testkit"
)

func newCharacterHandler() http.Handler {
	c := NewCharacterController(services.NewCharacterService())

	r := router.New()
	r.Post("/get-characters", "characters.lookup", c.Lookup)
	return r.Handler()
}

func TestGetCharacters(t *testing.T) {
	mt := testkit.NewMockTransport(testkit.Stub{
		Method:    "POST",
		URLPrefix: "https://api.openai.com/v1/chat/completions",
		Status:    200,
		Body:      `{"choices":[{"message":{"content":"1. Luffy\n2. Zoro\n3. Nami\n4. Sanji\n5. Chopper"}}]}`,
	})
	restore := mt.Install()
	defer restore()

	req := httptest.NewRequest(http.MethodPost, "/get-characters",
		strings.NewReader(`{"manga_name": "One Piece"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newCharacterHandler().ServeHTTP(rec, req)

	testkit.AssertStatus(t, rec, http.StatusOK)
	testkit.AssertJSONBody(t, rec,
		`{"characters": "1. Luffy\n2. Zoro\n3. Nami\n4. Sanji\n5. Chopper"}`)
	mt.AssertAllCalled(t)
}

func TestGetCharactersUpstreamFailure(t *testing.T) {
	mt := testkit.NewMockTransport(testkit.Stub{
		Method:    "POST",
		URLPrefix: "https://api.openai.com/v1/chat/completions",
		Status:    500,
		Body:      `{"error":{"message":"upstream down"}}`,
	})
	restore := mt.Install()
	defer restore()

	req := httptest.NewRequest(http.MethodPost, "/get-characters",
		strings.NewReader(`{"manga_name": "One Piece"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newCharacterHandler().ServeHTTP(rec, req)

	testkit.AssertStatus(t, rec, http.StatusInternalServerError)
}

func TestGetCharactersMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/get-characters",
		strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newCharacterHandler().ServeHTTP(rec, req)

	testkit.AssertStatus(t, rec, http.StatusInternalServerError)
}
