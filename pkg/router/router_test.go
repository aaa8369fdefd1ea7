package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamResolution(t *testing.T) {
	r := New()
	r.Get("/get_image/{blob_name}", "products.image", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, Param(req, "blob_name"))
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get_image/ab12_cover.png", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ab12_cover.png", rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	r := New()
	r.Post("/add_product", "products.add", func(w http.ResponseWriter, req *http.Request) {})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/add_product", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNamedRoutes(t *testing.T) {
	r := New()
	r.Get("/get_image/{blob_name}", "products.image", func(w http.ResponseWriter, req *http.Request) {})
	r.Delete("/delete_product/{id}", "products.delete", func(w http.ResponseWriter, req *http.Request) {})

	url, err := r.URL("products.image", map[string]string{"blob_name": "a.png"})
	require.NoError(t, err)
	assert.Equal(t, "/get_image/a.png", url)

	_, err = r.URL("products.delete", nil)
	assert.Error(t, err, "unfilled params must not produce a URL")

	_, err = r.URL("nope", nil)
	assert.Error(t, err)
}

func TestRoutesListsRegistrationOrder(t *testing.T) {
	r := New()
	r.Get("/", "index", func(w http.ResponseWriter, req *http.Request) {})
	r.Post("/add_product", "products.add", func(w http.ResponseWriter, req *http.Request) {})

	infos := r.Routes()
	require.Len(t, infos, 2)
	assert.Equal(t, RouteInfo{Method: "GET", Path: "/", Name: "index"}, infos[0])
	assert.Equal(t, RouteInfo{Method: "POST", Path: "/add_product", Name: "products.add"}, infos[1])
}

func TestGroupPrefixing(t *testing.T) {
	r := New()
	g := r.Group("/api")
	g.Get("/products", "api.products", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
