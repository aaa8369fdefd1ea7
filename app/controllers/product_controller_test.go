package controllers

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/mangamart/app/models"
	"github.com/shashiranjanraj/mangamart/app/services"
	"github.com/shashiranjanraj/mangamart/pkg/router"
	"github.com/shashiranjanraj/mangamart/pkg/testkit"
)

type stubStore struct {
	putErr    error
	getErr    error
	deleteErr error
	getData   []byte
}

func (s *stubStore) PutStream(path string, r io.Reader) error { return s.putErr }
func (s *stubStore) Get(path string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.getData, nil
}
func (s *stubStore) Delete(path string) error { return s.deleteErr }
func (s *stubStore) URL(path string) string   { return "https://cdn.test/uploads/" + path }

type stubRepo struct {
	createErr error
	allErr    error
	findErr   error
	deleteErr error

	rows       []models.Product
	findResult models.Product
}

func (s *stubRepo) Create(p *models.Product) error { return s.createErr }
func (s *stubRepo) All() ([]models.Product, error) {
	if s.allErr != nil {
		return nil, s.allErr
	}
	return s.rows, nil
}
func (s *stubRepo) Find(id uint) (models.Product, error) {
	if s.findErr != nil {
		return models.Product{}, s.findErr
	}
	return s.findResult, nil
}
func (s *stubRepo) Delete(id uint) error { return s.deleteErr }

// newTestHandler mounts a ProductController on the real router so URL
// params resolve the same way they do in production.
func newTestHandler(store *stubStore, repo *stubRepo) http.Handler {
	c := NewProductController(services.NewProductService(store, repo))

	r := router.New()
	r.Post("/add_product", "products.add", c.Add)
	r.Get("/list_products", "products.list", c.List)
	r.Get("/get_image/{blob_name}", "products.image", c.Image)
	r.Delete("/delete_product/{id}", "products.delete", c.Delete)
	return r.Handler()
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestAddProduct(t *testing.T) {
	handler := newTestHandler(&stubStore{}, &stubRepo{})

	body, ct := multipartBody(t,
		map[string]string{"name": "Poster", "price": "12.50"},
		"image", "cover.png", []byte("png-bytes"))

	req := httptest.NewRequest(http.MethodPost, "/add_product", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testkit.AssertStatus(t, rec, http.StatusOK)

	var out map[string]string
	testkit.DecodeJSON(t, rec, &out)
	assert.Equal(t, "Product added successfully", out["message"])
	assert.Contains(t, out["image_url"], "https://cdn.test/uploads/")
	assert.Contains(t, out["image_url"], "_cover.png")
}

func TestAddProductMissingFields(t *testing.T) {
	handler := newTestHandler(&stubStore{}, &stubRepo{})

	body, ct := multipartBody(t,
		map[string]string{"price": "12.50"},
		"image", "cover.png", []byte("png-bytes"))

	req := httptest.NewRequest(http.MethodPost, "/add_product", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testkit.AssertStatus(t, rec, http.StatusBadRequest)
	testkit.AssertJSONBody(t, rec, `{"error": "Missing name or price"}`)
}

func TestAddProductBadExtension(t *testing.T) {
	handler := newTestHandler(&stubStore{}, &stubRepo{})

	body, ct := multipartBody(t,
		map[string]string{"name": "Poster", "price": "12.50"},
		"image", "script.exe", []byte("mz"))

	req := httptest.NewRequest(http.MethodPost, "/add_product", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testkit.AssertStatus(t, rec, http.StatusBadRequest)
	testkit.AssertJSONBody(t, rec, `{"error": "Invalid file type: script.exe"}`)
}

func TestAddProductUploadFailure(t *testing.T) {
	handler := newTestHandler(&stubStore{putErr: errors.New("bucket offline")}, &stubRepo{})

	body, ct := multipartBody(t,
		map[string]string{"name": "Poster", "price": "12.50"},
		"image", "cover.png", []byte("png-bytes"))

	req := httptest.NewRequest(http.MethodPost, "/add_product", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testkit.AssertStatus(t, rec, http.StatusInternalServerError)
	testkit.AssertJSONBody(t, rec, `{"error": "Failed to upload image: bucket offline"}`)
}

func TestListProducts(t *testing.T) {
	repo := &stubRepo{rows: []models.Product{
		{ID: 1, Name: "Poster", Price: 12.5, ImageURL: "https://cdn.test/uploads/ab_poster.png"},
	}}
	handler := newTestHandler(&stubStore{}, repo)

	req := httptest.NewRequest(http.MethodGet, "/list_products", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testkit.AssertStatus(t, rec, http.StatusOK)
	testkit.AssertJSONBody(t, rec, `{
		"products": [
			{"id": 1, "name": "Poster", "price": 12.5, "blob_name": "ab_poster.png"}
		]
	}`)
}

func TestListProductsEmpty(t *testing.T) {
	handler := newTestHandler(&stubStore{}, &stubRepo{})

	req := httptest.NewRequest(http.MethodGet, "/list_products", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testkit.AssertStatus(t, rec, http.StatusOK)
	testkit.AssertJSONBody(t, rec, `{"products": []}`)
}

func TestGetImage(t *testing.T) {
	store := &stubStore{getData: []byte{0x89, 'P', 'N', 'G'}}
	handler := newTestHandler(store, &stubRepo{})

	req := httptest.NewRequest(http.MethodGet, "/get_image/ab_poster.png", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testkit.AssertStatus(t, rec, http.StatusOK)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, store.getData, rec.Body.Bytes())
}

func TestGetImageUnsupportedType(t *testing.T) {
	handler := newTestHandler(&stubStore{}, &stubRepo{})

	req := httptest.NewRequest(http.MethodGet, "/get_image/notes.txt", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testkit.AssertStatus(t, rec, http.StatusBadRequest)
	testkit.AssertJSONBody(t, rec, `{"error": "Unsupported image type"}`)
}

func TestDeleteProduct(t *testing.T) {
	repo := &stubRepo{findResult: models.Product{ID: 7, ImageURL: "https://cdn.test/uploads/ab.png"}}
	handler := newTestHandler(&stubStore{}, repo)

	req := httptest.NewRequest(http.MethodDelete, "/delete_product/7", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testkit.AssertStatus(t, rec, http.StatusOK)
	testkit.AssertJSONBody(t, rec, `{"success": true, "message": "Product 7 deleted successfully"}`)
}

func TestDeleteProductNotFound(t *testing.T) {
	repo := &stubRepo{findErr: gorm.ErrRecordNotFound}
	handler := newTestHandler(&stubStore{}, repo)

	req := httptest.NewRequest(http.MethodDelete, "/delete_product/42", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testkit.AssertStatus(t, rec, http.StatusNotFound)
	testkit.AssertJSONBody(t, rec, `{"error": "Product not found"}`)
}

func TestDeleteProductBadID(t *testing.T) {
	handler := newTestHandler(&stubStore{}, &stubRepo{})

	req := httptest.NewRequest(http.MethodDelete, "/delete_product/abc", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testkit.AssertStatus(t, rec, http.StatusNotFound)
	testkit.AssertJSONBody(t, rec, `{"error": "Product not found"}`)
}

func TestDeleteProductRowFailure(t *testing.T) {
	repo := &stubRepo{
		findResult: models.Product{ID: 7, ImageURL: "https://cdn.test/uploads/ab.png"},
		deleteErr:  errors.New("deadlock"),
	}
	handler := newTestHandler(&stubStore{}, repo)

	req := httptest.NewRequest(http.MethodDelete, "/delete_product/7", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testkit.AssertStatus(t, rec, http.StatusInternalServerError)
	testkit.AssertJSONBody(t, rec, `{"success": false, "error": "deadlock"}`)
}

func TestDeleteProductBlobFailureStillSucceeds(t *testing.T) {
	repo := &stubRepo{findResult: models.Product{ID: 7, ImageURL: "https://cdn.test/uploads/ab.png"}}
	handler := newTestHandler(&stubStore{deleteErr: errors.New("container unreachable")}, repo)

	req := httptest.NewRequest(http.MethodDelete, "/delete_product/7", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testkit.AssertStatus(t, rec, http.StatusOK)
	testkit.AssertJSONBody(t, rec, `{"success": true, "message": "Product 7 deleted successfully"}`)
}
