package services

import (
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/mangamart/app/models"
)

// fakeStore counts calls so tests can assert which collaborators were
// touched and in what circumstances.
type fakeStore struct {
	putCalls    int
	getCalls    int
	deleteCalls int

	putErr    error
	getErr    error
	deleteErr error

	lastPutPath    string
	lastPutData    []byte
	lastDeletePath string
	getData        []byte
}

func (f *fakeStore) PutStream(path string, r io.Reader) error {
	f.putCalls++
	f.lastPutPath = path
	if r != nil {
		f.lastPutData, _ = io.ReadAll(r)
	}
	return f.putErr
}

func (f *fakeStore) Get(path string) ([]byte, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getData, nil
}

func (f *fakeStore) Delete(path string) error {
	f.deleteCalls++
	f.lastDeletePath = path
	return f.deleteErr
}

func (f *fakeStore) URL(path string) string {
	return "https://cdn.test/uploads/" + path
}

type fakeRepo struct {
	createCalls int
	allCalls    int
	findCalls   int
	deleteCalls int

	createErr error
	allErr    error
	findErr   error
	deleteErr error

	rows       []models.Product
	findResult models.Product
	created    *models.Product
}

func (f *fakeRepo) Create(p *models.Product) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	p.ID = uint(len(f.rows) + 1)
	f.created = p
	return nil
}

func (f *fakeRepo) All() ([]models.Product, error) {
	f.allCalls++
	if f.allErr != nil {
		return nil, f.allErr
	}
	return f.rows, nil
}

func (f *fakeRepo) Find(id uint) (models.Product, error) {
	f.findCalls++
	if f.findErr != nil {
		return models.Product{}, f.findErr
	}
	return f.findResult, nil
}

func (f *fakeRepo) Delete(id uint) error {
	f.deleteCalls++
	return f.deleteErr
}

func newTestService() (*ProductService, *fakeStore, *fakeRepo) {
	store := &fakeStore{}
	repo := &fakeRepo{}
	return NewProductService(store, repo), store, repo
}

func requireKind(t *testing.T, err error, kind Kind) *Error {
	t.Helper()
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, kind, serr.Kind)
	return serr
}

func TestCreateMissingFields(t *testing.T) {
	svc, store, repo := newTestService()

	for _, tc := range []struct{ name, price string }{
		{"", "9.99"},
		{"Poster", ""},
		{"", ""},
	} {
		_, err := svc.Create(tc.name, tc.price, strings.NewReader("img"), "a.png")
		serr := requireKind(t, err, KindValidation)
		assert.Equal(t, "Missing name or price", serr.Message)
	}

	assert.Zero(t, store.putCalls, "validation must short-circuit before upload")
	assert.Zero(t, repo.createCalls)
}

func TestCreateInvalidPrice(t *testing.T) {
	svc, store, _ := newTestService()

	_, err := svc.Create("Poster", "abc", strings.NewReader("img"), "a.png")
	serr := requireKind(t, err, KindValidation)
	assert.Equal(t, "Price must be a valid number", serr.Message)
	assert.Zero(t, store.putCalls)
}

func TestCreateNegativePriceAccepted(t *testing.T) {
	svc, _, repo := newTestService()

	result, err := svc.Create("Refund Voucher", "-5", strings.NewReader("img"), "a.png")
	require.NoError(t, err)
	assert.Equal(t, -5.0, result.Price)
	assert.Equal(t, 1, repo.createCalls)
}

func TestCreateNoImage(t *testing.T) {
	svc, store, _ := newTestService()

	_, err := svc.Create("Poster", "9.99", nil, "")
	serr := requireKind(t, err, KindValidation)
	assert.Equal(t, "No image uploaded", serr.Message)
	assert.Zero(t, store.putCalls)
}

func TestCreateRejectsExtension(t *testing.T) {
	svc, store, repo := newTestService()

	for _, name := range []string{"script.exe", "archive.tar.gz", "noext", "image.PNG.txt"} {
		_, err := svc.Create("Poster", "9.99", strings.NewReader("img"), name)
		serr := requireKind(t, err, KindValidation)
		assert.Equal(t, "Invalid file type: "+name, serr.Message)
	}

	assert.Zero(t, store.putCalls)
	assert.Zero(t, repo.createCalls)
}

func TestCreateUploadsThenInserts(t *testing.T) {
	svc, store, repo := newTestService()

	result, err := svc.Create("Poster", "12.50", strings.NewReader("img-bytes"), "My Cover.PNG")
	require.NoError(t, err)

	// Blob name: 8 random bytes hex-encoded, underscore, sanitized name.
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}_My_Cover\.PNG$`), store.lastPutPath)
	assert.Equal(t, []byte("img-bytes"), store.lastPutData)

	require.Equal(t, 1, repo.createCalls)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Poster", repo.created.Name)
	assert.Equal(t, 12.50, repo.created.Price)
	assert.Equal(t, store.URL(store.lastPutPath), repo.created.ImageURL)

	assert.Equal(t, "Poster", result.Name)
	assert.Equal(t, store.URL(store.lastPutPath), result.ImageURL)
}

func TestCreateUploadFailure(t *testing.T) {
	svc, store, repo := newTestService()
	store.putErr = errors.New("bucket offline")

	_, err := svc.Create("Poster", "9.99", strings.NewReader("img"), "a.png")
	serr := requireKind(t, err, KindStorage)
	assert.Equal(t, "Failed to upload image: bucket offline", serr.Message)
	assert.Zero(t, repo.createCalls, "insert must not run after a failed upload")
}

func TestCreateInsertFailureLeavesBlob(t *testing.T) {
	svc, store, repo := newTestService()
	repo.createErr = errors.New("constraint violation")

	_, err := svc.Create("Poster", "9.99", strings.NewReader("img"), "a.png")
	serr := requireKind(t, err, KindPersistence)
	assert.Equal(t, "Failed to save product to database: constraint violation", serr.Message)

	// The uploaded blob is orphaned, never compensated.
	assert.Equal(t, 1, store.putCalls)
	assert.Zero(t, store.deleteCalls)
}

func TestListProjectsBlobName(t *testing.T) {
	svc, _, repo := newTestService()
	repo.rows = []models.Product{
		{ID: 1, Name: "Poster", Price: 12.5, ImageURL: "https://cdn.test/uploads/ab12_poster.png"},
		{ID: 2, Name: "Keychain", Price: 4.5, ImageURL: "https://cdn.test/uploads/cd34_key.jpg"},
	}

	out, err := svc.List()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, ProductSummary{ID: 1, Name: "Poster", Price: 12.5, BlobName: "ab12_poster.png"}, out[0])
	assert.Equal(t, ProductSummary{ID: 2, Name: "Keychain", Price: 4.5, BlobName: "cd34_key.jpg"}, out[1])
}

func TestListEmpty(t *testing.T) {
	svc, _, _ := newTestService()

	out, err := svc.List()
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestListRepoFailure(t *testing.T) {
	svc, _, repo := newTestService()
	repo.allErr = errors.New("db gone")

	_, err := svc.List()
	requireKind(t, err, KindPersistence)
}

func TestImageUnknownExtension(t *testing.T) {
	svc, store, _ := newTestService()

	for _, name := range []string{"notes.txt", "noext", "archive.png.zip"} {
		_, _, err := svc.Image(name)
		serr := requireKind(t, err, KindValidation)
		assert.Equal(t, "Unsupported image type", serr.Message)
	}

	assert.Zero(t, store.getCalls, "MIME check must run before the store fetch")
}

func TestImageResolvesMIME(t *testing.T) {
	svc, store, _ := newTestService()
	store.getData = []byte{0x89, 'P', 'N', 'G'}

	for name, want := range map[string]string{
		"a.png":  "image/png",
		"a.jpg":  "image/jpeg",
		"a.JPEG": "image/jpeg",
		"a.gif":  "image/gif",
	} {
		data, mime, err := svc.Image(name)
		require.NoError(t, err)
		assert.Equal(t, want, mime)
		assert.Equal(t, store.getData, data)
	}
}

func TestImageStoreFailure(t *testing.T) {
	svc, store, _ := newTestService()
	store.getErr = errors.New("blob missing")

	_, _, err := svc.Image("a.png")
	requireKind(t, err, KindStorage)
}

func TestDeleteNotFound(t *testing.T) {
	svc, store, repo := newTestService()
	repo.findErr = gorm.ErrRecordNotFound

	_, err := svc.Delete(42)
	serr := requireKind(t, err, KindNotFound)
	assert.Equal(t, "Product not found", serr.Message)
	assert.Zero(t, repo.deleteCalls)
	assert.Zero(t, store.deleteCalls)
}

func TestDeleteRowThenBlob(t *testing.T) {
	svc, store, repo := newTestService()
	repo.findResult = models.Product{ID: 7, Name: "Poster", ImageURL: "https://cdn.test/uploads/ab12_poster.png"}

	msg, err := svc.Delete(7)
	require.NoError(t, err)
	assert.Equal(t, "Product 7 deleted successfully", msg)
	assert.Equal(t, 1, repo.deleteCalls)
	assert.Equal(t, "ab12_poster.png", store.lastDeletePath)
}

func TestDeleteSwallowsBlobFailure(t *testing.T) {
	svc, store, repo := newTestService()
	repo.findResult = models.Product{ID: 7, ImageURL: "https://cdn.test/uploads/ab12_poster.png"}
	store.deleteErr = errors.New("container unreachable")

	msg, err := svc.Delete(7)
	require.NoError(t, err, "blob delete failure must not fail the request")
	assert.Equal(t, "Product 7 deleted successfully", msg)
	assert.Equal(t, 1, store.deleteCalls)
}

func TestDeleteRowFailure(t *testing.T) {
	svc, store, repo := newTestService()
	repo.findResult = models.Product{ID: 7, ImageURL: "https://cdn.test/uploads/ab12_poster.png"}
	repo.deleteErr = errors.New("deadlock")

	_, err := svc.Delete(7)
	requireKind(t, err, KindPersistence)
	assert.Zero(t, store.deleteCalls, "blob must survive when the row delete fails")
}
