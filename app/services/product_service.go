package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/mangamart/app/models"
	"github.com/shashiranjanraj/mangamart/pkg/logger"
)

// allowedExtensions is the upload allow-set. Everything else is
// rejected before any byte reaches the object store.
var allowedExtensions = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true,
}

// mimeTypes maps a blob-name extension to the Content-Type served by
// the image route. An extension outside this table is a client error
// even when the blob exists.
var mimeTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
}

// ObjectStore is the slice of the storage disk the product workflow
// needs. pkg/storage.Disk satisfies it.
type ObjectStore interface {
	PutStream(path string, r io.Reader) error
	Get(path string) ([]byte, error)
	Delete(path string) error
	URL(path string) string
}

// ProductRepo is the persistence interface for products.
type ProductRepo interface {
	Create(p *models.Product) error
	All() ([]models.Product, error)
	Find(id uint) (models.Product, error)
	Delete(id uint) error
}

// ProductService orchestrates the product workflows across the object
// store and the database. Collaborators are injected at construction;
// the service holds no other state.
type ProductService struct {
	store    ObjectStore
	products ProductRepo
}

func NewProductService(store ObjectStore, products ProductRepo) *ProductService {
	return &ProductService{store: store, products: products}
}

// CreateResult is what the add-product route echoes back. The
// database-assigned id is not read back on this path; it only becomes
// visible through List.
type CreateResult struct {
	Name     string
	Price    float64
	ImageURL string
}

// ProductSummary is the listing projection.
type ProductSummary struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	BlobName string  `json:"blob_name"`
}

// Create validates the input, uploads the image, and persists the
// product row. Validation short-circuits before any external call.
func (s *ProductService) Create(name, priceText string, image io.Reader, filename string) (CreateResult, error) {
	if name == "" || priceText == "" {
		return CreateResult{}, validationErr("Missing name or price")
	}

	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil {
		return CreateResult{}, validationErr("Price must be a valid number")
	}

	if image == nil {
		return CreateResult{}, validationErr("No image uploaded")
	}

	if !allowedExtensions[extension(filename)] {
		return CreateResult{}, validationErr(fmt.Sprintf("Invalid file type: %s", filename))
	}

	blobName := randomToken(8) + "_" + SanitizeFilename(filename)

	return s.twoPhaseCreate(name, price, blobName, image)
}

// twoPhaseCreate is the upload-then-insert saga. The two systems share
// no transaction: when the upload fails nothing is persisted, but when
// the insert fails the already-uploaded blob stays behind as an orphan.
// There is no compensation step and no out-of-band cleanup job.
func (s *ProductService) twoPhaseCreate(name string, price float64, blobName string, image io.Reader) (CreateResult, error) {
	// Step 1: upload. Overwrite semantics are intentional; the random
	// prefix makes collisions essentially impossible.
	if err := s.store.PutStream(blobName, image); err != nil {
		return CreateResult{}, storageErr(fmt.Sprintf("Failed to upload image: %v", err), err)
	}

	// The URL is derived, never verified against the store.
	imageURL := s.store.URL(blobName)

	// Step 2: insert. Failure here leaves the blob from step 1 in place.
	product := models.Product{Name: name, Price: price, ImageURL: imageURL}
	if err := s.products.Create(&product); err != nil {
		return CreateResult{}, persistenceErr(fmt.Sprintf("Failed to save product to database: %v", err), err)
	}

	return CreateResult{Name: name, Price: price, ImageURL: imageURL}, nil
}

// List returns every product projected to its listing shape. Ordering
// is whatever the store returns.
func (s *ProductService) List() ([]ProductSummary, error) {
	products, err := s.products.All()
	if err != nil {
		return nil, persistenceErr(err.Error(), err)
	}

	summaries := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, ProductSummary{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			BlobName: p.BlobName(),
		})
	}
	return summaries, nil
}

// Image fetches a blob's full contents and resolves its Content-Type
// from the name's extension. An extension outside the MIME table
// short-circuits before the store is touched.
func (s *ProductService) Image(blobName string) ([]byte, string, error) {
	mime, ok := mimeTypes[extension(blobName)]
	if !ok {
		return nil, "", validationErr("Unsupported image type")
	}

	data, err := s.store.Get(blobName)
	if err != nil {
		return nil, "", storageErr(err.Error(), err)
	}
	return data, mime, nil
}

// Delete removes the product row and then best-effort deletes its
// blob. The ordering is deliberate: the row goes first, and a blob
// deletion failure is logged but never fails the request — the one
// intentional partial-failure tolerance in this service.
func (s *ProductService) Delete(id uint) (string, error) {
	product, err := s.products.Find(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", notFoundErr("Product not found")
		}
		return "", persistenceErr(err.Error(), err)
	}

	blobName := product.BlobName()

	if err := s.products.Delete(id); err != nil {
		return "", persistenceErr(err.Error(), err)
	}

	// A blob-delete failure is swallowed: the row is already gone and
	// the response must still be success. The blob becomes an orphan.
	if err := s.store.Delete(blobName); err != nil {
		logger.Error("failed to delete blob", "blob", blobName, "product_id", id, "error", err)
	}

	return fmt.Sprintf("Product %d deleted successfully", id), nil
}

// randomToken returns n random bytes hex-encoded. Collision
// resistance, not secrecy, is what matters here.
func randomToken(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
