package repositories

import (
	"time"

	"github.com/shashiranjanraj/mangamart/app/models"
	"github.com/shashiranjanraj/mangamart/pkg/metrics"
	"github.com/shashiranjanraj/mangamart/pkg/orm"
)

// ProductRepository handles database operations for Product. It
// satisfies services.ProductRepo.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Create persists a new product row. GORM writes the assigned id back
// into p.ID.
func (r *ProductRepository) Create(p *models.Product) error {
	defer observe("insert", time.Now())
	return orm.DB().Create(p)
}

// All returns every product in store order.
func (r *ProductRepository) All() ([]models.Product, error) {
	defer observe("select", time.Now())
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).Get(&products)
	return products, err
}

// Find looks up a product by primary key.
func (r *ProductRepository) Find(id uint) (models.Product, error) {
	defer observe("select", time.Now())
	var product models.Product
	err := orm.DB().Model(&models.Product{}).Where("id = ?", id).First(&product)
	return product, err
}

// Delete removes the row with the given primary key.
func (r *ProductRepository) Delete(id uint) error {
	defer observe("delete", time.Now())
	return orm.DB().Delete(&models.Product{}, id)
}

// Count returns the number of product rows. Used by the ops routes.
func (r *ProductRepository) Count() (int64, error) {
	defer observe("select", time.Now())
	return orm.DB().Model(&models.Product{}).Count()
}

func observe(op string, start time.Time) {
	metrics.DBQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
