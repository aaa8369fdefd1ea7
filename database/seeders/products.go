package seeders

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/mangamart/app/models"
)

func init() {
	Register("products", SeedProducts)
}

// SeedProducts inserts a small demo catalog. It is idempotent: rows
// are only created when the table is empty.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demo := []models.Product{
		{Name: "One Piece Vol. 1", Price: 9.99, ImageURL: "https://via.placeholder.com/150"},
		{Name: "Naruto Keychain", Price: 4.50, ImageURL: "https://via.placeholder.com/150"},
		{Name: "Attack on Titan Poster", Price: 12.00, ImageURL: "https://via.placeholder.com/150"},
	}
	return db.Create(&demo).Error
}
