package models

import "strings"

// Product is a catalogue item. Image bytes live in object storage;
// the row only carries the public URL.
type Product struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string  `gorm:"size:255;not null"        json:"name"`
	Price    float64 `gorm:"not null"                 json:"price"`
	ImageURL string  `gorm:"size:1024;not null"       json:"image_url"`
}

// TableName keeps the table name the frontend and ops tooling expect.
func (Product) TableName() string { return "Products" }

// BlobName returns the trailing path segment of ImageURL, which is the
// object's name inside the storage container.
func (p Product) BlobName() string {
	idx := strings.LastIndexByte(p.ImageURL, '/')
	return p.ImageURL[idx+1:]
}
