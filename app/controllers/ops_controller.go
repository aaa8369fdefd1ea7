package controllers

import (
	"html/template"
	"net/http"

	"github.com/shashiranjanraj/mangamart/app/models"
	"github.com/shashiranjanraj/mangamart/app/repositories"
	"github.com/shashiranjanraj/mangamart/app/views"
	"github.com/shashiranjanraj/mangamart/config"
	"github.com/shashiranjanraj/mangamart/pkg/database"
	"github.com/shashiranjanraj/mangamart/pkg/response"
	"github.com/shashiranjanraj/mangamart/pkg/storage"
)

// OpsController serves the static index page and the manual
// introspection routes used when wiring up a deployment.
type OpsController struct {
	store    storage.Disk
	products *repositories.ProductRepository
	index    *template.Template
}

func NewOpsController(store storage.Disk, products *repositories.ProductRepository) *OpsController {
	return &OpsController{
		store:    store,
		products: products,
		index:    template.Must(template.ParseFS(views.FS, "index.html")),
	}
}

// Index handles GET /.
func (c *OpsController) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.index.Execute(w, nil) //nolint:errcheck
}

// Debug handles GET /debug.
func (c *OpsController) Debug(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]interface{}{
		"app_running": true,
		"endpoints": map[string]string{
			"add_product":   "/add_product [POST]",
			"list_products": "/list_products [GET]",
			"test_db":       "/test_db [GET]",
			"test_blob":     "/test_blob [GET]",
		},
	})
}

// TestDB handles GET /test_db: connectivity, schema and row count in
// one shot.
func (c *OpsController) TestDB(w http.ResponseWriter, r *http.Request) {
	fail := func(err error) {
		response.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"connection": "failed",
			"error":      err.Error(),
			"driver":     config.DatabaseDriver(),
		})
	}

	var one int
	if err := database.DB.Raw("SELECT 1").Scan(&one).Error; err != nil {
		fail(err)
		return
	}

	migrator := database.DB.Migrator()
	tableExists := migrator.HasTable(&models.Product{})

	schema := []map[string]string{}
	var productCount int64
	if tableExists {
		cols, err := migrator.ColumnTypes(&models.Product{})
		if err != nil {
			fail(err)
			return
		}
		for _, col := range cols {
			schema = append(schema, map[string]string{
				"column": col.Name(),
				"type":   col.DatabaseTypeName(),
			})
		}

		productCount, err = c.products.Count()
		if err != nil {
			fail(err)
			return
		}
	}

	response.OK(w, map[string]interface{}{
		"connection":    "successful",
		"basic_test":    one == 1,
		"table_exists":  tableExists,
		"schema":        schema,
		"product_count": productCount,
		"driver":        config.DatabaseDriver(),
	})
}

// TestBlob handles GET /test_blob: lists up to ten blobs from the
// configured disk to prove the object store is reachable.
func (c *OpsController) TestBlob(w http.ResponseWriter, r *http.Request) {
	files, err := c.store.AllFiles("")
	if err != nil {
		response.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"connection": "failed",
			"error":      err.Error(),
		})
		return
	}

	sample := []map[string]string{}
	for i, name := range files {
		if i >= 10 {
			break
		}
		sample = append(sample, map[string]string{
			"name": name,
			"url":  c.store.URL(name),
		})
	}

	response.OK(w, map[string]interface{}{
		"connection":   "successful",
		"disk":         config.StorageDefault(),
		"blob_count":   len(files),
		"sample_blobs": sample,
	})
}

// TestAddProduct handles GET /test_add_product: inserts a fixed row
// without any upload so the database path can be exercised alone.
func (c *OpsController) TestAddProduct(w http.ResponseWriter, r *http.Request) {
	product := models.Product{
		Name:     "Test Product",
		Price:    99.99,
		ImageURL: "https://via.placeholder.com/150",
	}

	if err := c.products.Create(&product); err != nil {
		response.Error(w, http.StatusInternalServerError,
			"Test product insertion failed: "+err.Error())
		return
	}

	response.OK(w, map[string]interface{}{
		"message": "Test product added successfully",
		"product": product,
	})
}
