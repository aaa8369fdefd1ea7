package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/mangamart/app/services"
	"github.com/shashiranjanraj/mangamart/pkg/logger"
	"github.com/shashiranjanraj/mangamart/pkg/response"
	"github.com/shashiranjanraj/mangamart/pkg/router"
)

// maxUploadBytes caps the in-memory part of multipart parsing.
const maxUploadBytes = 32 << 20

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// Add handles POST /add_product: multipart form with name, price and
// an image file.
func (c *ProductController) Add(w http.ResponseWriter, r *http.Request) {
	// Parse errors fall through: a missing form just means missing
	// fields, which the service reports as validation failures.
	_ = r.ParseMultipartForm(maxUploadBytes)

	name := r.FormValue("name")
	price := r.FormValue("price")

	var (
		image    io.Reader
		filename string
	)
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		image = file
		filename = header.Filename
	}

	result, err := c.service.Create(name, price, image, filename)
	if err != nil {
		log := logger.WithCtx(r.Context())
		log.Error("add product failed", "error", err)
		writeServiceError(w, err)
		return
	}

	response.OK(w, map[string]string{
		"message":   "Product added successfully",
		"image_url": result.ImageURL,
	})
}

// List handles GET /list_products.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.List()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, map[string]interface{}{"products": products})
}

// Image handles GET /get_image/{blob_name} and serves the raw bytes
// with the Content-Type derived from the blob name.
func (c *ProductController) Image(w http.ResponseWriter, r *http.Request) {
	blobName := router.Param(r, "blob_name")

	data, mime, err := c.service.Image(blobName)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Write(data) //nolint:errcheck
}

// Delete handles DELETE /delete_product/{id}.
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(router.Param(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	message, err := c.service.Delete(uint(id))
	if err != nil {
		var serr *services.Error
		if errors.As(err, &serr) && serr.Kind == services.KindNotFound {
			response.Error(w, http.StatusNotFound, serr.Message)
			return
		}
		logger.WithCtx(r.Context()).Error("delete product failed", "id", id, "error", err)
		response.DeleteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Deleted(w, message)
}

// writeServiceError maps a service failure to its HTTP status. Errors
// that did not come from the service layer get the catch-all message.
func writeServiceError(w http.ResponseWriter, err error) {
	var serr *services.Error
	if errors.As(err, &serr) {
		response.Error(w, serr.HTTPStatus(), serr.Message)
		return
	}
	response.Error(w, http.StatusInternalServerError,
		fmt.Sprintf("An unexpected error occurred: %v", err))
}
