package routes

import (
	"github.com/shashiranjanraj/mangamart/app/controllers"
	"github.com/shashiranjanraj/mangamart/app/repositories"
	"github.com/shashiranjanraj/mangamart/app/services"
	"github.com/shashiranjanraj/mangamart/pkg/router"
	"github.com/shashiranjanraj/mangamart/pkg/storage"
)

// Register wires every route. Controllers get their collaborators here
// so nothing below the routing layer reaches into globals.
func Register(r *router.Router) {
	store := storage.Default()
	products := repositories.NewProductRepository()

	productController := controllers.NewProductController(
		services.NewProductService(store, products))
	characterController := controllers.NewCharacterController(
		services.NewCharacterService())
	opsController := controllers.NewOpsController(store, products)

	r.Get("/", "index", opsController.Index)

	r.Post("/add_product", "products.add", productController.Add)
	r.Get("/list_products", "products.list", productController.List)
	r.Get("/get_image/{blob_name}", "products.image", productController.Image)
	r.Delete("/delete_product/{id}", "products.delete", productController.Delete)

	r.Post("/get-characters", "characters.lookup", characterController.Lookup)

	// Manual inspection routes, kept unauthenticated like the rest of
	// the surface.
	r.Get("/debug", "ops.debug", opsController.Debug)
	r.Get("/test_db", "ops.test_db", opsController.TestDB)
	r.Get("/test_blob", "ops.test_blob", opsController.TestBlob)
	r.Get("/test_add_product", "ops.test_add_product", opsController.TestAddProduct)
}
