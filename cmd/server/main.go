package main

import (
	"github.com/shashiranjanraj/mangamart/app/models"
	"github.com/shashiranjanraj/mangamart/app/routes"
	"github.com/shashiranjanraj/mangamart/pkg/app"

	// Import migrations and seeders so their init() funcs run and
	// register themselves.
	_ "github.com/shashiranjanraj/mangamart/database/migrations"
	_ "github.com/shashiranjanraj/mangamart/database/seeders"
)

func main() {
	app.New().
		Routes(routes.Register).
		AutoMigrate(&models.Product{}).
		Run()
}
