package handlers

import "github.com/gofiber/fiber/v2"

// Register mounts the API route table. Kept separate from main so tests can
// stand up the exact production routing.
func (d *Deps) Register(app *fiber.App) {
	api := app.Group("/api")

	// Auth
	api.Post("/auth/register", d.AuthHandler.Register)
	api.Post("/auth/login", d.AuthHandler.Login)
	api.Get("/auth/me", RequireUser(d.Auth), d.AuthHandler.Me)

	// Catalog (public)
	api.Get("/categories", d.CategoryHandler.List)
	api.Get("/categories/:id", d.CategoryHandler.Get)
	api.Get("/products", d.ProductHandler.List)
	api.Get("/products/:id", d.ProductHandler.Get)

	// Cart (authenticated)
	cart := api.Group("/cart", RequireUser(d.Auth))
	cart.Get("/", d.CartHandler.View)
	cart.Post("/items", d.CartHandler.Add)
	cart.Put("/items/:id", d.CartHandler.Update)
	cart.Delete("/items/:id", d.CartHandler.Remove)
	cart.Delete("/", d.CartHandler.Clear)

	// Orders (authenticated)
	api.Post("/orders", RequireUser(d.Auth), d.OrderHandler.Place)
	api.Get("/orders", RequireUser(d.Auth), d.OrderHandler.History)
	api.Get("/orders/:id", RequireUser(d.Auth), d.OrderHandler.View)

	// Admin
	admin := api.Group("/admin", RequireUser(d.Auth), AdminOnly())
	admin.Get("/orders", d.AdminHandler.Orders)
	admin.Put("/orders/:id/status", d.AdminHandler.UpdateOrderStatus)
	admin.Post("/products", d.AdminHandler.CreateProduct)
	admin.Put("/products/:id", d.AdminHandler.UpdateProduct)
	admin.Delete("/products/:id", d.AdminHandler.DeleteProduct)
	admin.Post("/categories", d.AdminHandler.CreateCategory)
	admin.Put("/categories/:id", d.AdminHandler.UpdateCategory)
	admin.Delete("/categories/:id", d.AdminHandler.DeleteCategory)
	admin.Get("/analytics/best-sellers", d.ProductHandler.BestSellers)
}
