package handlers

import (
	"github.com/gofiber/fiber/v2"

	"overlaysnow/internal/domain"
	applog "overlaysnow/internal/log"
	"overlaysnow/internal/services"
	"overlaysnow/internal/validate"
)

// AdminHandler groups the privileged catalog and order operations. Routes
// using it sit behind RequireUser + AdminOnly.
type AdminHandler struct {
	Catalog *services.CatalogService
	Order   *services.OrderService
}

// GET /api/admin/orders
func (h *AdminHandler) Orders(c *fiber.Ctx) error {
	orders, err := h.Order.ListAll(c.QueryInt("limit", 100))
	if err != nil {
		return fail(c, "admin.orders.list", err)
	}
	return c.JSON(orders)
}

// PUT /api/admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid order id")
	}
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil || in.Status == "" {
		return badRequest(c, "missing status")
	}

	o, err := h.Order.UpdateStatus(id, domain.OrderStatus(in.Status))
	if err != nil {
		return fail(c, "admin.orders.status", err)
	}
	applog.Audit(c, "admin.orders.status", map[string]any{"order_id": id, "status": in.Status})
	return c.JSON(o)
}

// POST /api/admin/products
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var in services.ProductCreate
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "malformed request body")
	}
	p, err := h.Catalog.CreateProduct(in)
	if err != nil {
		return fail(c, "admin.products.create", err)
	}
	applog.Audit(c, "admin.products.create", map[string]any{"product_id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PUT /api/admin/products/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid product id")
	}
	var patch domain.ProductUpdate
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "malformed request body")
	}
	p, err := h.Catalog.UpdateProduct(id, patch)
	if err != nil {
		return fail(c, "admin.products.update", err)
	}
	applog.Audit(c, "admin.products.update", map[string]any{"product_id": id})
	return c.JSON(p)
}

// DELETE /api/admin/products/:id
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid product id")
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		return fail(c, "admin.products.delete", err)
	}
	applog.Audit(c, "admin.products.delete", map[string]any{"product_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

// POST /api/admin/categories
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	var in services.CategoryCreate
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "malformed request body")
	}
	cat, err := h.Catalog.CreateCategory(in)
	if err != nil {
		return fail(c, "admin.categories.create", err)
	}
	applog.Audit(c, "admin.categories.create", map[string]any{"category_id": cat.ID})
	return c.Status(fiber.StatusCreated).JSON(cat)
}

// PUT /api/admin/categories/:id
func (h *AdminHandler) UpdateCategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid category id")
	}
	var patch domain.CategoryUpdate
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "malformed request body")
	}
	cat, err := h.Catalog.UpdateCategory(id, patch)
	if err != nil {
		return fail(c, "admin.categories.update", err)
	}
	applog.Audit(c, "admin.categories.update", map[string]any{"category_id": id})
	return c.JSON(cat)
}

// DELETE /api/admin/categories/:id
func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid category id")
	}
	if err := h.Catalog.DeleteCategory(id); err != nil {
		return fail(c, "admin.categories.delete", err)
	}
	applog.Audit(c, "admin.categories.delete", map[string]any{"category_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
