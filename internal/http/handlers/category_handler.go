package handlers

import (
	"github.com/gofiber/fiber/v2"

	"overlaysnow/internal/log"
	"overlaysnow/internal/services"
	"overlaysnow/internal/validate"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		return fail(c, "categories.list", err)
	}
	return c.JSON(cats)
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "category"})
		return badRequest(c, "invalid category id")
	}
	cat, err := h.Catalog.GetCategory(id)
	if err != nil {
		return fail(c, "categories.get", err)
	}
	return c.JSON(cat)
}
