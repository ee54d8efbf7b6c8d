package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"overlaysnow/internal/log"
	"overlaysnow/internal/query"
	"overlaysnow/internal/services"
	"overlaysnow/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// List is the catalog listing endpoint; all filter/sort/pagination semantics
// live in the query engine.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	params := query.Params{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("limit", 12),
	}

	if raw := strings.TrimSpace(c.Query("search")); raw != "" {
		q, ok := validate.Q(raw)
		if !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "search"})
			return badRequest(c, "invalid search term")
		}
		params.Search = q
	}
	if raw := strings.TrimSpace(c.Query("category")); raw != "" {
		id, ok := validate.ID(raw)
		if !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "category"})
			return badRequest(c, "invalid category id")
		}
		params.Category = id
	}
	if raw := strings.TrimSpace(c.Query("exclude")); raw != "" {
		id, ok := validate.ID(raw)
		if !ok {
			return badRequest(c, "invalid exclude id")
		}
		params.Exclude = id
	}
	sortKey, ok := validate.Sort(c.Query("sort"))
	if !ok {
		return badRequest(c, "sort must be one of newest, price_low, price_high, popular")
	}
	params.Sort = sortKey
	if raw := c.Query("featured"); raw != "" {
		featured := raw == "true" || raw == "1"
		params.Featured = &featured
	}
	if params.PageSize < 0 {
		return badRequest(c, "limit must be at least 1, or 0 for all items")
	}

	res, err := h.Catalog.Products(params)
	if err != nil {
		return fail(c, "products.list", err)
	}
	// Unbounded sentinel returns the bare items array.
	if params.PageSize == query.PageSizeAll {
		return c.JSON(res.Items)
	}
	return c.JSON(res)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return badRequest(c, "invalid product id")
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		return fail(c, "products.get", err)
	}
	return c.JSON(fiber.Map{
		"product":      p,
		"availability": p.Availability(),
	})
}

// BestSellers reports the top products by the stored sales counter.
func (h *ProductHandler) BestSellers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	prods, err := h.Catalog.BestSellers(limit)
	if err != nil {
		return fail(c, "analytics.best_sellers", err)
	}
	return c.JSON(prods)
}
