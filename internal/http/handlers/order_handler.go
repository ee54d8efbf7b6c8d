package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "overlaysnow/internal/log"
	"overlaysnow/internal/services"
	"overlaysnow/internal/validate"
)

type OrderHandler struct {
	Order *services.OrderService
}

// Place converts the caller's cart into an order.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	u := currentUser(c)
	o, err := h.Order.Checkout(u.ID)
	if err != nil {
		applog.Info(c, "order.place.fail", map[string]any{"user_id": u.ID})
		return fail(c, "order.place", err)
	}
	applog.Audit(c, "order.place", map[string]any{
		"order_id": o.ID,
		"user_id":  u.ID,
		"total":    o.Total.String(),
		"items":    len(o.Items),
	})
	return c.Status(fiber.StatusCreated).JSON(o)
}

func (h *OrderHandler) View(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid order id")
	}
	o, err := h.Order.Get(id, currentUser(c))
	if err != nil {
		return fail(c, "order.view", err)
	}
	return c.JSON(o)
}

// History lists the caller's own orders, newest first.
func (h *OrderHandler) History(c *fiber.Ctx) error {
	u := currentUser(c)
	orders, err := h.Order.ListForUser(u.ID)
	if err != nil {
		return fail(c, "order.history", err)
	}
	return c.JSON(orders)
}
