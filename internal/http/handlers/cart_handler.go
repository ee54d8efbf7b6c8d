package handlers

import (
	"github.com/gofiber/fiber/v2"

	"overlaysnow/internal/log"
	"overlaysnow/internal/services"
	"overlaysnow/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

type cartAddRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type cartUpdateRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	u := currentUser(c)
	cv, err := h.Cart.Get(u.ID)
	if err != nil {
		return fail(c, "cart.view", err)
	}
	return c.JSON(cv)
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	u := currentUser(c)
	var in cartAddRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "malformed request body")
	}
	pid, ok := validate.ID(in.ProductID)
	if !ok {
		return badRequest(c, "invalid productId")
	}

	if err := h.Cart.AddItem(u.ID, pid, in.Quantity); err != nil {
		return fail(c, "cart.add", err)
	}
	log.Info(c, "cart.add", map[string]any{"user_id": u.ID, "product_id": pid, "qty": in.Quantity})

	cv, err := h.Cart.Get(u.ID)
	if err != nil {
		return fail(c, "cart.view", err)
	}
	return c.Status(fiber.StatusCreated).JSON(cv)
}

func (h *CartHandler) Update(c *fiber.Ctx) error {
	u := currentUser(c)
	lineID, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid cart item id")
	}
	var in cartUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "malformed request body")
	}

	if err := h.Cart.UpdateItem(u.ID, lineID, in.Quantity); err != nil {
		return fail(c, "cart.update", err)
	}
	cv, err := h.Cart.Get(u.ID)
	if err != nil {
		return fail(c, "cart.view", err)
	}
	return c.JSON(cv)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	u := currentUser(c)
	lineID, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid cart item id")
	}
	if err := h.Cart.RemoveItem(u.ID, lineID); err != nil {
		return fail(c, "cart.remove", err)
	}
	cv, err := h.Cart.Get(u.ID)
	if err != nil {
		return fail(c, "cart.view", err)
	}
	return c.JSON(cv)
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	u := currentUser(c)
	if err := h.Cart.Clear(u.ID); err != nil {
		return fail(c, "cart.clear", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
