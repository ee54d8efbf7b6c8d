package handlers

import (
	"github.com/gofiber/fiber/v2"

	"overlaysnow/internal/log"
	"overlaysnow/internal/services"
	"overlaysnow/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        any    `json:"user"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in credentials
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "malformed request body")
	}
	name, ok := validate.Name(in.Name)
	if !ok {
		return badRequest(c, "name must be 1-60 characters")
	}
	email, ok := validate.Email(in.Email)
	if !ok {
		return badRequest(c, "invalid email")
	}
	if !validate.Password(in.Password) {
		return badRequest(c, "password must be 8-64 characters with upper, lower and digit")
	}

	tok, u, err := h.Auth.Register(name, email, in.Password)
	if err != nil {
		log.Security(c, "auth.register.fail", map[string]any{"email": email})
		return fail(c, "auth.register", err)
	}
	log.Audit(c, "auth.register", map[string]any{"user_id": u.ID})
	return c.Status(fiber.StatusCreated).JSON(tokenResponse{
		AccessToken: tok, TokenType: "bearer", User: u,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in credentials
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "malformed request body")
	}
	email, ok := validate.Email(in.Email)
	if !ok {
		log.Security(c, "auth.login.fail", map[string]any{"reason": "bad_format"})
		return badRequest(c, "invalid email")
	}

	tok, u, err := h.Auth.Login(email, in.Password)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return fail(c, "auth.login", err)
	}
	log.Audit(c, "auth.login.success", map[string]any{"user_id": u.ID})
	return c.JSON(tokenResponse{AccessToken: tok, TokenType: "bearer", User: u})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(currentUser(c))
}
