package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/marisolvale/weekling/internal/services"
)

type credentialsInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"rememberMe" form:"remember_me"`
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}
	credentials.Email = strings.TrimSpace(credentials.Email)
	return credentials, nil
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Register(credentials.Email, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return apiError(c, fiber.StatusConflict, "email already exists")
		case errors.Is(err, services.ErrWeakPassword):
			return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters with upper, lower and digit")
		case errors.Is(err, services.ErrAuthCredentialsInvalid):
			return apiError(c, fiber.StatusBadRequest, "valid email is required")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Authenticate(credentials.Email, credentials.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, &user, credentials.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
	})
}
