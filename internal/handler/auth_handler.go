package handler

import (
	"errors"

	"go-warehouse-ws/internal/service"
	"go-warehouse-ws/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Number   string `json:"number"`
	Password string `json:"password"`
}

// ResetPasswordRequest represents the reset password request body
type ResetPasswordRequest struct {
	Number      string `json:"number"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ValidateTokenRequest represents the validate token request body
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// Login handles user authentication
// POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	res, err := h.authService.Login(c.UserContext(), req.Number, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// ValidateToken handles JWT token validation
// POST /validateToken
func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	var req ValidateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	user, err := h.authService.ValidateToken(c.UserContext(), req.Token)
	if errors.Is(err, jwt.ErrInvalidToken) || errors.Is(err, jwt.ErrMissingToken) || errors.Is(err, service.ErrUserNotFound) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": user})
}

// ResetPassword handles password change
// POST /resetPassword
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	if req.Number == "" || req.OldPassword == "" || req.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "number, old_password, and new_password are required"})
	}
	if len(req.NewPassword) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "New password must be at least 6 characters"})
	}

	err := h.authService.ResetPassword(c.UserContext(), req.Number, req.OldPassword, req.NewPassword)
	if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}
