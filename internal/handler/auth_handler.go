package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sp3fck/hamgallery-backend/internal/models"
	"github.com/sp3fck/hamgallery-backend/internal/service"
	"github.com/sp3fck/hamgallery-backend/internal/validation"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *validation.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *validation.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	normalized, errs := h.validator.ValidateRegistration(req)
	if errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(errs))
	}

	auth, err := h.authService.Register(normalized)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse("User with this callsign or email already exists"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(auth, "User registered successfully"))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	normalized, errs := h.validator.ValidateLogin(req)
	if errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(errs))
	}

	auth, err := h.authService.Login(normalized)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid credentials"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.JSON(models.SuccessResponse(auth, "Login successful"))
}

func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	var req models.VerifyEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if req.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Token is required"))
	}

	if err := h.authService.VerifyEmail(req.Token); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Email verified successfully"))
}
