package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sp3fck/hamgallery-backend/internal/models"
	"github.com/sp3fck/hamgallery-backend/pkg/database"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Info answers the API root with a short self-description.
func (h *HealthHandler) Info(c *fiber.Ctx) error {
	return c.JSON(models.SuccessResponse(fiber.Map{
		"version": "1.0.0",
		"endpoints": []string{
			"POST /api/auth/register",
			"POST /api/auth/login",
			"POST /api/auth/verify-email",
			"GET /api/photos",
			"GET /api/iframe/viewer",
		},
	}, "SP3FCK Ham Gallery API is running"))
}

// Health reports database reachability for operational monitoring.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	if !database.Health(h.db) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse("Database unreachable"))
	}
	return c.JSON(models.SuccessResponse(fiber.Map{"database": "ok"}, ""))
}
