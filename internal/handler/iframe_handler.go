package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sp3fck/hamgallery-backend/internal/models"
	"github.com/sp3fck/hamgallery-backend/internal/repository"
	"github.com/sp3fck/hamgallery-backend/internal/service"
	"github.com/sp3fck/hamgallery-backend/internal/validation"
	"github.com/sp3fck/hamgallery-backend/internal/viewer"
)

type IframeHandler struct {
	iframeService *service.IframeService
	validator     *validation.Validator
}

func NewIframeHandler(iframeService *service.IframeService, validator *validation.Validator) *IframeHandler {
	return &IframeHandler{
		iframeService: iframeService,
		validator:     validator,
	}
}

func (h *IframeHandler) Create(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req models.CreateIframeConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	data, errs := h.validator.ValidateIframeConfig(req)
	if errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(errs))
	}

	config, err := h.iframeService.Create(userID, data)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(config, "Iframe config created successfully"))
}

func (h *IframeHandler) Get(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	configID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid config ID"))
	}

	config, err := h.iframeService.Get(uint(configID), userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Iframe config not found"))
		case errors.Is(err, service.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("You do not own this config"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
		}
	}

	return c.JSON(models.SuccessResponse(config, ""))
}

func (h *IframeHandler) List(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	configs, err := h.iframeService.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.JSON(models.SuccessResponse(configs, ""))
}

// Viewer renders the embeddable slideshow HTML for a comma-separated list
// of photo ids. Private and unknown ids are silently dropped.
func (h *IframeHandler) Viewer(c *fiber.Ctx) error {
	rawIDs := c.Query("photos")
	if rawIDs == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Photo IDs are required"))
	}

	var ids []uint
	for _, part := range strings.Split(rawIDs, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid photo ID list"))
		}
		ids = append(ids, uint(id))
	}

	opts := viewer.Options{
		Width:        clamp(c.QueryInt("width", validation.DefaultWidth), validation.MinWidth, validation.MaxWidth),
		Height:       clamp(c.QueryInt("height", validation.DefaultHeight), validation.MinHeight, validation.MaxHeight),
		AutoPlay:     c.Query("autoplay") != "false",
		Interval:     clamp(c.QueryInt("interval", validation.DefaultInterval), validation.MinInterval, validation.MaxInterval),
		ShowTitles:   c.Query("titles") != "false",
		ShowControls: c.Query("controls") != "false",
	}

	photos := h.iframeService.ResolvePhotos(ids)

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return viewer.Render(c.Response().BodyWriter(), photos, opts)
}

func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
