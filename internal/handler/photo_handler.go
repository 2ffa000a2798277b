package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sp3fck/hamgallery-backend/internal/models"
	"github.com/sp3fck/hamgallery-backend/internal/repository"
	"github.com/sp3fck/hamgallery-backend/internal/service"
	"github.com/sp3fck/hamgallery-backend/internal/validation"
)

type PhotoHandler struct {
	photoService *service.PhotoService
	validator    *validation.Validator
}

func NewPhotoHandler(photoService *service.PhotoService, validator *validation.Validator) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
		validator:    validator,
	}
}

// ListPublic serves the public gallery feed, paginated newest-first.
func (h *PhotoHandler) ListPublic(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", service.DefaultPageSize)

	list, err := h.photoService.ListPublic(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.JSON(models.SuccessResponse(list, ""))
}

// ListUser serves one user's public photos. The route is unauthenticated;
// owners list their private photos through ListMine.
func (h *PhotoHandler) ListUser(c *fiber.Ctx) error {
	ownerID, err := strconv.ParseUint(c.Params("userId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid user ID"))
	}

	photos, err := h.photoService.ListUser(uint(ownerID), 0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.JSON(models.SuccessResponse(photos, ""))
}

func (h *PhotoHandler) ListMine(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	photos, err := h.photoService.ListUser(userID, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.JSON(models.SuccessResponse(photos, ""))
}

func (h *PhotoHandler) Create(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req models.CreatePhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	normalized, errs := h.validator.ValidatePhotoUpload(req)
	if errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(errs))
	}

	photo, err := h.photoService.Create(userID, normalized)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(photo, "Photo created successfully"))
}

func (h *PhotoHandler) Delete(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	photoID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid photo ID"))
	}

	deleted, err := h.photoService.Delete(uint(photoID), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Photo not found"))
	}

	return c.JSON(models.SuccessResponse(nil, "Photo deleted successfully"))
}

type addTagsRequest struct {
	Tags []string `json:"tags"`
}

func (h *PhotoHandler) AddTags(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	photoID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid photo ID"))
	}

	var req addTagsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if len(req.Tags) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("At least one tag is required"))
	}
	if len(req.Tags) > 10 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Maximum 10 tags allowed"))
	}

	tags, err := h.photoService.AddTags(uint(photoID), userID, req.Tags)
	if err != nil {
		return photoTagError(c, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"tags": tags}, "Tags added successfully"))
}

func (h *PhotoHandler) RemoveTag(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	photoID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid photo ID"))
	}

	removed, err := h.photoService.RemoveTag(uint(photoID), userID, c.Params("tag"))
	if err != nil {
		return photoTagError(c, err)
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Tag not found"))
	}

	return c.JSON(models.SuccessResponse(nil, "Tag removed successfully"))
}

func photoTagError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Photo not found"))
	case errors.Is(err, service.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("You do not own this photo"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}
}
