package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hackhub/models"
	"hackhub/utils"
)

type BookmarkController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewBookmarkController(db *gorm.DB, logger *log.Logger) *BookmarkController {
	return &BookmarkController{
		DB:     db,
		Logger: logger,
	}
}

// GetBookmarks returns the caller's bookmarked resource IDs.
func (bc *BookmarkController) GetBookmarks(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var resourceIDs []string
	if err := bc.DB.Model(&models.ResourceBookmark{}).
		Where("user_id = ?", user.ID).
		Pluck("resource_id", &resourceIDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch bookmarks", err)
	}

	if resourceIDs == nil {
		resourceIDs = []string{}
	}
	return c.JSON(utils.SuccessResponse(resourceIDs))
}

// ToggleBookmark flips the existence of the (user, resource) pair: a second
// call undoes the first. A concurrent double-insert loses to the unique
// index and is reported as a conflict.
func (bc *BookmarkController) ToggleBookmark(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var input struct {
		ResourceID string `json:"resource_id" validate:"required,min=1"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, err.Error(), nil)
	}

	var existing models.ResourceBookmark
	err := bc.DB.Where("user_id = ? AND resource_id = ?", user.ID, input.ResourceID).
		First(&existing).Error
	if err == nil {
		if err := bc.DB.Delete(&existing).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to remove bookmark", err)
		}
		return c.JSON(fiber.Map{"bookmarked": false})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch bookmark", err)
	}

	bookmark := models.ResourceBookmark{
		UserID:     user.ID,
		ResourceID: input.ResourceID,
	}
	if err := bc.DB.Create(&bookmark).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Bookmark already exists", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create bookmark", err)
	}

	return c.JSON(fiber.Map{"bookmarked": true})
}
