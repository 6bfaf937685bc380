package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hackhub/models"
	"hackhub/utils"
)

type DeadlineController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewDeadlineController(db *gorm.DB, logger *log.Logger) *DeadlineController {
	return &DeadlineController{
		DB:     db,
		Logger: logger,
	}
}

type deadlineInput struct {
	Name        string `json:"name" validate:"required,max=200"`
	Date        string `json:"date" validate:"required"`
	Location    string `json:"location" validate:"omitempty,max=200"`
	URL         string `json:"url" validate:"omitempty,url"`
	ReminderSet *bool  `json:"reminder_set"`
}

func parseDeadlineDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
	}
	return t, err
}

// GetDeadlines returns the caller's deadlines, soonest first.
func (dc *DeadlineController) GetDeadlines(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var deadlines []models.Deadline
	if err := dc.DB.Where("user_id = ?", user.ID).
		Order("date ASC").
		Find(&deadlines).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch deadlines", err)
	}

	return c.JSON(utils.SuccessResponse(deadlines))
}

func (dc *DeadlineController) CreateDeadline(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var input deadlineInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, err.Error(), nil)
	}

	date, err := parseDeadlineDate(input.Date)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "date must be a valid date", nil)
	}

	deadline := models.Deadline{
		UserID:   user.ID,
		Name:     input.Name,
		Date:     date,
		Location: input.Location,
		URL:      input.URL,
	}
	if input.ReminderSet != nil {
		deadline.ReminderSet = *input.ReminderSet
	}

	if err := dc.DB.Create(&deadline).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create deadline", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(deadline))
}

func (dc *DeadlineController) UpdateDeadline(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	deadlineID := c.Params("id")

	var deadline models.Deadline
	if err := dc.DB.First(&deadline, "id = ?", deadlineID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Deadline not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch deadline", err)
	}

	if deadline.UserID != user.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Forbidden", nil)
	}

	var input struct {
		Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
		Date        *string `json:"date"`
		Location    *string `json:"location" validate:"omitempty,max=200"`
		URL         *string `json:"url" validate:"omitempty,url"`
		ReminderSet *bool   `json:"reminder_set"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, err.Error(), nil)
	}

	if input.Name != nil {
		deadline.Name = *input.Name
	}
	if input.Date != nil {
		date, err := parseDeadlineDate(*input.Date)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "date must be a valid date", nil)
		}
		deadline.Date = date
	}
	if input.Location != nil {
		deadline.Location = *input.Location
	}
	if input.URL != nil {
		deadline.URL = *input.URL
	}
	if input.ReminderSet != nil {
		deadline.ReminderSet = *input.ReminderSet
	}

	if err := dc.DB.Save(&deadline).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update deadline", err)
	}

	return c.JSON(utils.SuccessResponse(deadline))
}

func (dc *DeadlineController) DeleteDeadline(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	deadlineID := c.Params("id")

	var deadline models.Deadline
	if err := dc.DB.First(&deadline, "id = ?", deadlineID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Deadline not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch deadline", err)
	}

	if deadline.UserID != user.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Forbidden", nil)
	}

	if err := dc.DB.Delete(&deadline).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete deadline", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
