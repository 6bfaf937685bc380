package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hackhub/models"
	"hackhub/utils"
)

type FocusController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewFocusController(db *gorm.DB, logger *log.Logger) *FocusController {
	return &FocusController{
		DB:     db,
		Logger: logger,
	}
}

// GetSessions returns the caller's most recent 50 sessions.
func (fc *FocusController) GetSessions(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var sessions []models.FocusSession
	if err := fc.DB.Where("user_id = ?", user.ID).
		Order("completed_at DESC").
		Limit(50).
		Find(&sessions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch sessions", err)
	}

	return c.JSON(utils.SuccessResponse(sessions))
}

// CreateSession appends one completed Pomodoro interval. The log is
// append-only; sessions are never updated or deleted.
func (fc *FocusController) CreateSession(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var input struct {
		Type     string `json:"type" validate:"required,oneof=focus short-break long-break"`
		Duration int    `json:"duration" validate:"required,min=1"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, err.Error(), nil)
	}

	session := models.FocusSession{
		UserID:      user.ID,
		Type:        input.Type,
		Duration:    input.Duration,
		CompletedAt: time.Now(),
	}

	if err := fc.DB.Create(&session).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to record session", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(session))
}

// GetStats summarizes today's focus sessions.
func (fc *FocusController) GetStats(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var count int64
	var totalMinutes int64
	row := fc.DB.Model(&models.FocusSession{}).
		Select("COUNT(*), COALESCE(SUM(duration), 0)").
		Where("user_id = ? AND type = ? AND completed_at >= ?",
			user.ID, models.SessionFocus, startOfDay).
		Row()
	if err := row.Scan(&count, &totalMinutes); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch stats", err)
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{
		"sessions_today": count,
		"minutes_today":  totalMinutes,
	}))
}
