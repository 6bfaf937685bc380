package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hackhub/models"
	"hackhub/utils"
)

type TeamRequestController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewTeamRequestController(db *gorm.DB, logger *log.Logger) *TeamRequestController {
	return &TeamRequestController{
		DB:     db,
		Logger: logger,
	}
}

// CreateInterest registers the caller's request to join an idea's team.
// An idea owner cannot request to join their own idea, and a user holds at
// most one request per idea. Concurrent duplicate inserts are rejected by
// the unique index and reported as a conflict.
func (tc *TeamRequestController) CreateInterest(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	ideaID := c.Params("id")

	var idea models.Idea
	if err := tc.DB.First(&idea, "id = ?", ideaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Idea not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch idea", err)
	}

	if idea.IsOwner(user.ID) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot join your own idea", nil)
	}

	var existing models.TeamRequest
	if err := tc.DB.Where("idea_id = ? AND user_id = ?", idea.ID, user.ID).First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Request already sent", nil)
	}

	request := models.TeamRequest{
		IdeaID: idea.ID,
		UserID: user.ID,
		Status: models.RequestPending,
	}

	if err := tc.DB.Create(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent insert of the same pair
			return utils.ErrorResponse(c, fiber.StatusConflict, "Request already sent", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create request", err)
	}

	tc.Logger.Printf("user %d requested to join idea %d", user.ID, idea.ID)
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(request))
}

// UpdateTeamRequest moves a pending request to ACCEPTED or REJECTED.
// Only the idea's owner may decide, and ownership is derived from the idea
// record on every call.
func (tc *TeamRequestController) UpdateTeamRequest(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	requestID := c.Params("id")

	var input struct {
		Status string `json:"status" validate:"required,oneof=ACCEPTED REJECTED"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid status", nil)
	}

	var request models.TeamRequest
	if err := tc.DB.Preload("Idea").First(&request, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Request not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch request", err)
	}

	if !request.Idea.IsOwner(user.ID) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Forbidden", nil)
	}

	request.Status = input.Status
	if err := tc.DB.Save(&request).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update request", err)
	}

	tc.Logger.Printf("request %d set to %s by owner %d", request.ID, request.Status, user.ID)
	return c.JSON(utils.SuccessResponse(request))
}

// DeleteTeamRequest removes a request regardless of its status. The
// requester withdraws (or leaves the team); the idea owner removes a member.
func (tc *TeamRequestController) DeleteTeamRequest(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	requestID := c.Params("id")

	var request models.TeamRequest
	if err := tc.DB.Preload("Idea").First(&request, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Request not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch request", err)
	}

	isRequester := request.UserID == user.ID
	isIdeaOwner := request.Idea.IsOwner(user.ID)
	if !isRequester && !isIdeaOwner {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Forbidden", nil)
	}

	if err := tc.DB.Delete(&request).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete request", err)
	}

	return c.JSON(fiber.Map{"message": "Request deleted"})
}
