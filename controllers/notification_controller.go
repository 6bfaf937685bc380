package controller

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hackhub/models"
	"hackhub/utils"
)

type NotificationController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewNotificationController(db *gorm.DB, logger *log.Logger) *NotificationController {
	return &NotificationController{
		DB:     db,
		Logger: logger,
	}
}

const (
	NotificationIncomingRequest = "INCOMING_REQUEST"
	NotificationRequestUpdate   = "REQUEST_UPDATE"
)

type Notification struct {
	ID      uint              `json:"id"`
	Type    string            `json:"type"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Date    time.Time         `json:"date"`
	Status  string            `json:"status,omitempty"`
	Data    *NotificationData `json:"data,omitempty"`
}

type NotificationData struct {
	RequestID uint    `json:"request_id"`
	UserImage *string `json:"user_image"`
}

// GetNotifications merges two read-only query results into one feed:
// pending requests against the caller's ideas, and the last 10 decisions on
// the caller's own requests. Nothing is persisted; every call recomputes
// the feed from the stores.
func (nc *NotificationController) GetNotifications(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var ideaIDs []uint
	if err := nc.DB.Model(&models.Idea{}).
		Where("user_id = ?", user.ID).
		Pluck("id", &ideaIDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch notifications", err)
	}

	// Incoming: people wanting to join the caller's ideas
	var incoming []models.TeamRequest
	if len(ideaIDs) > 0 {
		if err := nc.DB.
			Preload("User").
			Preload("Idea").
			Where("idea_id IN ? AND status = ?", ideaIDs, models.RequestPending).
			Order("created_at DESC").
			Find(&incoming).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch notifications", err)
		}
	}

	// Outbound: decisions on the caller's own requests, most recent 10
	var updates []models.TeamRequest
	if err := nc.DB.
		Preload("Idea").
		Where("user_id = ? AND status IN ?", user.ID,
			[]string{models.RequestAccepted, models.RequestRejected}).
		Order("updated_at DESC").
		Limit(10).
		Find(&updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch notifications", err)
	}

	notifications := make([]Notification, 0, len(incoming)+len(updates))
	for i := range incoming {
		req := &incoming[i]
		name := "Someone"
		if req.User.Name != nil {
			name = *req.User.Name
		}
		notifications = append(notifications, Notification{
			ID:      req.ID,
			Type:    NotificationIncomingRequest,
			Title:   "New Team Request",
			Message: fmt.Sprintf("%s requested to join %q", name, req.Idea.Title),
			Date:    req.CreatedAt,
			Data: &NotificationData{
				RequestID: req.ID,
				UserImage: req.User.Image,
			},
		})
	}
	for i := range updates {
		req := &updates[i]
		notifications = append(notifications, Notification{
			ID:      req.ID,
			Type:    NotificationRequestUpdate,
			Title:   "Request Update",
			Message: fmt.Sprintf("Your request to join %q was %s", req.Idea.Title, strings.ToLower(req.Status)),
			Date:    req.UpdatedAt,
			Status:  req.Status,
		})
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Date.After(notifications[j].Date)
	})

	return c.JSON(fiber.Map{"notifications": notifications})
}
