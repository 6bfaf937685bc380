package controller

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hackhub/models"
	"hackhub/utils"
)

type IdeaController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewIdeaController(db *gorm.DB, logger *log.Logger) *IdeaController {
	return &IdeaController{
		DB:     db,
		Logger: logger,
	}
}

type IdeaListItem struct {
	models.Idea
	User         models.PublicUser `json:"user"`
	RequestCount int               `json:"request_count"`
}

type TeamRequestView struct {
	models.TeamRequest
	User models.PublicUser `json:"user"`
}

type IdeaDetail struct {
	models.Idea
	User     models.PublicUser `json:"user"`
	Requests []TeamRequestView `json:"requests"`
}

// GetIdeas returns a paginated public listing, optionally filtered by a
// case-insensitive substring over title, description and tags.
func (ic *IdeaController) GetIdeas(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}
	offset := (page - 1) * limit

	search := c.Query("search")

	// Tags are stored as a JSON array in a text column, so a substring
	// match over the serialized value covers tag membership too.
	filtered := func(q *gorm.DB) *gorm.DB {
		if search == "" {
			return q
		}
		like := "%" + strings.ToLower(search) + "%"
		return q.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(tags) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := filtered(ic.DB.Model(&models.Idea{})).Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch ideas", err)
	}

	var ideas []models.Idea
	if err := filtered(ic.DB).
		Preload("User").
		Preload("Requests").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&ideas).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch ideas", err)
	}

	items := make([]IdeaListItem, 0, len(ideas))
	for i := range ideas {
		items = append(items, IdeaListItem{
			Idea:         ideas[i],
			User:         ideas[i].User.Public(),
			RequestCount: len(ideas[i].Requests),
		})
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	return c.JSON(utils.PaginatedResponse{
		Data:  items,
		Total: total,
		Pages: pages,
		Page:  page,
		Limit: limit,
	})
}

// GetIdea returns one idea with its author and every team request, each
// carrying the requester's public identity.
func (ic *IdeaController) GetIdea(c *fiber.Ctx) error {
	ideaID := c.Params("id")

	var idea models.Idea
	if err := ic.DB.
		Preload("User").
		Preload("Requests", func(db *gorm.DB) *gorm.DB {
			return db.Order("team_requests.created_at DESC")
		}).
		Preload("Requests.User").
		First(&idea, "id = ?", ideaID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Idea not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch idea", err)
	}

	requests := make([]TeamRequestView, 0, len(idea.Requests))
	for i := range idea.Requests {
		requests = append(requests, TeamRequestView{
			TeamRequest: idea.Requests[i],
			User:        idea.Requests[i].User.Public(),
		})
	}

	return c.JSON(IdeaDetail{
		Idea:     idea,
		User:     idea.User.Public(),
		Requests: requests,
	})
}

// CreateIdea posts a new project idea for the caller.
func (ic *IdeaController) CreateIdea(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var input struct {
		Title       string   `json:"title" validate:"required,max=200"`
		Description string   `json:"description" validate:"required"`
		Tags        []string `json:"tags"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	idea := models.Idea{
		UserID:      user.ID,
		Title:       input.Title,
		Description: input.Description,
		Tags:        tags,
	}

	if err := ic.DB.Create(&idea).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create idea", err)
	}

	ic.Logger.Printf("idea %d created by user %d", idea.ID, user.ID)
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(idea))
}

// UpdateIdea replaces title, description and tags; owner only.
func (ic *IdeaController) UpdateIdea(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	ideaID := c.Params("id")

	var idea models.Idea
	if err := ic.DB.First(&idea, "id = ?", ideaID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Idea not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch idea", err)
	}

	if !idea.IsOwner(user.ID) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Forbidden", nil)
	}

	var input struct {
		Title       string   `json:"title" validate:"required,max=200"`
		Description string   `json:"description" validate:"required"`
		Tags        []string `json:"tags"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	idea.Title = input.Title
	idea.Description = input.Description
	if input.Tags != nil {
		idea.Tags = input.Tags
	}

	if err := ic.DB.Save(&idea).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update idea", err)
	}

	return c.JSON(utils.SuccessResponse(idea))
}

// DeleteIdea removes an idea and its team requests in one transaction;
// owner only.
func (ic *IdeaController) DeleteIdea(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	ideaID := c.Params("id")

	var idea models.Idea
	if err := ic.DB.First(&idea, "id = ?", ideaID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Idea not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch idea", err)
	}

	if !idea.IsOwner(user.ID) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Forbidden", nil)
	}

	err := ic.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("idea_id = ?", idea.ID).Delete(&models.TeamRequest{}).Error; err != nil {
			return err
		}
		return tx.Delete(&idea).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete idea", err)
	}

	ic.Logger.Printf("idea %d deleted by user %d", idea.ID, user.ID)
	return c.JSON(fiber.Map{"message": "Idea deleted"})
}
