package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hackhub/models"
	"hackhub/utils"
)

type ProfileController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewProfileController(db *gorm.DB, logger *log.Logger) *ProfileController {
	return &ProfileController{
		DB:     db,
		Logger: logger,
	}
}

type ProfileResponse struct {
	Name        *string  `json:"name"`
	Email       string   `json:"email"`
	Image       *string  `json:"image"`
	Bio         *string  `json:"bio"`
	Skills      []string `json:"skills"`
	GithubURL   *string  `json:"githubUrl"`
	LinkedinURL *string  `json:"linkedinUrl"`
	WebsiteURL  *string  `json:"websiteUrl"`
}

func profileOf(user *models.User) ProfileResponse {
	skills := user.Skills
	if skills == nil {
		skills = []string{}
	}
	return ProfileResponse{
		Name:        user.Name,
		Email:       user.Email,
		Image:       user.Image,
		Bio:         user.Bio,
		Skills:      skills,
		GithubURL:   user.GithubURL,
		LinkedinURL: user.LinkedinURL,
		WebsiteURL:  user.WebsiteURL,
	}
}

// GetProfile returns the caller's profile.
func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.JSON(utils.SuccessResponse(profileOf(user)))
}

// UpdateProfile applies a partial update to the caller's own profile.
// Only the owner ever reaches this handler; there is no cross-user path.
func (pc *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var input struct {
		Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
		Bio         *string  `json:"bio" validate:"omitempty,max=2000"`
		Skills      []string `json:"skills"`
		GithubURL   *string  `json:"githubUrl" validate:"omitempty,url"`
		LinkedinURL *string  `json:"linkedinUrl" validate:"omitempty,url"`
		WebsiteURL  *string  `json:"websiteUrl" validate:"omitempty,url"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, err.Error(), nil)
	}

	if input.Name != nil {
		user.Name = input.Name
	}
	if input.Bio != nil {
		user.Bio = input.Bio
	}
	if input.Skills != nil {
		user.Skills = input.Skills
	}
	if input.GithubURL != nil {
		user.GithubURL = emptyToNil(input.GithubURL)
	}
	if input.LinkedinURL != nil {
		user.LinkedinURL = emptyToNil(input.LinkedinURL)
	}
	if input.WebsiteURL != nil {
		user.WebsiteURL = emptyToNil(input.WebsiteURL)
	}

	if err := pc.DB.Save(user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update profile", err)
	}

	return c.JSON(utils.SuccessResponse(profileOf(user)))
}

// emptyToNil clears a social link when the client sends an empty string.
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
