package models

import (
	"gorm.io/gorm"
)

// User represents a user account in the system
type User struct {
	gorm.Model

	// Authentication fields
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null;default:''" json:"-"`

	// Google OAuth fields
	GoogleID *string `gorm:"uniqueIndex" json:"google_id,omitempty"`

	// Public identity
	Name  *string `json:"name,omitempty"`
	Image *string `json:"image,omitempty"`

	// Profile fields
	Bio         *string  `json:"bio,omitempty"`
	Skills      []string `gorm:"serializer:json" json:"skills"`
	GithubURL   *string  `json:"githubUrl,omitempty"`
	LinkedinURL *string  `json:"linkedinUrl,omitempty"`
	WebsiteURL  *string  `json:"websiteUrl,omitempty"`

	// Account status
	IsActive     bool `gorm:"default:true" json:"is_active"`
	TokenVersion int  `gorm:"default:1" json:"-"`

	// Relationships
	Ideas        []Idea        `gorm:"foreignKey:UserID" json:"-"`
	TeamRequests []TeamRequest `gorm:"foreignKey:UserID" json:"-"`
}

// PublicUser is the projection of a user attached to ideas and requests.
type PublicUser struct {
	ID    uint    `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
	Image *string `json:"image"`
}

// Public returns the user's public identity.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Image: u.Image,
	}
}
