package models

import (
	"time"

	"gorm.io/gorm"
)

// Team request statuses
const (
	RequestPending  = "PENDING"
	RequestAccepted = "ACCEPTED"
	RequestRejected = "REJECTED"
)

// Idea represents a posted project concept seeking collaborators
type Idea struct {
	gorm.Model

	UserID      uint     `gorm:"index;not null" json:"user_id"`
	Title       string   `gorm:"not null" json:"title"`
	Description string   `gorm:"type:text;not null" json:"description"`
	Tags        []string `gorm:"serializer:json" json:"tags"`

	User     User          `gorm:"foreignKey:UserID" json:"-"`
	Requests []TeamRequest `gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE" json:"-"`
}

// TeamRequest is a user's request to join an idea's team. A user may hold
// at most one request per idea; the composite unique index enforces it.
// Rows are hard-deleted so a withdrawn request can be re-created.
type TeamRequest struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	IdeaID uint   `gorm:"not null;uniqueIndex:idx_team_requests_idea_user" json:"idea_id"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_team_requests_idea_user" json:"user_id"`
	Status string `gorm:"not null;default:'PENDING'" json:"status"`

	Idea Idea `gorm:"foreignKey:IdeaID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// IsOwner reports whether the given caller owns the idea. Ownership is
// always derived from the idea record, never stored alongside a request.
func (i *Idea) IsOwner(userID uint) bool {
	return i.UserID == userID
}
