package models

import (
	"time"

	"gorm.io/gorm"
)

// Task priorities and statuses
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	TaskTodo       = "todo"
	TaskInProgress = "in-progress"
	TaskCompleted  = "completed"
)

// Task is a kanban board item scoped to its owner
type Task struct {
	gorm.Model

	UserID      uint       `gorm:"index;not null" json:"user_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Priority    string     `gorm:"not null;default:'medium'" json:"priority"`
	Status      string     `gorm:"not null;default:'todo'" json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// Deadline is an upcoming hackathon or submission date
type Deadline struct {
	gorm.Model

	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Date        time.Time `gorm:"not null" json:"date"`
	Location    string    `json:"location"`
	URL         string    `json:"url"`
	ReminderSet bool      `gorm:"default:false" json:"reminder_set"`
}

// Focus session types
const (
	SessionFocus      = "focus"
	SessionShortBreak = "short-break"
	SessionLongBreak  = "long-break"
)

// FocusSession is one completed Pomodoro interval. Rows are append-only;
// nothing ever updates or deletes them.
type FocusSession struct {
	gorm.Model

	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Type        string    `gorm:"not null" json:"type"`
	Duration    int       `gorm:"not null" json:"duration"` // minutes
	CompletedAt time.Time `gorm:"index;not null" json:"completed_at"`
}

// ResourceBookmark marks an external resource as saved by a user.
// Existence is the only state; creates toggle, deletes are hard so the
// unique pair can come back.
type ResourceBookmark struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID     uint   `gorm:"not null;uniqueIndex:idx_bookmarks_user_resource" json:"user_id"`
	ResourceID string `gorm:"not null;uniqueIndex:idx_bookmarks_user_resource" json:"resource_id"`
}
