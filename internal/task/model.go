package task

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Reminder offsets selectable when a task has a due date.
const (
	OffsetOneDay  = "1_day"
	OffsetOneHour = "1_hour"
	OffsetAtTime  = "at_time"
)

type Project struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Color     string    `gorm:"not null" json:"color"`
	Icon      string    `gorm:"not null" json:"icon"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Color     string    `gorm:"not null" json:"color"`
	Icon      string    `gorm:"not null" json:"icon"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// Task is the planner item. ReminderTime is derived from DueDate and the
// chosen offset at save time; ReminderSent is flipped true exactly once by
// the dispatcher and reset here whenever the due date or reminder settings
// change.
type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	ProjectID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"project_id"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index" json:"category_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	Status      string     `gorm:"not null;default:'pending'" json:"status"`
	Priority    string     `gorm:"not null;default:'medium'" json:"priority"`
	DueDate     *time.Time `json:"due_date"`

	ReminderEnabled bool       `gorm:"not null;default:false" json:"reminder_enabled"`
	ReminderTime    *time.Time `gorm:"index" json:"reminder_time"`
	ReminderSent    bool       `gorm:"not null;default:false" json:"reminder_sent"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

func ValidOffset(o string) bool {
	return o == OffsetOneDay || o == OffsetOneHour || o == OffsetAtTime
}

// ReminderTimeFor computes the reminder window for a due date.
func ReminderTimeFor(due time.Time, offset string) time.Time {
	switch offset {
	case OffsetOneHour:
		return due.Add(-time.Hour)
	case OffsetAtTime:
		return due
	default: // 1_day
		return due.Add(-24 * time.Hour)
	}
}
