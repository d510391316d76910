package reminder

import (
	"context"
	"fmt"
	"time"

	"planio/internal/task"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DueTask is one eligible task with the owner's contact info denormalized
// onto it. Tasks whose profile row cannot be joined are never returned.
type DueTask struct {
	ID          uuid.UUID  `gorm:"column:id"`
	Title       string     `gorm:"column:title"`
	Description *string    `gorm:"column:description"`
	DueDate     *time.Time `gorm:"column:due_date"`
	Priority    string     `gorm:"column:priority"`
	UserID      uuid.UUID  `gorm:"column:user_id"`
	Email       string     `gorm:"column:email"`
	FullName    *string    `gorm:"column:full_name"`
}

// Store is the narrow slice of persistence the dispatcher needs: one read,
// one single-column write.
type Store interface {
	DueReminders(ctx context.Context, now time.Time) ([]DueTask, error)
	MarkReminderSent(ctx context.Context, taskID uuid.UUID) error
}

type GormStore struct {
	DB *gorm.DB
}

// DueReminders selects tasks with reminder_enabled, not yet sent, whose
// reminder_time has passed, inner-joined to the owning profile.
func (s *GormStore) DueReminders(ctx context.Context, now time.Time) ([]DueTask, error) {
	var rows []DueTask
	err := s.DB.WithContext(ctx).
		Table("tasks").
		Select("tasks.id, tasks.title, tasks.description, tasks.due_date, tasks.priority, tasks.user_id, profiles.email, profiles.full_name").
		Joins("inner join profiles on profiles.id = tasks.user_id").
		Where("tasks.reminder_enabled = ? AND tasks.reminder_sent = ? AND tasks.reminder_time <= ?", true, false, now).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("select due reminders: %w", err)
	}
	return rows, nil
}

func (s *GormStore) MarkReminderSent(ctx context.Context, taskID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Model(&task.Task{}).
		Where("id = ?", taskID).
		Update("reminder_sent", true)
	if res.Error != nil {
		return fmt.Errorf("mark reminder sent: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("mark reminder sent: task %s not found", taskID)
	}
	return nil
}
