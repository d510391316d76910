package task

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")
var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	DB *gorm.DB
}

type SaveTaskInput struct {
	ProjectID   uuid.UUID
	CategoryID  *uuid.UUID
	Title       string
	Description *string
	Status      string
	Priority    string
	DueDate     *time.Time

	ReminderEnabled bool
	// ReminderOffset selects the window before DueDate: 1_day, 1_hour, at_time.
	ReminderOffset string
}

func (in *SaveTaskInput) normalize() error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = StatusPending
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}
	if in.ReminderOffset == "" {
		in.ReminderOffset = OffsetOneDay
	}
	if !ValidStatus(in.Status) || !ValidPriority(in.Priority) || !ValidOffset(in.ReminderOffset) {
		return ErrInvalidInput
	}
	return nil
}

// reminderWindow derives reminder_time. Nil when reminders are off or there
// is no due date; a reminder without a due date is meaningless.
func (in *SaveTaskInput) reminderWindow() *time.Time {
	if !in.ReminderEnabled || in.DueDate == nil {
		return nil
	}
	t := ReminderTimeFor(*in.DueDate, in.ReminderOffset)
	return &t
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, in SaveTaskInput) (*Task, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	var p Project
	if err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", in.ProjectID, userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	t := Task{
		ID:              uuid.New(),
		UserID:          userID,
		ProjectID:       in.ProjectID,
		CategoryID:      in.CategoryID,
		Title:           in.Title,
		Description:     in.Description,
		Completed:       in.Status == StatusCompleted,
		Status:          in.Status,
		Priority:        in.Priority,
		DueDate:         in.DueDate,
		ReminderEnabled: in.ReminderEnabled,
		ReminderTime:    in.reminderWindow(),
		ReminderSent:    false,
	}
	if err := s.DB.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Update rewrites the mutable fields. Changing the due date or the reminder
// settings resets reminder_sent so the dispatcher picks the task up again;
// the dispatcher itself never resets the flag.
func (s *Service) Update(ctx context.Context, userID, taskID uuid.UUID, in SaveTaskInput) (*Task, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	var t Task
	if err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", taskID, userID).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	window := in.reminderWindow()
	if reminderChanged(&t, in, window) {
		t.ReminderSent = false
	}

	t.CategoryID = in.CategoryID
	t.Title = in.Title
	t.Description = in.Description
	t.Status = in.Status
	t.Completed = in.Status == StatusCompleted
	t.Priority = in.Priority
	t.DueDate = in.DueDate
	t.ReminderEnabled = in.ReminderEnabled
	t.ReminderTime = window

	if err := s.DB.WithContext(ctx).Save(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func reminderChanged(t *Task, in SaveTaskInput, window *time.Time) bool {
	if t.ReminderEnabled != in.ReminderEnabled {
		return true
	}
	if !equalTimePtr(t.DueDate, in.DueDate) {
		return true
	}
	return !equalTimePtr(t.ReminderTime, window)
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func (s *Service) SetCompleted(ctx context.Context, userID, taskID uuid.UUID, completed bool) error {
	status := StatusPending
	if completed {
		status = StatusCompleted
	}
	res := s.DB.WithContext(ctx).Model(&Task{}).
		Where("id = ? AND user_id = ?", taskID, userID).
		Updates(map[string]any{"completed": completed, "status": status})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) ListByProject(ctx context.Context, userID, projectID uuid.UUID) ([]Task, error) {
	var tasks []Task
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Order("created_at desc").
		Find(&tasks).Error
	return tasks, err
}

func (s *Service) Get(ctx context.Context, userID, taskID uuid.UUID) (*Task, error) {
	var t Task
	if err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", taskID, userID).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (s *Service) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", taskID, userID).Delete(&Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
