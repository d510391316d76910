package db

import (
	"fmt"

	"planio/internal/auth"
	"planio/internal/task"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&auth.Profile{},
		&task.Project{},
		&task.Category{},
		&task.Task{},
	); err != nil {
		return err
	}

	// Partial index covering the dispatcher's eligibility predicate.
	if err := gdb.Exec(`
create index if not exists idx_tasks_due_reminders
on tasks(reminder_time)
where reminder_enabled and not reminder_sent;
`).Error; err != nil {
		return err
	}

	// Helpful indexes
	stmts := []string{
		`create index if not exists idx_tasks_project_created on tasks(project_id, created_at desc);`,
		`create index if not exists idx_projects_user_created on projects(user_id, created_at asc);`,
		`create index if not exists idx_categories_user_created on categories(user_id, created_at asc);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
