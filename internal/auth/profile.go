package auth

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the account row. The reminder dispatcher joins against it to
// resolve recipient contact info, so Email and FullName live here.
type Profile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	FullName     *string   `gorm:"type:text"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}
