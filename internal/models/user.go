package models

import "time"

// User represents an application account. Email is the login key.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	NationalID   string    `gorm:"size:14;uniqueIndex;not null"`
	Name         string    `gorm:"size:64;not null"`
	Email        string    `gorm:"size:128;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	RegisteredAt time.Time `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	FailedLoginAttempts int        `gorm:"default:0"`
	LockedUntil         *time.Time `gorm:"index"`
	LastLoginAt         *time.Time
	LastLoginIP         string `gorm:"size:64"`
}
