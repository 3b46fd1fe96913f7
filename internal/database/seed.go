package database

import (
	"fmt"
	"time"

	"github.com/MateusDuran/FinancasDX/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the two demo accounts when the user table is empty.
// Intended for development setups only; gated by database.seed.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	now := time.Now()
	users := []models.User{
		{
			NationalID:   "50450732061",
			Name:         "Administrador",
			Email:        "administrador@email.com",
			PasswordHash: string(hash),
			RegisteredAt: now,
		},
		{
			NationalID:   "87040351005",
			Name:         "Usuario",
			Email:        "usuario@email.com",
			PasswordHash: string(hash),
			RegisteredAt: now,
		},
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	return nil
}
