package store

import (
	"errors"
	"fmt"

	"github.com/MateusDuran/FinancasDX/internal/ledger"
	"github.com/MateusDuran/FinancasDX/internal/models"

	"gorm.io/gorm"
)

// UserStore is the gorm-backed account repository.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// FindByEmail looks an account up by its unique login email.
// A missing account yields ledger.ErrNotFound.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// Get fetches an account by primary key.
func (s *UserStore) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (s *UserStore) Create(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *UserStore) Update(user *models.User) error {
	if err := s.db.Save(user).Error; err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// ExistsByEmail matches case-insensitively so two spellings of one
// address cannot register twice.
func (s *UserStore) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("count users by email: %w", err)
	}
	return count > 0, nil
}

func (s *UserStore) ExistsByNationalID(nationalID string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("national_id = ?", nationalID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("count users by national id: %w", err)
	}
	return count > 0, nil
}

// Delete removes the account and all transactions it owns.
func (s *UserStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("delete transactions: %w", err)
		}
		if err := tx.Delete(&models.User{}, id).Error; err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
}
