package store

import (
	"fmt"

	"github.com/MateusDuran/FinancasDX/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionStore is the gorm-backed transaction repository.
type TransactionStore struct {
	db *gorm.DB
}

func NewTransactionStore(db *gorm.DB) *TransactionStore {
	return &TransactionStore{db: db}
}

// Save persists a new transaction and fills in the assigned id.
func (s *TransactionStore) Save(t *models.Transaction) error {
	if err := s.db.Create(t).Error; err != nil {
		return fmt.Errorf("save transaction: %w", err)
	}
	return nil
}

// FindByUser returns all transactions of one user in insertion order.
func (s *TransactionStore) FindByUser(userID uint) ([]models.Transaction, error) {
	var list []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("find transactions: %w", err)
	}
	return list, nil
}

func (s *TransactionStore) FindByUserAndKind(userID uint, kind models.Kind) ([]models.Transaction, error) {
	var list []models.Transaction
	if err := s.db.Where("user_id = ? AND kind = ?", userID, kind).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("find transactions by kind: %w", err)
	}
	return list, nil
}

// FindByUserOrderByTimestampDesc returns at most limit transactions,
// most recent first. Ties on timestamp fall back to descending id.
func (s *TransactionStore) FindByUserOrderByTimestampDesc(userID uint, limit int) ([]models.Transaction, error) {
	var list []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("find recent transactions: %w", err)
	}
	return list, nil
}

// SumSignedAmount folds the user's whole history into a signed
// balance: income added, expense subtracted. The fold runs over exact
// decimals in Go rather than a SQL float aggregate, so repeated
// computations over identical rows are bit-identical.
func (s *TransactionStore) SumSignedAmount(userID uint) (decimal.Decimal, error) {
	var list []models.Transaction
	if err := s.db.Select("kind", "amount").
		Where("user_id = ?", userID).
		Find(&list).Error; err != nil {
		return decimal.Decimal{}, fmt.Errorf("sum transactions: %w", err)
	}

	total := decimal.Zero
	for i := range list {
		if list[i].Kind == models.KindIncome {
			total = total.Add(list[i].Amount)
		} else {
			total = total.Sub(list[i].Amount)
		}
	}
	return total, nil
}
