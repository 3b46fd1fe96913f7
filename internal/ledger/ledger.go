package ledger

import (
	"errors"

	"github.com/MateusDuran/FinancasDX/internal/models"

	"github.com/shopspring/decimal"
)

// ErrNotFound reports that an email resolved to no account. Stores
// return it unchanged so callers can map it to a 404.
var ErrNotFound = errors.New("account not found")

// ErrInvalidInput wraps validation failures on caller-supplied data.
var ErrInvalidInput = errors.New("invalid input")

// UserStore is the account lookup surface the ledger needs.
type UserStore interface {
	FindByEmail(email string) (*models.User, error)
}

// TransactionStore is the persistence surface for transactions.
type TransactionStore interface {
	Save(t *models.Transaction) error
	FindByUser(userID uint) ([]models.Transaction, error)
	FindByUserAndKind(userID uint, kind models.Kind) ([]models.Transaction, error)
	FindByUserOrderByTimestampDesc(userID uint, limit int) ([]models.Transaction, error)
	SumSignedAmount(userID uint) (decimal.Decimal, error)
}
