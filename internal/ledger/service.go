package ledger

import (
	"fmt"
	"time"

	"github.com/MateusDuran/FinancasDX/internal/models"

	"github.com/shopspring/decimal"
)

// TimeLayout is the textual timestamp format used at the API boundary.
const TimeLayout = "02/01/2006 15:04:05"

// Service answers all ledger queries for a caller identified by email.
// It never aggregates across users and never mutates a persisted
// transaction; creation is its only write path.
type Service struct {
	users        UserStore
	transactions TransactionStore
}

func NewService(users UserStore, transactions TransactionStore) *Service {
	return &Service{users: users, transactions: transactions}
}

// CreateInput carries caller-supplied fields for a new transaction.
// Timestamp nil means "stamp with the creation instant".
type CreateInput struct {
	Kind        string
	Amount      decimal.Decimal
	Timestamp   *time.Time
	Description string
}

// TransactionView is the externally visible projection of a
// transaction. It carries the owning user's id only, never the user
// record itself.
type TransactionView struct {
	ID          uint   `json:"id"`
	Kind        string `json:"kind"`
	Amount      string `json:"amount"`
	Timestamp   string `json:"timestamp"`
	Description string `json:"description,omitempty"`
	UserID      uint   `json:"user_id"`
}

func toView(t *models.Transaction) TransactionView {
	return TransactionView{
		ID:          t.ID,
		Kind:        string(t.Kind),
		Amount:      t.Amount.StringFixed(2),
		Timestamp:   t.Timestamp.Format(TimeLayout),
		Description: t.Description,
		UserID:      t.UserID,
	}
}

// resolve maps a login email to the owning account. On failure no
// store query runs and ErrNotFound propagates unchanged.
func (s *Service) resolve(email string) (*models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create validates the input, defaults a missing timestamp to now and
// persists a new transaction owned by the caller's account.
func (s *Service) Create(input CreateInput, callerEmail string) (TransactionView, error) {
	user, err := s.resolve(callerEmail)
	if err != nil {
		return TransactionView{}, err
	}

	kind, err := models.ParseKind(input.Kind)
	if err != nil {
		return TransactionView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if input.Amount.IsNegative() {
		return TransactionView{}, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	if input.Amount.Exponent() < -2 {
		return TransactionView{}, fmt.Errorf("%w: amount must have at most 2 decimal places", ErrInvalidInput)
	}

	ts := time.Now()
	if input.Timestamp != nil {
		ts = *input.Timestamp
	}

	t := models.Transaction{
		UserID:      user.ID,
		Kind:        kind,
		Amount:      input.Amount,
		Timestamp:   ts,
		Description: input.Description,
	}
	if err := s.transactions.Save(&t); err != nil {
		return TransactionView{}, err
	}
	return toView(&t), nil
}

// List returns the caller's transactions, optionally restricted to a
// single kind. Order is insertion order (ascending id).
func (s *Service) List(callerEmail string, kindFilter *models.Kind) ([]TransactionView, error) {
	user, err := s.resolve(callerEmail)
	if err != nil {
		return nil, err
	}

	var list []models.Transaction
	if kindFilter == nil {
		list, err = s.transactions.FindByUser(user.ID)
	} else {
		list, err = s.transactions.FindByUserAndKind(user.ID, *kindFilter)
	}
	if err != nil {
		return nil, err
	}

	views := make([]TransactionView, 0, len(list))
	for i := range list {
		views = append(views, toView(&list[i]))
	}
	return views, nil
}

// Recent returns up to limit transactions ordered by timestamp
// descending. A non-positive limit is coerced to 1 rather than
// rejected.
func (s *Service) Recent(callerEmail string, limit int) ([]TransactionView, error) {
	user, err := s.resolve(callerEmail)
	if err != nil {
		return nil, err
	}

	if limit < 1 {
		limit = 1
	}
	list, err := s.transactions.FindByUserOrderByTimestampDesc(user.ID, limit)
	if err != nil {
		return nil, err
	}

	views := make([]TransactionView, 0, len(list))
	for i := range list {
		views = append(views, toView(&list[i]))
	}
	return views, nil
}

// Balance returns the signed sum over the caller's entire history:
// income positive, expense negative, exact decimal throughout. A user
// with no transactions gets exactly zero; a store failure is never
// reported as zero.
func (s *Service) Balance(callerEmail string) (decimal.Decimal, error) {
	user, err := s.resolve(callerEmail)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return s.transactions.SumSignedAmount(user.ID)
}
