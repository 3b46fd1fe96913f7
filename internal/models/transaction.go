package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Kind discriminates money-in from money-out. Exactly two variants.
type Kind string

const (
	KindIncome  Kind = "INCOME"
	KindExpense Kind = "EXPENSE"
)

// ParseKind validates an incoming kind string against the two known variants.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindIncome:
		return KindIncome, nil
	case KindExpense:
		return KindExpense, nil
	}
	return "", fmt.Errorf("unknown transaction kind %q", s)
}

// Transaction is a single income or expense record.
// Amount is stored as an exact decimal to avoid balance drift over
// long histories; it is never converted through a binary float.
type Transaction struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"index;not null"`
	Kind        Kind            `gorm:"size:16;index;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	Timestamp   time.Time       `gorm:"index;not null"`
	Description string          `gorm:"size:255"`
	CreatedAt   time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
