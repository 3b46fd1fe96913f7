package store

import (
	"errors"
	"testing"
	"time"

	"github.com/MateusDuran/FinancasDX/internal/ledger"
	"github.com/MateusDuran/FinancasDX/internal/models"

	"github.com/shopspring/decimal"
)

func TestFindByEmail_NotFound(t *testing.T) {
	db := newTestDB(t)
	s := NewUserStore(db)

	_, err := s.FindByEmail("ghost@email.com")
	if !errors.Is(err, ledger.ErrNotFound) {
		t.Errorf("FindByEmail() error = %v, want ledger.ErrNotFound", err)
	}
}

func TestFindByEmail_Found(t *testing.T) {
	db := newTestDB(t)
	created := createTestUser(t, db, "usuario@email.com", "87040351005")
	s := NewUserStore(db)

	got, err := s.FindByEmail("usuario@email.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("FindByEmail() id = %d, want %d", got.ID, created.ID)
	}
}

func TestExistsByEmail_CaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "usuario@email.com", "87040351005")
	s := NewUserStore(db)

	for _, email := range []string{"usuario@email.com", "USUARIO@EMAIL.COM", "Usuario@Email.com"} {
		exists, err := s.ExistsByEmail(email)
		if err != nil {
			t.Fatalf("ExistsByEmail(%q) error = %v", email, err)
		}
		if !exists {
			t.Errorf("ExistsByEmail(%q) = false, want true", email)
		}
	}
}

func TestDelete_RemovesOwnedTransactions(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "usuario@email.com", "87040351005")
	users := NewUserStore(db)
	transactions := NewTransactionStore(db)

	tx := &models.Transaction{
		UserID:    user.ID,
		Kind:      models.KindIncome,
		Amount:    decimal.RequireFromString("10.00"),
		Timestamp: time.Now(),
	}
	if err := transactions.Save(tx); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := users.Delete(user.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := users.Get(user.ID); !errors.Is(err, ledger.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ledger.ErrNotFound", err)
	}
	left, err := transactions.FindByUser(user.ID)
	if err != nil {
		t.Fatalf("FindByUser() error = %v", err)
	}
	if len(left) != 0 {
		t.Errorf("%d transactions left after account delete, want 0", len(left))
	}
}
