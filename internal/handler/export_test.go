package handler

import (
	"encoding/csv"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MateusDuran/FinancasDX/internal/ledger"
	"github.com/MateusDuran/FinancasDX/internal/middleware"
	"github.com/MateusDuran/FinancasDX/internal/store"

	"github.com/gin-gonic/gin"
)

func TestExportCSV_Content(t *testing.T) {
	r, db := newTestRouter(t)
	user := seedTestUser(t, db)
	seedTransactions(t, db, user.ID, 2)
	token := testToken(t, user)

	w := doRequest(r, http.MethodGet, "/api/export/csv", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}

	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	if err != nil {
		t.Fatalf("parse exported csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("csv has %d rows, want header + 2", len(records))
	}
	if records[0][0] != "Kind" || records[0][1] != "Amount" {
		t.Errorf("csv header = %v", records[0])
	}
	for _, row := range records[1:] {
		if row[0] != "INCOME" {
			t.Errorf("csv row kind = %q, want INCOME", row[0])
		}
	}
}

// failingWriter drops every write, standing in for a client that went
// away mid-download.
type failingWriter struct {
	header http.Header
}

func (f *failingWriter) Header() http.Header {
	if f.header == nil {
		f.header = make(http.Header)
	}
	return f.header
}

func (f *failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("client gone")
}

func (f *failingWriter) WriteHeader(int) {}

func TestExportCSV_AbortsOnWriteFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newHandlerDB(t)
	user := seedTestUser(t, db)
	seedTransactions(t, db, user.ID, 1)

	users := store.NewUserStore(db)
	transactions := store.NewTransactionStore(db)
	h := NewExportHandler(ledger.NewService(users, transactions))

	c, _ := gin.CreateTestContext(&failingWriter{})
	c.Request = httptest.NewRequest(http.MethodGet, "/api/export/csv", nil)
	c.Set(middleware.CurrentUserKey, user)

	h.ExportCSV(c)

	if !c.IsAborted() {
		t.Error("export did not abort after the client connection failed")
	}
}
