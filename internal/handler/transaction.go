package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/MateusDuran/FinancasDX/internal/ledger"
	"github.com/MateusDuran/FinancasDX/internal/models"
	"github.com/MateusDuran/FinancasDX/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TransactionHandler exposes the ledger operations over HTTP.
type TransactionHandler struct {
	Ledger             *ledger.Service
	DefaultRecentLimit int
}

func NewTransactionHandler(svc *ledger.Service, defaultRecentLimit int) *TransactionHandler {
	if defaultRecentLimit <= 0 {
		defaultRecentLimit = 5
	}
	return &TransactionHandler{Ledger: svc, DefaultRecentLimit: defaultRecentLimit}
}

type createTransactionReq struct {
	Kind        string `json:"kind" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Timestamp   string `json:"timestamp"`
	Description string `json:"description" binding:"max=255"`
}

// parseTimestamp accepts the boundary format plus the common ISO forms
// the web client sends.
func parseTimestamp(s string) (*time.Time, error) {
	layouts := []string{
		ledger.TimeLayout,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("unrecognized timestamp format")
}

func (h *TransactionHandler) Create(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid amount")
		return
	}
	if err := util.ValidateAmount(amount); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid amount")
		return
	}

	var ts *time.Time
	if req.Timestamp != "" {
		ts, err = parseTimestamp(req.Timestamp)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid timestamp")
			return
		}
	}

	view, err := h.Ledger.Create(ledger.CreateInput{
		Kind:        req.Kind,
		Amount:      amount,
		Timestamp:   ts,
		Description: req.Description,
	}, user.Email)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	util.Success(c, util.Response{"transaction": view})
}

func (h *TransactionHandler) List(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var kindFilter *models.Kind
	if raw := c.Query("kind"); raw != "" {
		kind, err := models.ParseKind(raw)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "kind must be INCOME or EXPENSE")
			return
		}
		kindFilter = &kind
	}

	views, err := h.Ledger.List(user.Email, kindFilter)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	util.Success(c, util.Response{"transactions": views})
}

func (h *TransactionHandler) Recent(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	limit := h.DefaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "limit must be an integer")
			return
		}
		limit = n
	}

	views, err := h.Ledger.Recent(user.Email, limit)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	util.Success(c, util.Response{"transactions": views})
}

func (h *TransactionHandler) Balance(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	balance, err := h.Ledger.Balance(user.Email)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	util.Success(c, util.Response{"balance": balance.StringFixed(2)})
}

func writeLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "account not found")
	case errors.Is(err, ledger.ErrInvalidInput):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "operation failed, try again")
	}
}
