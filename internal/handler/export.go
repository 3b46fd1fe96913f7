package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/MateusDuran/FinancasDX/internal/ledger"
	"github.com/MateusDuran/FinancasDX/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ExportHandler streams the caller's full transaction history as a
// downloadable file.
type ExportHandler struct {
	Ledger *ledger.Service
}

func NewExportHandler(svc *ledger.Service) *ExportHandler {
	return &ExportHandler{Ledger: svc}
}

var exportHeaders = []string{"Kind", "Amount", "Description", "Timestamp"}

// exportFileName gives every download a unique name so repeated
// exports do not collide in the user's download folder.
func exportFileName(ext string) string {
	return fmt.Sprintf("transactions_%s_%s.%s",
		time.Now().Format("20060102"), uuid.New().String()[:8], ext)
}

func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	views, err := h.Ledger.List(user.Email, nil)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", exportFileName("csv")))

	writer := csv.NewWriter(c.Writer)
	writer.Write(exportHeaders)
	for _, v := range views {
		writer.Write([]string{v.Kind, v.Amount, v.Description, v.Timestamp})
	}
	writer.Flush()

	// headers are already streaming; on a dead client just stop
	if err := writer.Error(); err != nil {
		c.Abort()
	}
}

func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	views, err := h.Ledger.List(user.Email, nil)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	f := excelize.NewFile()
	sheetName := "Transactions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create sheet")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}
	for idx, v := range views {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), v.Kind)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), v.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), v.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), v.Timestamp)
	}

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "D", 20)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", exportFileName("xlsx")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}
