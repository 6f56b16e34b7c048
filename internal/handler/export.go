package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Sumit10612/wealth-manager/internal/models"
	"github.com/Sumit10612/wealth-manager/internal/portfolio"
	"github.com/Sumit10612/wealth-manager/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler writes the full transaction history as a CSV or XLSX
// download.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

var exportHeaders = []string{
	"Scheme", "Asset Type", "Type", "Units", "NAV", "Amount",
	"Date", "Platform", "Account",
}

func (h *ExportHandler) load() ([]models.Transaction, error) {
	var txs []models.Transaction
	err := h.DB.Order("created_at DESC, id DESC").Find(&txs).Error
	return txs, err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ExportCSV streams all transactions as a CSV attachment.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	txs, err := h.load()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, tx := range txs {
		writer.Write([]string{
			tx.SchemeName,
			tx.AssetType,
			tx.TransactionType,
			strconv.FormatFloat(tx.Units, 'f', -1, 64),
			strconv.FormatFloat(tx.Nav, 'f', -1, 64),
			strconv.FormatFloat(tx.Amount, 'f', -1, 64),
			tx.Date,
			deref(tx.Platform),
			deref(tx.Account),
		})
	}
}

// ExportXLSX writes all transactions into a spreadsheet, with a
// portfolio-total row after the data.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	txs, err := h.load()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	f := excelize.NewFile()
	sheetName := "Transactions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create sheet")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, head := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, head)
	}

	for idx, tx := range txs {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), tx.SchemeName)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), tx.AssetType)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), tx.TransactionType)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), tx.Units)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), tx.Nav)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), tx.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), tx.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), deref(tx.Platform))
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), deref(tx.Account))
	}

	// total row below the data (Sell amounts count negative)
	sum := portfolio.Summarize(txs)
	totalRow := len(txs) + 3
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalRow), "Portfolio Value")
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", totalRow), sum.Total)

	f.SetColWidth(sheetName, "A", "A", 30)
	f.SetColWidth(sheetName, "B", "C", 14)
	f.SetColWidth(sheetName, "D", "F", 12)
	f.SetColWidth(sheetName, "G", "I", 14)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "Export failed")
	}
}
