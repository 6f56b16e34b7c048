package handler

import (
	"net/http"
	"strconv"

	"github.com/Sumit10612/wealth-manager/internal/models"
	"github.com/Sumit10612/wealth-manager/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TransactionHandler serves transaction CRUD and filtered listing.
type TransactionHandler struct {
	DB *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{DB: db}
}

// transactionReq carries the full field set for create and update.
// Units, nav and amount bind through pointers: zero is a legal value,
// only a missing field fails validation.
type transactionReq struct {
	SchemeName      string   `json:"scheme_name" binding:"required"`
	AssetType       string   `json:"asset_type" binding:"required"`
	TransactionType string   `json:"transaction_type" binding:"required"`
	Units           *float64 `json:"units" binding:"required"`
	Nav             *float64 `json:"nav" binding:"required"`
	Amount          *float64 `json:"amount" binding:"required"`
	Date            string   `json:"date" binding:"required"`
	Platform        *string  `json:"platform"`
	Account         *string  `json:"account"`
}

// List returns transactions newest first. The assetType, platform and
// account query parameters are exact-match filters combined with AND;
// absent parameters do not constrain the result.
func (h *TransactionHandler) List(c *gin.Context) {
	q := h.DB.Model(&models.Transaction{})

	if v := c.Query("assetType"); v != "" {
		q = q.Where("asset_type = ?", v)
	}
	if v := c.Query("platform"); v != "" {
		q = q.Where("platform = ?", v)
	}
	if v := c.Query("account"); v != "" {
		q = q.Where("account = ?", v)
	}

	txs := make([]models.Transaction, 0)
	if err := q.Order("created_at DESC, id DESC").Find(&txs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	util.JSON(c, txs)
}

// Get returns a single transaction by id.
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusNotFound, "Transaction not found")
		return
	}

	var tx models.Transaction
	if err := h.DB.First(&tx, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "Transaction not found")
		} else {
			util.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	util.JSON(c, tx)
}

// Create inserts a transaction. No validation beyond field presence:
// transaction_type and asset_type are stored as given, whether or not
// a matching reference row exists.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	tx := models.Transaction{
		SchemeName:      req.SchemeName,
		AssetType:       req.AssetType,
		TransactionType: req.TransactionType,
		Units:           *req.Units,
		Nav:             *req.Nav,
		Amount:          *req.Amount,
		Date:            req.Date,
		Platform:        req.Platform,
		Account:         req.Account,
	}

	if err := h.DB.Create(&tx).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	util.Success(c, util.Response{
		"id":      tx.ID,
		"message": "Transaction created",
	})
}

// Update overwrites every field of an existing transaction. Partial
// patching is not supported; id and created_at are never touched.
func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusNotFound, "Transaction not found")
		return
	}

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	res := h.DB.Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"scheme_name":      req.SchemeName,
			"asset_type":       req.AssetType,
			"transaction_type": req.TransactionType,
			"units":            req.Units,
			"nav":              req.Nav,
			"amount":           req.Amount,
			"date":             req.Date,
			"platform":         req.Platform,
			"account":          req.Account,
		})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, "Transaction not found")
		return
	}

	util.Success(c, util.Response{"message": "Transaction updated"})
}

// Delete removes a transaction by id.
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusNotFound, "Transaction not found")
		return
	}

	res := h.DB.Delete(&models.Transaction{}, id)
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, "Transaction not found")
		return
	}

	util.Success(c, util.Response{"message": "Transaction deleted"})
}
