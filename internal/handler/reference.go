package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Sumit10612/wealth-manager/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReferenceHandler serves the three reference tables (asset_types,
// platforms, accounts). They share one shape, so a single handler is
// parameterized by table name. Reference rows are created and deleted,
// never updated in place.
type ReferenceHandler struct {
	DB    *gorm.DB
	Table string
}

func NewReferenceHandler(db *gorm.DB, table string) *ReferenceHandler {
	return &ReferenceHandler{DB: db, Table: table}
}

type refRow struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type createRefReq struct {
	Name string `json:"name" binding:"required"`
}

// List returns all rows ordered by name ascending.
func (h *ReferenceHandler) List(c *gin.Context) {
	rows := make([]refRow, 0)
	if err := h.DB.Table(h.Table).Order("name ASC").Find(&rows).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	util.JSON(c, rows)
}

// Create inserts a new named row. A duplicate name is reported as a
// conflict rather than a generic storage failure.
func (h *ReferenceHandler) Create(c *gin.Context) {
	var req createRefReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Name is required")
		return
	}

	row := refRow{Name: req.Name}
	if err := h.DB.Table(h.Table).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.Error(c, http.StatusConflict, "Name already exists")
			return
		}
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	util.Success(c, util.Response{
		"id":   row.ID,
		"name": row.Name,
	})
}

// Delete removes a row by id. Deleting an id that does not exist is
// still a success; transactions citing the deleted name keep it.
func (h *ReferenceHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.DB.Table(h.Table).Where("id = ?", id).Delete(&refRow{}).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	util.Success(c, util.Response{"success": true})
}
