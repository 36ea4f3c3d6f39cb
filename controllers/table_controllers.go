package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quisin/pos-backend/models"
	"github.com/quisin/pos-backend/repository"
	"github.com/quisin/pos-backend/utils"
	"gorm.io/gorm"
)

type TableController struct {
	Repo *repository.TableRepository
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{Repo: repository.NewTableRepository(db)}
}

// GetAllTables -> GET /api/tables
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.Repo.List()
	if err != nil {
		respondFault(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

// CreateTable -> POST /api/tables
func (tc *TableController) CreateTable(c *gin.Context) {
	var table models.Table
	if err := c.ShouldBindJSON(&table); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := tc.Repo.Create(table)
	if err != nil {
		respondFault(c, err)
		return
	}

	utils.InfoLogger.Printf("New table created: %s (seats=%d)", table.Number, table.Seats)
	utils.RespondCreated(c, id)
}
