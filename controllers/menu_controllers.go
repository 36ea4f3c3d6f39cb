package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quisin/pos-backend/models"
	"github.com/quisin/pos-backend/repository"
	"github.com/quisin/pos-backend/utils"
	"gorm.io/gorm"
)

type MenuController struct {
	Repo *repository.MenuItemRepository
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{Repo: repository.NewMenuItemRepository(db)}
}

// GetAllMenuItems -> GET /api/menu
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	items, err := mc.Repo.List()
	if err != nil {
		respondFault(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateMenuItem -> POST /api/menu, responds with the generated id.
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := mc.Repo.Create(item)
	if err != nil {
		respondFault(c, err)
		return
	}

	utils.InfoLogger.Printf("New menu item created: %s (id=%d)", item.Name, id)
	utils.RespondCreated(c, id)
}
