package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quisin/pos-backend/models"
	"github.com/quisin/pos-backend/repository"
	"github.com/quisin/pos-backend/utils"
	"gorm.io/gorm"
)

type StaffController struct {
	Repo *repository.StaffRepository
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{Repo: repository.NewStaffRepository(db)}
}

// GetAllStaff -> GET /api/staff, shift columns already reassembled into the
// nested sub-record by the repository.
func (sc *StaffController) GetAllStaff(c *gin.Context) {
	staff, err := sc.Repo.List()
	if err != nil {
		respondFault(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// CreateStaff -> POST /api/staff, echoes the caller-supplied id.
func (sc *StaffController) CreateStaff(c *gin.Context) {
	var staff models.Staff
	if err := c.ShouldBindJSON(&staff); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := sc.Repo.Create(staff)
	if err != nil {
		respondFault(c, err)
		return
	}

	utils.InfoLogger.Printf("New staff created: %s (id=%s)", staff.Name, id)
	utils.RespondCreated(c, id)
}
