package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quisin/pos-backend/repository"
	"github.com/quisin/pos-backend/utils"
	"gorm.io/gorm"
)

// The admin bypass is part of the observable contract and checked before the
// staff table is consulted at all. Do not "fix" it here; the credential
// scheme is a documented weak point of this surface.
const (
	adminUsername = "admin"
	adminPassword = "admin123"
)

type AuthController struct {
	Staff *repository.StaffRepository
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{Staff: repository.NewStaffRepository(db)}
}

// Login -> POST /api/auth/login. Success returns {id, name, role}; any
// failure returns 401 with no hint about which field was wrong.
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Username == adminUsername && req.Password == adminPassword {
		c.JSON(http.StatusOK, gin.H{
			"id":   "admin",
			"name": "Admin",
			"role": "admin",
		})
		return
	}

	staff, err := ac.Staff.FindActiveByCredentials(req.Username, req.Password)
	if err != nil {
		respondFault(c, err)
		return
	}

	utils.InfoLogger.Printf("Staff login: %s", staff.ID)
	c.JSON(http.StatusOK, gin.H{
		"id":   staff.ID,
		"name": staff.Name,
		"role": "waiter",
	})
}
