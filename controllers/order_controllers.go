package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quisin/pos-backend/models"
	"github.com/quisin/pos-backend/repository"
	"github.com/quisin/pos-backend/utils"
	"gorm.io/gorm"
)

type OrderController struct {
	Repo *repository.OrderRepository
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{Repo: repository.NewOrderRepository(db)}
}

// GetAllOrders -> GET /api/orders, items come back as structured objects,
// not serialized text.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Repo.List()
	if err != nil {
		respondFault(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder -> POST /api/orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := oc.Repo.Create(order)
	if err != nil {
		respondFault(c, err)
		return
	}

	utils.InfoLogger.Printf("New order created: %s (table=%s, waiter=%s)", id, order.TableID, order.WaiterID)
	utils.RespondCreated(c, id)
}
