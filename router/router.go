package router

import (
	"github.com/gin-gonic/gin"
	"github.com/quisin/pos-backend/controllers"
	"github.com/quisin/pos-backend/middlewares"
	"gorm.io/gorm"
)

// SetupRouter wires every endpoint of the POS surface against the injected
// database handle.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	// registered before the routes so gin bakes it into every handler chain
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	menuCtrl := controllers.NewMenuController(db)
	staffCtrl := controllers.NewStaffController(db)
	tableCtrl := controllers.NewTableController(db)
	orderCtrl := controllers.NewOrderController(db)
	authCtrl := controllers.NewAuthController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		api.GET("/menu", menuCtrl.GetAllMenuItems)
		api.POST("/menu", menuCtrl.CreateMenuItem)

		api.GET("/staff", staffCtrl.GetAllStaff)
		api.POST("/staff", staffCtrl.CreateStaff)

		api.GET("/tables", tableCtrl.GetAllTables)
		api.POST("/tables", tableCtrl.CreateTable)

		api.GET("/orders", orderCtrl.GetAllOrders)
		api.POST("/orders", orderCtrl.CreateOrder)

		auth := api.Group("/auth")
		auth.Use(middlewares.NewLoginRateLimiter())
		{
			auth.POST("/login", authCtrl.Login)
		}
	}

	return r
}
