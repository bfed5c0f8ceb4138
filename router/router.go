package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/Thuanphan093164/Qly-NhaHang/controllers"
	"github.com/Thuanphan093164/Qly-NhaHang/middlewares"
	"github.com/Thuanphan093164/Qly-NhaHang/models"
	"github.com/Thuanphan093164/Qly-NhaHang/services"
)

// SetupRouter wires every endpoint. Customer-facing routes (menu,
// booking, ordering from the table QR code) are public; management and
// kitchen routes sit behind JWT auth.
func SetupRouter(db *gorm.DB, prepared *services.PreparedStore) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	tableCtrl := controllers.NewTableController(db)
	bookingCtrl := controllers.NewBookingController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)
	kitchenCtrl := controllers.NewKitchenController(db, prepared)
	adminCtrl := controllers.NewAdminController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Login/register sit behind a stricter limiter.
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// -- CUSTOMER (no auth) --
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/menu-items", menuCtrl.GetAllMenuItems)

	r.GET("/booking/tables", bookingCtrl.ListTables)
	r.POST("/bookings", bookingCtrl.CreateBooking)
	r.GET("/bookings/:reference", bookingCtrl.GetBookingByReference)

	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)

	// -- STAFF / ADMIN --
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)

		// Tables
		auth.GET("/tables", tableCtrl.GetAllTables)
		auth.POST("/tables", tableCtrl.CreateTable)
		auth.GET("/tables/:table_id", tableCtrl.GetTableByID)
		auth.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
		auth.POST("/tables/status", tableCtrl.UpdateTableStatus)
		auth.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

		// Bookings
		auth.GET("/bookings", bookingCtrl.GetAllBookings)

		// Categories and menu
		auth.POST("/categories", categoryCtrl.CreateCategory)
		auth.PATCH("/categories/:cat_id", categoryCtrl.UpdateCategory)
		auth.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)

		auth.GET("/menu-items", menuCtrl.GetMenuItemsAdmin)
		auth.GET("/menu-items/:item_id", menuCtrl.GetMenuItemByID)
		auth.POST("/menu-items", menuCtrl.CreateMenuItem)
		auth.PATCH("/menu-items/:item_id", menuCtrl.UpdateMenuItem)
		auth.DELETE("/menu-items/:item_id", menuCtrl.DeleteMenuItem)

		// Orders
		auth.GET("/orders", orderCtrl.GetAllOrders)
		auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		auth.POST("/orders/:order_id/start", orderCtrl.StartOrder)
		auth.POST("/orders/:order_id/complete", orderCtrl.CompleteOrder)
		auth.POST("/orders/:order_id/pay", orderCtrl.PayOrder)
		auth.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

		// Kitchen display
		kitchen := auth.Group("/kitchen")
		kitchen.Use(middlewares.RequireRole(models.RoleAdmin, models.RoleStaff, models.RoleKitchen))
		{
			kitchen.GET("/display", kitchenCtrl.GetKitchenDisplay)
			kitchen.POST("/items/:detail_id/prepared", kitchenCtrl.MarkItemPrepared)
		}

		// Dashboard
		auth.GET("/dashboard/stats", adminCtrl.GetDashboardStats)
	}

	// Websocket clients authenticate with ?token=
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("", controllers.KDSHandler)
	}

	return r
}
