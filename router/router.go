package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/prameswara/restofoh/controllers"
	"github.com/prameswara/restofoh/floor"
	"github.com/prameswara/restofoh/metrics"
	"github.com/prameswara/restofoh/middlewares"
)

func SetupRouter(db *gorm.DB, coord *floor.Coordinator) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	floorCtrl := controllers.NewFloorController(coord)
	reservationCtrl := controllers.NewReservationController(coord)
	waitlistCtrl := controllers.NewWaitlistController(coord)
	menuCtrl := controllers.NewMenuController(db)
	inventoryCtrl := controllers.NewInventoryController(db)
	orderCtrl := controllers.NewOrderController(db)
	staffCtrl := controllers.NewStaffController(db)
	reportCtrl := controllers.NewReportController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ----------------------------------------------------------------
	//                    FLOOR / TABLES / WAITLIST
	// ----------------------------------------------------------------
	r.GET("/floor", floorCtrl.GetFloor)
	r.GET("/floor/stats", floorCtrl.GetDashboardStats)

	// Endpoint mutasi denah dibatasi token bucket terpisah dari limiter global
	writeLimit := middlewares.NewWriteRateLimiter()

	tables := r.Group("/tables")
	{
		tables.GET("", floorCtrl.GetAllTables)
		tables.POST("", writeLimit, floorCtrl.CreateTable)
		tables.GET("/:table_id", floorCtrl.GetTableByID)
		tables.PATCH("/:table_id", writeLimit, floorCtrl.UpdateTable)
		tables.PATCH("/:table_id/position", writeLimit, floorCtrl.MoveTable)
		tables.PATCH("/:table_id/status", writeLimit, floorCtrl.UpdateTableStatus)
		tables.DELETE("/:table_id", writeLimit, floorCtrl.DeleteTable)
	}

	reservations := r.Group("/reservations")
	{
		reservations.GET("", reservationCtrl.GetAllReservations)
		reservations.POST("", writeLimit, reservationCtrl.CreateReservation)
		reservations.GET("/:reservation_id", reservationCtrl.GetReservationByID)
		reservations.PATCH("/:reservation_id", writeLimit, reservationCtrl.UpdateReservation)
		reservations.POST("/:reservation_id/cancel", writeLimit, reservationCtrl.CancelReservation)
	}

	waitlist := r.Group("/waitlist")
	{
		waitlist.GET("", waitlistCtrl.GetWaitlist)
		waitlist.POST("", writeLimit, waitlistCtrl.AddToWaitlist)
		waitlist.GET("/:entry_id", waitlistCtrl.GetWaitlistEntryByID)
		waitlist.PATCH("/:entry_id", writeLimit, waitlistCtrl.UpdateWaitlistEntry)
		waitlist.POST("/:entry_id/notify", writeLimit, waitlistCtrl.NotifyCustomer)
		waitlist.POST("/:entry_id/remove", writeLimit, waitlistCtrl.RemoveFromWaitlist)
		waitlist.POST("/:entry_id/seat", writeLimit, waitlistCtrl.SeatFromWaitlist)
	}

	// ----------------------------------------------------------------
	//                      MENU / INVENTORY
	// ----------------------------------------------------------------
	r.GET("/categories", menuCtrl.GetAllCategories)
	r.POST("/categories", menuCtrl.CreateCategory)
	r.DELETE("/categories/:category_id", menuCtrl.DeleteCategory)

	menus := r.Group("/menus")
	{
		menus.GET("", menuCtrl.GetAllMenuItems)
		menus.POST("", menuCtrl.CreateMenuItem)
		menus.GET("/:item_id", menuCtrl.GetMenuItemByID)
		menus.PATCH("/:item_id", menuCtrl.UpdateMenuItem)
		menus.DELETE("/:item_id", menuCtrl.DeleteMenuItem)
	}

	inventory := r.Group("/inventory")
	{
		inventory.GET("", inventoryCtrl.GetAllItems)
		inventory.POST("", inventoryCtrl.CreateItem)
		inventory.GET("/low-stock", inventoryCtrl.GetLowStock)
		inventory.GET("/:item_id", inventoryCtrl.GetItemByID)
		inventory.PATCH("/:item_id", inventoryCtrl.UpdateItem)
		inventory.POST("/:item_id/adjust", inventoryCtrl.AdjustStock)
		inventory.DELETE("/:item_id", inventoryCtrl.DeleteItem)
	}

	// ----------------------------------------------------------------
	//                     ORDERS / KITCHEN / STAFF
	// ----------------------------------------------------------------
	orders := r.Group("/orders")
	{
		orders.GET("", orderCtrl.GetAllOrders)
		orders.POST("", orderCtrl.CreateOrder)
		orders.GET("/:order_id", orderCtrl.GetOrderByID)
		orders.PATCH("/:order_id/status", orderCtrl.UpdateOrderStatus)
		orders.DELETE("/:order_id", orderCtrl.DeleteOrder)
	}
	r.GET("/kitchen/queue", orderCtrl.GetKitchenQueue)

	staff := r.Group("/staff")
	{
		staff.GET("", staffCtrl.GetAllStaff)
		staff.POST("", staffCtrl.CreateStaff)
		staff.GET("/:staff_id", staffCtrl.GetStaffByID)
		staff.PATCH("/:staff_id", staffCtrl.UpdateStaff)
		staff.DELETE("/:staff_id", staffCtrl.DeleteStaff)
	}

	// ----------------------------------------------------------------
	//                           REPORTS
	// ----------------------------------------------------------------
	reports := r.Group("/reports")
	{
		reports.GET("/sales", reportCtrl.GetSalesReport)
		reports.GET("/inventory", reportCtrl.GetInventoryReport)
		reports.GET("/staff", reportCtrl.GetStaffReport)
	}

	return r
}
