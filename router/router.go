package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bill-printing-app/config"
	"github.com/yeremiapane/bill-printing-app/controllers"
	"github.com/yeremiapane/bill-printing-app/kds"
	"github.com/yeremiapane/bill-printing-app/middlewares"
	"github.com/yeremiapane/bill-printing-app/models"
	"github.com/yeremiapane/bill-printing-app/receipt"
	"github.com/yeremiapane/bill-printing-app/services"
	"gorm.io/gorm"
)

// Deps is everything the HTTP layer needs, built by main.
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	Orders *services.OrderService
	Hub    *kds.Hub
}

func SetupRouter(deps Deps) *gin.Engine {
	cfg := deps.Config
	secret := []byte(cfg.JWTSecret)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigins))
	r.Use(middlewares.LoggerMiddleware())

	// Controllers
	healthCtrl := controllers.NewHealthController(deps.DB)
	userCtrl := controllers.NewUserController(deps.DB, secret)
	menuCtrl := controllers.NewMenuController(deps.DB)
	inventoryCtrl := controllers.NewInventoryController(deps.DB)
	customerCtrl := controllers.NewCustomerController(deps.DB)
	orderCtrl := controllers.NewOrderController(deps.Orders)
	paymentCtrl := controllers.NewPaymentController(deps.Orders)
	receiptCtrl := controllers.NewReceiptController(deps.Orders, receipt.RestaurantInfo{
		Name:    cfg.RestaurantName,
		Address: cfg.RestaurantAddress,
		Phone:   cfg.RestaurantPhone,
	})
	adminCtrl := controllers.NewAdminController(deps.Orders)
	kdsCtrl := controllers.NewKDSController(deps.Hub, cfg.CORSOrigins)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/", healthCtrl.Root)
	r.GET("/test", healthCtrl.TestDatabase)

	loginLimiter := middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	r.POST("/login", loginLimiter.RateLimit(), userCtrl.Login)

	r.GET("/menu", menuCtrl.GetAllMenus)

	orders := r.Group("/orders")
	{
		orders.POST("", orderCtrl.CreateOrder)
		orders.GET("", orderCtrl.ListOrders)
		orders.PATCH("/:order_id/status", orderCtrl.UpdateOrderStatus)
		orders.POST("/:order_id/pay", paymentCtrl.AddPayment)
		orders.GET("/:order_id/bill", orderCtrl.GetOrderBill)
		orders.GET("/:order_id/bill/pdf", receiptCtrl.GetBillPDF)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware(secret))

	auth.GET("/profile", userCtrl.GetProfile)

	// KDS feed for kitchen and floor staff
	auth.GET("/kds/ws", middlewares.RequireRole(models.RoleChef, models.RoleStaff), kdsCtrl.Stream)

	staff := auth.Group("")
	staff.Use(middlewares.RequireRole(models.RoleStaff))
	{
		staff.POST("/menu", menuCtrl.CreateMenu)

		staff.POST("/inventory", inventoryCtrl.CreateInventoryItem)
		staff.GET("/inventory", inventoryCtrl.GetAllInventory)

		staff.POST("/customers", customerCtrl.CreateCustomer)
		staff.GET("/customers", customerCtrl.GetAllCustomers)
	}

	// Reports, admin only
	auth.POST("/reports/sales", middlewares.RequireRole(), adminCtrl.GetSalesReport)

	return r
}
