package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-stockpilot/internal/handler"
	"go-stockpilot/internal/middleware"
	"go-stockpilot/internal/model"
	"go-stockpilot/internal/repository"
	"go-stockpilot/internal/service"
	"go-stockpilot/internal/ws"
	"go-stockpilot/pkg/config"
	"go-stockpilot/pkg/database"
	"go-stockpilot/pkg/jwt"
	"go-stockpilot/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Options{
		ServiceName: "stockpilot-api",
		Level:       cfg.LogLevel,
		Console:     !cfg.IsProduction(),
	})

	// A failed connection is not fatal: the server still starts and the
	// database gate answers 503 until the database comes back.
	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("database unavailable at startup, API requests will return 503")
	}

	if db != nil {
		if err := db.AutoMigrate(
			&model.User{},
			&model.Category{},
			&model.Supplier{},
			&model.Product{},
			&model.Transaction{},
			&model.PurchaseOrder{},
			&model.Notification{},
		); err != nil {
			log.Error().Err(err).Msg("auto migration failed")
		}
		seedAdminUser(db, cfg, log)
	}

	wsHub := ws.NewHub(log)
	go wsHub.Run()

	tokens := jwt.NewManager(cfg.JWTSecret, cfg.JWTExpiry, cfg.RefreshExpiry)

	// Wiring
	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	poRepo := repository.NewPurchaseOrderRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)

	notificationService := service.NewNotificationService(notificationRepo, wsHub, log)
	inventoryService := service.NewInventoryService(productRepo, txRepo, notificationService, db, wsHub, log)
	productService := service.NewProductService(productRepo, notificationService, cfg.FrontendURL, log)
	categoryService := service.NewCategoryService(categoryRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	poService := service.NewPurchaseOrderService(poRepo, productRepo, supplierRepo, txRepo, notificationService, db, wsHub, log)
	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	dashboardService := service.NewDashboardService(productRepo, txRepo, poRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService, inventoryService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	transactionHandler := handler.NewTransactionHandler(inventoryService)
	poHandler := handler.NewPurchaseOrderHandler(poService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	app := fiber.New(fiber.Config{
		AppName: "StockPilot API v1.0",
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURL,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":    "StockPilot API",
			"version": "1.0",
			"status":  "ok",
			"endpoints": fiber.Map{
				"auth":            "/api/auth",
				"products":        "/api/products",
				"categories":      "/api/categories",
				"suppliers":       "/api/suppliers",
				"transactions":    "/api/transactions",
				"purchase_orders": "/api/purchase-orders",
				"notifications":   "/api/notifications",
				"dashboard":       "/api/dashboard",
				"websocket":       "/ws",
			},
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		if db == nil || database.Ping(db) != nil {
			dbStatus = "down"
		}
		return c.JSON(fiber.Map{"status": "ok", "database": dbStatus})
	})

	api := app.Group("/api", middleware.RequireDatabase(db))

	// Public auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Everything below requires a valid token.
	protected := api.Group("", middleware.RequireAuth(tokens))

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/logout", authHandler.Logout)

	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/stats", productHandler.Stats)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.Get)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", middleware.RequireAdmin(), productHandler.Delete)
	products.Patch("/:id/stock", productHandler.UpdateStock)
	products.Get("/:id/transactions", productHandler.Transactions)
	products.Get("/:id/qrcode", productHandler.QRCode)

	categories := protected.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.Get)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", middleware.RequireAdmin(), categoryHandler.Delete)

	suppliers := protected.Group("/suppliers")
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.Get)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", middleware.RequireAdmin(), supplierHandler.Delete)

	transactions := protected.Group("/transactions")
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/stats", transactionHandler.Stats)
	transactions.Get("/product/:productId", transactionHandler.ByProduct)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/:id", transactionHandler.Get)

	orders := protected.Group("/purchase-orders")
	orders.Get("/", poHandler.List)
	orders.Get("/:id", poHandler.Get)
	orders.Post("/", middleware.RequireAdmin(), poHandler.Create)
	orders.Put("/:id/status", middleware.RequireAdmin(), poHandler.UpdateStatus)
	orders.Delete("/:id", middleware.RequireAdmin(), poHandler.Cancel)

	notifications := protected.Group("/notifications")
	notifications.Get("/", notificationHandler.List)
	notifications.Patch("/read-all", notificationHandler.MarkAllRead)
	notifications.Patch("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.Delete)

	dashboard := protected.Group("/dashboard")
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/charts", dashboardHandler.Charts)
	dashboard.Get("/recent-activity", dashboardHandler.RecentActivity)

	users := protected.Group("/users", middleware.RequireAdmin())
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// WebSocket endpoint for live stock/PO/notification events.
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}

// seedAdminUser creates the bootstrap admin account on first run.
func seedAdminUser(db *gorm.DB, cfg *config.Config, log zerolog.Logger) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail(cfg.AdminEmail); err == nil {
		return
	}

	admin := &model.User{
		Name:     "Administrator",
		Email:    cfg.AdminEmail,
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	if err := admin.SetPassword(cfg.AdminPassword); err != nil {
		log.Warn().Err(err).Msg("failed to hash admin password")
		return
	}
	if err := userRepo.Create(admin); err != nil {
		log.Warn().Err(err).Msg("failed to seed admin user")
		return
	}
	log.Info().Str("email", cfg.AdminEmail).Msg("admin user created")
}
