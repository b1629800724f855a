package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-inventory-pro/internal/handler"
	"go-inventory-pro/internal/middleware"
	"go-inventory-pro/internal/model"
	"go-inventory-pro/internal/repository"
	"go-inventory-pro/internal/service"
	"go-inventory-pro/internal/ws"
	"go-inventory-pro/pkg/config"
	"go-inventory-pro/pkg/database"
	"go-inventory-pro/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg := config.Load()

	// 2. Logger
	if err := logger.Init(cfg.LogLevel, cfg.Environment, cfg.ServiceName); err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	zlog := logger.Get()
	zlog.Info("Starting inventory service", zap.String("environment", cfg.Environment))

	// 3. Database
	db := database.ConnectDB(cfg.DatabaseURL)
	if err := db.AutoMigrate(&model.Product{}, &model.Category{}, &model.Supplier{}, &model.Settings{}); err != nil {
		zlog.Fatal("Failed to run migrations", zap.Error(err))
	}

	// 4. WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)

	productService := service.NewProductService(productRepo, supplierRepo, wsHub)
	categoryService := service.NewCategoryService(categoryRepo)
	supplierService := service.NewSupplierService(supplierRepo, productRepo, wsHub)
	statusService := service.NewStatusService(productRepo, categoryRepo, supplierRepo, wsHub)
	dashboardService := service.NewDashboardService(productRepo)
	notificationService := service.NewNotificationService(productRepo, settingsRepo, wsHub)
	settingsService := service.NewSettingsService(settingsRepo)

	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	statusHandler := handler.NewStatusHandler(statusService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	settingsHandler := handler.NewSettingsHandler(settingsService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Inventory Pro v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS
	app.Use(middleware.RequestID())
	app.Use(middleware.Metrics())

	// 7. Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1")

	api.Get("/products", productHandler.GetProducts)
	api.Post("/products", productHandler.CreateProduct)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)

	api.Get("/categories", categoryHandler.GetCategories)
	api.Post("/categories", categoryHandler.CreateCategory)
	api.Put("/categories/:id", categoryHandler.UpdateCategory)
	api.Delete("/categories/:id", categoryHandler.DeleteCategory)

	api.Get("/suppliers", supplierHandler.GetSuppliers)
	api.Post("/suppliers", supplierHandler.CreateSupplier)
	api.Get("/suppliers/:id", supplierHandler.GetSupplier)
	api.Put("/suppliers/:id", supplierHandler.UpdateSupplier)
	api.Delete("/suppliers/:id", supplierHandler.DeleteSupplier)

	api.Post("/activate", statusHandler.ActivateItem)
	api.Get("/inactive", statusHandler.GetInactiveItems)

	api.Get("/dashboard", dashboardHandler.GetDashboardStats)
	api.Post("/notifications/low-stock", notificationHandler.SendLowStockAlert)

	api.Get("/settings", settingsHandler.GetSettings)
	api.Put("/settings", settingsHandler.UpdateSettings)
	api.Delete("/settings", settingsHandler.ResetSettings)

	// WebSocket Route
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
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Fatal("Server stopped", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		zlog.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zlog.Info("Server exited")
}
