package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-warehouse-ws/internal/config"
	"go-warehouse-ws/internal/event"
	"go-warehouse-ws/internal/handler"
	"go-warehouse-ws/internal/kafka"
	"go-warehouse-ws/internal/middleware"
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/internal/schema"
	"go-warehouse-ws/internal/service"
	"go-warehouse-ws/internal/ws"
	"go-warehouse-ws/pkg/database"
	"go-warehouse-ws/pkg/jwt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Setup Database
	bootCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := database.EnsureDatabase(bootCtx, &cfg.Database); err != nil {
		log.Fatalf("Failed to ensure database: %v", err)
	}
	db, err := database.ConnectDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := schema.Initialize(bootCtx, db); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	// 3. Setup WebSocket Hub and event sinks
	wsHub := ws.NewHub()
	go wsHub.Run()
	defer wsHub.Stop()

	notifier := event.Fanout{wsHub}
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := kafka.NewProducer(cfg.Kafka.Brokers, 10, 3*time.Second)
		if err != nil {
			log.Fatalf("Failed to start Kafka producer: %v", err)
		}
		defer producer.Close()
		notifier = append(notifier, producer)
	}

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	soldRepo := repository.NewSoldProductRepo(db)
	userRepo := repository.NewUserRepo(db)
	txManager := repository.NewTxManager(db)
	tokens := jwt.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	productService := service.NewProductService(productRepo, notifier)
	saleService := service.NewSaleService(soldRepo, txManager, notifier)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, tokens)

	// 5. Seed default admin user
	created, err := userService.SeedAdmin(bootCtx, cfg.Auth.AdminNumber, cfg.Auth.AdminPassword)
	if err != nil {
		log.Printf("Warning: Failed to seed admin user: %v", err)
	} else if created {
		log.Printf("Admin user created: %s", cfg.Auth.AdminNumber)
	}

	handlers := handler.Handlers{
		Product:   handler.NewProductHandler(productService),
		Sale:      handler.NewSaleHandler(saleService),
		User:      handler.NewUserHandler(userService),
		Buyer:     handler.NewBuyerHandler(service.NewBuyerService(repository.NewBuyerRepo(db))),
		Category:  handler.NewCategoryHandler(service.NewCategoryService(repository.NewCategoryRepo(db))),
		Tower:     handler.NewTowerHandler(service.NewTowerService(repository.NewTowerRepo(db))),
		Equipment: handler.NewEquipmentHandler(service.NewEquipmentService(repository.NewEquipmentRepo(db))),
		Auth:      handler.NewAuthHandler(authService),
	}

	var guards handler.Guards
	if cfg.Auth.Required {
		auth := middleware.RequireAuth(tokens)
		guards.Write = []fiber.Handler{auth}
		guards.Admin = []fiber.Handler{auth, middleware.RequireRole(model.RoleAdmin)}
	}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: handler.ErrorHandler(log.Printf),
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CORSOrigin,
		AllowMethods:     "GET,POST",
		AllowCredentials: true,
	}))

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		if !wsHub.Join(c) {
			return
		}
		defer wsHub.Leave(c)

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Routes
	api := app.Group("", middleware.Timeout(cfg.App.RequestTimeout))
	handler.Register(api, handlers, guards)

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.App.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
