package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ELWAANY111/Verto-Store55/config"
	"github.com/ELWAANY111/Verto-Store55/database"
	"github.com/ELWAANY111/Verto-Store55/handlers"
	"github.com/ELWAANY111/Verto-Store55/mailer"
	custommiddleware "github.com/ELWAANY111/Verto-Store55/middleware"
	"github.com/ELWAANY111/Verto-Store55/models"
	"github.com/ELWAANY111/Verto-Store55/queue"
	"github.com/ELWAANY111/Verto-Store55/repositories"
	"github.com/ELWAANY111/Verto-Store55/routes"
	"github.com/ELWAANY111/Verto-Store55/services"
	"github.com/ELWAANY111/Verto-Store55/uploads"
)

func main() {
	// Load environment variables
	config.LoadEnv()
	cfg := config.Load()

	// Initialize Echo
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(custommiddleware.Metrics)

	// Connect to MongoDB
	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Local image store for product uploads
	fileStore, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to initialize upload directory:", err)
	}

	productRepo := repositories.NewMongoProductRepository(db)
	orderRepo := repositories.NewMongoOrderRepository(db)

	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, cfg.OrderNotifyEmail)

	// Orders notify the admin through RabbitMQ when configured, so checkout
	// latency does not depend on the mail provider. Without a broker the
	// mailer is used directly.
	notifier := services.Notifier(mail)
	var mqClient *queue.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = queue.NewClient(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()

		err = mqClient.ConsumeOrderNotifications(func(order models.Order) error {
			return mail.NotifyOrderCreated(&order)
		})
		if err != nil {
			log.Fatalf("Failed to start notification consumer: %v", err)
		}
		notifier = mqClient
		log.Println("Order notifications dispatched through RabbitMQ")
	} else {
		log.Println("RABBITMQ_URL not set, sending order notifications directly")
	}

	productService := services.NewProductService(productRepo, fileStore)
	orderService := services.NewOrderService(orderRepo, notifier)

	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	authHandler := handlers.NewAuthHandler(cfg.AdminEmail, cfg.AdminPasswordHash)

	// Setup routes
	routes.SetupRoutes(e, productHandler, orderHandler, authHandler, cfg.UploadDir)

	// Start the server
	go func() {
		log.Printf("Server starting on port %s...", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
