package main

import (
	"log"
	"net/http"
	"time"

	"github.com/Kingsavannah44/savannah-events-api/config"
	"github.com/Kingsavannah44/savannah-events-api/internal/handler"
	"github.com/Kingsavannah44/savannah-events-api/internal/middleware"
	"github.com/Kingsavannah44/savannah-events-api/internal/models"
	"github.com/Kingsavannah44/savannah-events-api/internal/repository"
	"github.com/Kingsavannah44/savannah-events-api/internal/service"
	"github.com/Kingsavannah44/savannah-events-api/pkg/database"
	"github.com/Kingsavannah44/savannah-events-api/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())
	database.SeedAdmin(db, cfg.AdminEmail, cfg.AdminName, cfg.AdminPassword)

	// RabbitMQ is optional: without a broker the API runs with
	// notifications disabled.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RABBITMQ_URL not set, notifications disabled")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	bookingSvc := service.NewBookingService(bookingRepo, eventRepo, publisher)
	eventSvc := service.NewEventService(eventRepo, publisher)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.JWTExpireMin)*time.Minute)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = handler.NewValidator()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "savannah-events-api"})
	})

	public := e.Group("/api/v1")
	authed := e.Group("/api/v1", middleware.JWTAuth(cfg.JWTSecret))
	admin := e.Group("/api/v1", middleware.JWTAuth(cfg.JWTSecret), middleware.RequireRole(models.RoleAdmin))

	handler.NewAuthHandler(authSvc).RegisterRoutes(public, authed)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(public, admin)
	handler.NewEventHandler(eventSvc).RegisterRoutes(public, admin)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("Savannah Events API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.StartServer(server))
}
