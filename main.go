package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/natthaphon/eventpass/config"
	"github.com/natthaphon/eventpass/internal/handler"
	"github.com/natthaphon/eventpass/internal/middleware"
	"github.com/natthaphon/eventpass/internal/repository"
	"github.com/natthaphon/eventpass/internal/service"
	"github.com/natthaphon/eventpass/pkg/database"
	"github.com/natthaphon/eventpass/pkg/payment"
	"github.com/natthaphon/eventpass/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ publisher: lifecycle messages for downstream consumers
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer p.Close()
		publisher = p
	} else {
		log.Println("RABBITMQ_URL not set, lifecycle publishing disabled")
	}

	gateway := payment.NewStripeGateway(cfg.StripeAPIKey)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	rsvpRepo := repository.NewRSVPRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	ticketRepo := repository.NewTicketRepository(db)

	// Services
	eventSvc := service.NewEventService(eventRepo, userRepo, rsvpRepo, publisher)
	admissionSvc := service.NewAdmissionService(rsvpRepo, eventRepo, userRepo, publisher)
	moderationSvc := service.NewModerationService(rsvpRepo, eventRepo, publisher)
	checkoutSvc := service.NewCheckoutService(orderRepo, ticketRepo, eventRepo, userRepo, gateway, publisher, cfg.AppBaseURL)
	checkinSvc := service.NewCheckinService(ticketRepo, publisher)
	userSvc := service.NewUserService(userRepo, ticketRepo)

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
	e.Use(middleware.CallerIdentity())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "eventpass"})
	})

	handler.NewEventHandler(eventSvc).RegisterRoutes(e)
	handler.NewAdmissionHandler(admissionSvc).RegisterRoutes(e)
	handler.NewModerationHandler(moderationSvc).RegisterRoutes(e)
	handler.NewCheckoutHandler(checkoutSvc).RegisterRoutes(e)
	handler.NewCheckinHandler(checkinSvc).RegisterRoutes(e)
	handler.NewUserHandler(userSvc).RegisterRoutes(e)

	log.Printf("eventpass starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
