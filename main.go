package main

import (
	"log"

	"github.com/ljbenitez/hotel-reservas/config"
	"github.com/ljbenitez/hotel-reservas/internal/handler"
	"github.com/ljbenitez/hotel-reservas/internal/middleware"
	"github.com/ljbenitez/hotel-reservas/internal/repository"
	"github.com/ljbenitez/hotel-reservas/internal/service"
	"github.com/ljbenitez/hotel-reservas/pkg/database"
	"github.com/ljbenitez/hotel-reservas/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Optional broker: reservation events for downstream consumers.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	}

	// Repositories
	hotelRepo := repository.NewHotelRepository(db)
	habitacionRepo := repository.NewHabitacionRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	reservaRepo := repository.NewReservaRepository(db)

	// Service
	reservaSvc := service.NewReservaService(reservaRepo, habitacionRepo, clienteRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
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
		return c.JSON(200, map[string]string{"status": "ok", "service": "hotel-reservas"})
	})

	handler.NewReservaHandler(reservaSvc).RegisterRoutes(e)
	handler.NewHotelHandler(hotelRepo).RegisterRoutes(e)
	handler.NewHabitacionHandler(habitacionRepo).RegisterRoutes(e)
	handler.NewClienteHandler(clienteRepo).RegisterRoutes(e)

	log.Printf("Hotel reservas API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
