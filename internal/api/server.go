package api

import (
	"fmt"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/parthdave/couriersim/internal/logger"
	"github.com/parthdave/couriersim/internal/models"
	"go.uber.org/zap"
)

// Server holds the Fiber application and configuration.
type Server struct {
	App *fiber.App
	cfg *models.Config
}

// New creates a new Server instance with configured middleware and routes.
func New(cfg *models.Config, h *Handler) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "couriersim",
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	app.Get("/health", h.Health)
	app.Post("/predict", h.Predict)
	app.Post("/optimize_route", h.OptimizeRoute)
	app.Get("/pending_orders", h.PendingOrders)
	app.Post("/orders", h.AddOrder)
	app.Post("/orders/:id/status", h.UpdateOrderStatus)
	app.Get("/orders/:id/delivered", h.MarkDelivered)
	app.Get("/real_time_data", h.RealTimeData)

	return &Server{
		App: app,
		cfg: cfg,
	}
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}
