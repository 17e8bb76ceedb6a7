package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/parthdave/couriersim/internal/engine"
	"github.com/parthdave/couriersim/internal/models"
	"github.com/parthdave/couriersim/internal/orders"
	"github.com/parthdave/couriersim/internal/producers"
	"go.uber.org/zap"
)

const defaultTopK = 3

// Handler exposes the prediction engine and order store over HTTP.
type Handler struct {
	engine   *engine.Engine
	store    *orders.Store
	gen      *orders.Generator
	producer producers.EventProducer
	topic    string
	logger   *zap.Logger
	now      func() time.Time
}

func NewHandler(eng *engine.Engine, store *orders.Store, gen *orders.Generator, producer producers.EventProducer, topic string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if producer == nil {
		producer = producers.NoopProducer{}
	}
	return &Handler{
		engine:   eng,
		store:    store,
		gen:      gen,
		producer: producer,
		topic:    topic,
		logger:   logger,
		now:      time.Now,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	Message string `json:"message"`
	RayID   string `json:"ray_id,omitempty"`
}

func errorJSON(c *fiber.Ctx, status int, message string) error {
	rayID, _ := c.Locals("requestid").(string)
	return c.Status(status).JSON(ErrorResponse{Message: message, RayID: rayID})
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

type predictRequest struct {
	Name string `json:"name"`
	Day  string `json:"day"`
}

type predictResponse struct {
	Customer           string                  `json:"customer"`
	Day                string                  `json:"day"`
	RecommendedWindows []models.SlotPrediction `json:"recommended_windows"`
	RealTimeFactors    fiber.Map               `json:"real_time_factors"`
}

// Predict recommends delivery windows for a customer on a given day,
// echoing the real-time factors that shaped the ranking.
func (h *Handler) Predict(c *fiber.Ctx) error {
	var req predictRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return errorJSON(c, fiber.StatusBadRequest, "name is required")
	}
	if req.Day == "" {
		req.Day = h.now().Weekday().String()
	}

	windows := h.engine.PredictWindows(c.Context(), req.Name, req.Day, defaultTopK)

	return c.JSON(predictResponse{
		Customer:           req.Name,
		Day:                req.Day,
		RecommendedWindows: windows,
		RealTimeFactors:    h.realTimeFactors(c, req.Name),
	})
}

// realTimeFactors narrows the current signals to what matters for one
// customer: their zone's traffic, the city weather, and any festival
// running today.
func (h *Handler) realTimeFactors(c *fiber.Ctx, name string) fiber.Map {
	factors := fiber.Map{}

	weather := h.engine.Signals().Weather(c.Context())
	factors["weather"] = fiber.Map{
		"conditions":    weather.Conditions,
		"temperature":   weather.Temperature.Current,
		"precipitation": weather.Precipitation.Chance,
	}

	if zone, ok := h.engine.Registry().ZoneOf(name); ok {
		if zt, found := h.engine.Signals().ZoneTraffic(c.Context(), zone); found {
			factors["traffic"] = fiber.Map{
				"zone":             zone,
				"congestion_level": zt.CongestionLevel,
				"status":           zt.Status,
			}
		}
	}

	calendar := h.engine.Signals().Festivals(c.Context())
	if calendar.HasFestivalToday {
		today := h.now().Format("2006-01-02")
		for _, festival := range calendar.Festivals {
			if festival.Date == today {
				factors["festival"] = fiber.Map{
					"name":           festival.Name,
					"traffic_impact": festival.TrafficImpact,
				}
				break
			}
		}
	}

	return factors
}

type optimizeRequest struct {
	OrderIDs []string `json:"order_ids"`
}

// OptimizeRoute turns a set of order IDs into a visiting order for the
// courier, minimizing total adjusted travel time.
func (h *Handler) OptimizeRoute(c *fiber.Ctx) error {
	var req optimizeRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.OrderIDs) == 0 {
		return errorJSON(c, fiber.StatusBadRequest, "order_ids is required")
	}

	names := h.store.CustomerNames(req.OrderIDs)
	plan, err := h.engine.OptimizeRoute(c.Context(), names)
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, err.Error())
	}
	return c.JSON(plan)
}

func (h *Handler) PendingOrders(c *fiber.Ctx) error {
	pending := h.store.Pending()
	if pending == nil {
		pending = []models.Order{}
	}
	return c.JSON(fiber.Map{"orders": pending, "count": len(pending)})
}

type addOrderRequest struct {
	Name        string `json:"name"`
	DeliveryDay string `json:"delivery_day"`
	PackageSize string `json:"package_size"`
}

// AddOrder creates a pending order for a known customer. Zone and address
// come from the registry; package size is randomized when unspecified.
func (h *Handler) AddOrder(c *fiber.Ctx) error {
	var req addOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return errorJSON(c, fiber.StatusBadRequest, "name is required")
	}

	customer, ok := h.engine.Registry().Customer(req.Name)
	if !ok {
		return errorJSON(c, fiber.StatusNotFound, "unknown customer")
	}
	if req.DeliveryDay == "" {
		req.DeliveryDay = h.now().Format("2006-01-02")
	}
	if req.PackageSize == "" {
		req.PackageSize = h.gen.RandomPackageSize()
	}

	order, err := h.store.Add(models.Order{
		CustomerName: customer.Name,
		DeliveryDay:  req.DeliveryDay,
		Zone:         customer.Zone,
		Address:      customer.Address,
		PackageSize:  req.PackageSize,
	})
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	h.publish("order_created", order)
	return c.Status(fiber.StatusCreated).JSON(order)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateOrderStatus(c *fiber.Ctx) error {
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid request body")
	}
	switch req.Status {
	case models.OrderStatusPending, models.OrderStatusDelivered, models.OrderStatusFailed:
	default:
		return errorJSON(c, fiber.StatusBadRequest, "invalid status")
	}

	order, err := h.store.UpdateStatus(c.Params("id"), req.Status)
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, err.Error())
	}

	h.publish("order_status_changed", order)
	return c.JSON(order)
}

// MarkDelivered records a delivery attempt outcome via ?success=true|false
// (defaults to success).
func (h *Handler) MarkDelivered(c *fiber.Ctx) error {
	success := c.QueryBool("success", true)

	order, err := h.store.MarkDelivered(c.Params("id"), success)
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, err.Error())
	}

	h.publish("order_status_changed", order)
	return c.JSON(order)
}

// RealTimeData serves the raw signal payloads. type=all bundles every
// signal with its one-line summary.
func (h *Handler) RealTimeData(c *fiber.Ctx) error {
	signalType := c.Query("type", "all")
	zone := c.Query("zone")

	if signalType == "all" {
		traffic := h.engine.Signals().Traffic(c.Context())
		weather := h.engine.Signals().Weather(c.Context())
		festivals := h.engine.Signals().Festivals(c.Context())
		today := h.now().Format("2006-01-02")

		return c.JSON(fiber.Map{
			"traffic":   traffic,
			"weather":   weather,
			"festivals": festivals,
			"summaries": fiber.Map{
				"traffic":   engine.TrafficSummary(traffic),
				"weather":   engine.WeatherSummary(weather),
				"festivals": engine.FestivalSummary(festivals, today),
			},
		})
	}

	payload, err := h.engine.Signals().Get(c.Context(), signalType, zone)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(payload)
}

func (h *Handler) publish(eventType string, order models.Order) {
	msg, err := producers.EncodeOrderEvent(eventType, order)
	if err != nil {
		h.logger.Warn("encode order event", zap.Error(err))
		return
	}
	if err := h.producer.WriteMessage(h.topic, msg); err != nil {
		h.logger.Warn("publish order event",
			zap.String("event", eventType), zap.Error(err))
	}
}
