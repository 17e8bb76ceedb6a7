package api

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/parthdave/couriersim/internal/engine"
	"github.com/parthdave/couriersim/internal/history"
	"github.com/parthdave/couriersim/internal/models"
	"github.com/parthdave/couriersim/internal/orders"
	"github.com/parthdave/couriersim/internal/signals"
	"github.com/parthdave/couriersim/internal/zones"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	payloads map[string][]byte
}

func (s staticSource) Fetch(_ context.Context, signalType string) ([]byte, error) {
	return s.payloads[signalType], nil
}

type captureProducer struct {
	topics []string
	bodies [][]byte
}

func (p *captureProducer) WriteMessage(topic string, msg []byte) error {
	p.topics = append(p.topics, topic)
	p.bodies = append(p.bodies, msg)
	return nil
}

func (p *captureProducer) Close() error { return nil }

func neutralPayloads(t *testing.T) map[string][]byte {
	t.Helper()
	now := time.Now()

	trafficZones := make(map[string]models.ZoneTraffic)
	for _, zone := range zones.DefaultRegistry().Zones() {
		trafficZones[zone] = models.ZoneTraffic{
			CongestionLevel: 5, DelayMinutes: 10, Status: "Regular traffic flow",
		}
	}

	payloads := make(map[string][]byte, 3)
	for key, v := range map[string]any{
		models.SignalTraffic: models.TrafficReport{
			Zones: trafficZones, OverallCongestion: 5,
			Status: "Normal traffic conditions in most areas", FetchedAt: now,
		},
		models.SignalWeather: models.WeatherReport{
			Temperature: models.Temperature{Current: 31, FeelsLike: 32, Units: "Celsius"},
			Conditions:  "Clear", FetchedAt: now,
		},
		models.SignalFestival: models.FestivalCalendar{
			HasFestivalToday: false, FetchedAt: now,
		},
	} {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		payloads[key] = raw
	}
	return payloads
}

func newTestApp(t *testing.T) (*fiber.App, *orders.Store, *captureProducer) {
	t.Helper()

	records := []models.DeliveryRecord{
		{CustomerName: "Aditya", DayOfWeek: "Monday", TimeSlot: "11 AM", Outcome: models.OutcomeSuccess},
		{CustomerName: "Aditya", DayOfWeek: "Monday", TimeSlot: "2 PM", Outcome: models.OutcomeFailed},
		{CustomerName: "Aditya", DayOfWeek: "Monday", TimeSlot: "4 PM", Outcome: models.OutcomeSuccess},
	}

	rng := rand.New(rand.NewSource(1))
	provider := signals.NewProvider(signals.NewMemoryCache(), staticSource{neutralPayloads(t)},
		signals.NewSynthesizer(rng), nil, nil)

	cfg := &models.Config{
		ServerPort:    8080,
		StartLocation: "Iscon Center, Satellite",
		StartZone:     "Satellite",
	}
	registry := zones.DefaultRegistry()
	eng := engine.New(history.BuildRateIndex(records), registry, provider, cfg, nil, rng)

	store, err := orders.NewStore(filepath.Join(t.TempDir(), "orders.json"), nil)
	require.NoError(t, err)

	producer := &captureProducer{}
	handler := NewHandler(eng, store, orders.NewGenerator(registry, rng), producer, "delivery_order_events", nil)
	return New(cfg, handler).App, store, producer
}

func doPost(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHealth(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// TestPredict verifies the happy path, the no-history sentinel, and
// request validation.
func TestPredict(t *testing.T) {
	app, _, _ := newTestApp(t)

	t.Run("KnownCustomer", func(t *testing.T) {
		resp := doPost(t, app, "/predict", map[string]string{"name": "Aditya", "day": "Monday"})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Customer           string                  `json:"customer"`
			RecommendedWindows []models.SlotPrediction `json:"recommended_windows"`
			RealTimeFactors    map[string]any          `json:"real_time_factors"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

		assert.Equal(t, "Aditya", body.Customer)
		require.NotEmpty(t, body.RecommendedWindows)
		assert.LessOrEqual(t, len(body.RecommendedWindows), 3)
		for _, w := range body.RecommendedWindows {
			assert.GreaterOrEqual(t, w.FailureRate, 2.0)
			assert.LessOrEqual(t, w.FailureRate, 10.0)
		}
		assert.Contains(t, body.RealTimeFactors, "weather")
		assert.Contains(t, body.RealTimeFactors, "traffic")
	})

	t.Run("NoHistorySentinel", func(t *testing.T) {
		resp := doPost(t, app, "/predict", map[string]string{"name": "Meera", "day": "Monday"})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			RecommendedWindows []models.SlotPrediction `json:"recommended_windows"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.RecommendedWindows, 1)
		assert.Equal(t, models.NoDataSlot, body.RecommendedWindows[0].Time)
		assert.Equal(t, 100.0, body.RecommendedWindows[0].FailureRate)
	})

	t.Run("MissingName", func(t *testing.T) {
		resp := doPost(t, app, "/predict", map[string]string{"day": "Monday"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

// TestOrderLifecycle walks an order from intake through delivery over HTTP.
func TestOrderLifecycle(t *testing.T) {
	app, _, producer := newTestApp(t)

	resp := doPost(t, app, "/orders", map[string]string{"name": "Aditya"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "10000", created.OrderID)
	assert.Equal(t, "Satellite", created.Zone)
	assert.NotEmpty(t, created.PackageSize, "unspecified size is randomized")

	resp, err := app.Test(httptest.NewRequest("GET", "/pending_orders", nil))
	require.NoError(t, err)
	var pending struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pending))
	assert.Equal(t, 1, pending.Count)

	resp, err = app.Test(httptest.NewRequest("GET", "/orders/10000/delivered?success=false", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, models.OrderStatusFailed, updated.Status)

	require.Len(t, producer.topics, 2)
	assert.Equal(t, "delivery_order_events", producer.topics[0])

	t.Run("UnknownCustomer", func(t *testing.T) {
		resp := doPost(t, app, "/orders", map[string]string{"name": "Nobody"})
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		resp := doPost(t, app, "/orders/10000/status", map[string]string{"status": "Lost"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UnknownOrder", func(t *testing.T) {
		resp := doPost(t, app, "/orders/77777/status", map[string]string{"status": models.OrderStatusDelivered})
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

// TestOptimizeRouteEndpoint verifies order IDs resolve to a route plan.
func TestOptimizeRouteEndpoint(t *testing.T) {
	app, store, _ := newTestApp(t)

	a, err := store.Add(models.Order{CustomerName: "Aditya", Zone: "Satellite"})
	require.NoError(t, err)
	b, err := store.Add(models.Order{CustomerName: "Kabir", Zone: "Chandkheda"})
	require.NoError(t, err)

	resp := doPost(t, app, "/optimize_route", map[string][]string{
		"order_ids": {a.OrderID, b.OrderID},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var plan models.RoutePlan
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&plan))
	assert.Len(t, plan.Route, 2)
	assert.Len(t, plan.Details, 2)
	assert.NotEmpty(t, plan.PlanID)
	assert.NotEmpty(t, plan.TrafficSummary)

	t.Run("EmptyIDs", func(t *testing.T) {
		resp := doPost(t, app, "/optimize_route", map[string][]string{"order_ids": {}})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UnknownIDs", func(t *testing.T) {
		resp := doPost(t, app, "/optimize_route", map[string][]string{"order_ids": {"1", "2"}})
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

// TestRealTimeData verifies the signal endpoint variants.
func TestRealTimeData(t *testing.T) {
	app, _, _ := newTestApp(t)

	t.Run("All", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/real_time_data", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body, "traffic")
		assert.Contains(t, body, "weather")
		assert.Contains(t, body, "festivals")
		assert.Contains(t, body, "summaries")
	})

	t.Run("TrafficZone", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/real_time_data?type=traffic&zone=Satellite", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var zt models.ZoneTraffic
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&zt))
		assert.Equal(t, 5, zt.CongestionLevel)
	})

	t.Run("UnknownType", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/real_time_data?type=earthquakes", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
