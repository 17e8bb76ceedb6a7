package cmd

import (
	"context"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parthdave/couriersim/internal/engine"
	"github.com/parthdave/couriersim/internal/history"
	"github.com/parthdave/couriersim/internal/models"
	"github.com/parthdave/couriersim/internal/orders"
	"github.com/parthdave/couriersim/internal/repositories/postgres"
	"github.com/parthdave/couriersim/internal/signals"
	"github.com/parthdave/couriersim/internal/zones"
	"go.uber.org/zap"
)

// App bundles the wired components shared by the serve and predict
// commands.
type App struct {
	Engine    *engine.Engine
	Store     *orders.Store
	Generator *orders.Generator

	pool  *pgxpool.Pool
	redis *signals.RedisCache
}

func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
	if a.redis != nil {
		a.redis.Close()
	}
}

// buildApp wires the engine from config: delivery log (CSV or Postgres),
// zone registry, signal provider (synthesized or live, memory or Redis
// cached), order store, and generator.
func buildApp(ctx context.Context, cfg *models.Config, log *zap.Logger) (*App, error) {
	app := &App{}
	rng := rand.New(rand.NewSource(int64(cfg.Seed)))

	var records []models.DeliveryRecord
	var err error
	if cfg.DatabaseURL != "" {
		app.pool, err = postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		repo := postgres.NewDeliveryRecordRepository(app.pool)
		records, err = repo.GetAll(ctx)
	} else {
		records, err = history.LoadRecords(cfg.HistoryFile)
	}
	if err != nil {
		return nil, err
	}
	log.Info("loaded delivery history", zap.Int("records", len(records)))

	var cache signals.Cache = signals.NewMemoryCache()
	if cfg.RedisURL != "" {
		app.redis, err = signals.NewRedisCache(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		cache = app.redis
	}

	var source signals.Source
	if cfg.SignalSourceURL != "" {
		timeout := cfg.SignalTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		source = signals.NewHTTPSource(cfg.SignalSourceURL, timeout)
	}

	ttls := map[string]time.Duration{
		models.SignalTraffic:  cfg.TrafficTTL,
		models.SignalWeather:  cfg.WeatherTTL,
		models.SignalFestival: cfg.FestivalTTL,
	}
	provider := signals.NewProvider(cache, source, signals.NewSynthesizer(rng), ttls, log)

	registry := zones.DefaultRegistry()
	app.Engine = engine.New(history.BuildRateIndex(records), registry, provider, cfg, log, rng)
	app.Generator = orders.NewGenerator(registry, rng)

	app.Store, err = orders.NewStore(cfg.OrdersFile, log)
	if err != nil {
		return nil, err
	}
	return app, nil
}
