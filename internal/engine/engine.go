package engine

import (
	"math/rand"
	"time"

	"github.com/parthdave/couriersim/internal/history"
	"github.com/parthdave/couriersim/internal/models"
	"github.com/parthdave/couriersim/internal/signals"
	"github.com/parthdave/couriersim/internal/zones"
	"go.uber.org/zap"
)

// Engine is the route/time optimization core. It owns no global state;
// everything it needs is threaded through at construction, which keeps
// scoring and route search deterministic under an injected clock and seed.
type Engine struct {
	rates    *history.RateIndex
	registry *zones.Registry
	signals  *signals.Provider
	logger   *zap.Logger

	startLocation string
	startZone     string

	rng *rand.Rand
	now func() time.Time
}

func New(rates *history.RateIndex, registry *zones.Registry, provider *signals.Provider, cfg *models.Config, logger *zap.Logger, rng *rand.Rand) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		rates:         rates,
		registry:      registry,
		signals:       provider,
		logger:        logger,
		startLocation: cfg.StartLocation,
		startZone:     cfg.StartZone,
		rng:           rng,
		now:           time.Now,
	}
}

// Registry exposes the zone registry for collaborators that need to echo
// customer zones alongside engine output.
func (e *Engine) Registry() *zones.Registry {
	return e.registry
}

// Signals exposes the underlying signal provider.
func (e *Engine) Signals() *signals.Provider {
	return e.signals
}
