package signals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/parthdave/couriersim/internal/models"
	"go.uber.org/zap"
)

// ErrUnknownSignalType is returned by Get for unrecognized signal types.
var ErrUnknownSignalType = errors.New("unknown signal type")

// DefaultTTLs is how long each signal type stays fresh in the cache.
var DefaultTTLs = map[string]time.Duration{
	models.SignalTraffic:  15 * time.Minute,
	models.SignalWeather:  time.Hour,
	models.SignalFestival: 24 * time.Hour,
}

// Provider serves real-time traffic, weather, and festival data. With no
// live source configured everything is synthesized; with one, responses are
// served from the cache while fresh, and any live failure falls back to
// synthesis. Callers never see a fetch error.
type Provider struct {
	mu     sync.Mutex
	cache  Cache
	source Source
	synth  *Synthesizer
	ttls   map[string]time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewProvider(cache Cache, source Source, synth *Synthesizer, ttls map[string]time.Duration, logger *zap.Logger) *Provider {
	if ttls == nil {
		ttls = DefaultTTLs
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		cache:  cache,
		source: source,
		synth:  synth,
		ttls:   ttls,
		logger: logger,
		now:    time.Now,
	}
}

// Traffic returns the current per-zone traffic report.
func (p *Provider) Traffic(ctx context.Context) models.TrafficReport {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if p.source == nil {
		report := p.synth.Traffic(now)
		p.store(ctx, models.SignalTraffic, report)
		return report
	}

	var report models.TrafficReport
	if p.fromCache(ctx, models.SignalTraffic, &report) && len(report.Zones) > 0 {
		return report
	}

	report = models.TrafficReport{}
	if err := p.fromLive(ctx, models.SignalTraffic, &report); err != nil || len(report.Zones) == 0 {
		p.logger.Warn("live traffic fetch failed, synthesizing", zap.Error(err))
		report = p.synth.Traffic(now)
	}
	p.store(ctx, models.SignalTraffic, report)
	return report
}

// ZoneTraffic narrows the traffic report to one zone. The second return is
// false when the zone is not covered.
func (p *Provider) ZoneTraffic(ctx context.Context, zone string) (models.ZoneTraffic, bool) {
	report := p.Traffic(ctx)
	zt, ok := report.Zones[zone]
	return zt, ok
}

// Weather returns the current city-wide weather report.
func (p *Provider) Weather(ctx context.Context) models.WeatherReport {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if p.source == nil {
		report := p.synth.Weather(now)
		p.store(ctx, models.SignalWeather, report)
		return report
	}

	var report models.WeatherReport
	if p.fromCache(ctx, models.SignalWeather, &report) && report.Conditions != "" {
		return report
	}

	report = models.WeatherReport{}
	if err := p.fromLive(ctx, models.SignalWeather, &report); err != nil || report.Conditions == "" {
		p.logger.Warn("live weather fetch failed, synthesizing", zap.Error(err))
		report = p.synth.Weather(now)
	}
	p.store(ctx, models.SignalWeather, report)
	return report
}

// Festivals returns the festival calendar for today and the coming week.
func (p *Provider) Festivals(ctx context.Context) models.FestivalCalendar {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if p.source == nil {
		calendar := p.synth.Festivals(now)
		p.store(ctx, models.SignalFestival, calendar)
		return calendar
	}

	var calendar models.FestivalCalendar
	if p.fromCache(ctx, models.SignalFestival, &calendar) && !calendar.FetchedAt.IsZero() {
		return calendar
	}

	calendar = models.FestivalCalendar{}
	if err := p.fromLive(ctx, models.SignalFestival, &calendar); err != nil {
		p.logger.Warn("live festival fetch failed, synthesizing", zap.Error(err))
		calendar = p.synth.Festivals(now)
	} else if calendar.FetchedAt.IsZero() {
		calendar.FetchedAt = now
	}
	p.store(ctx, models.SignalFestival, calendar)
	return calendar
}

// Get serves the generic signal endpoint. For traffic, a non-empty zone
// narrows the payload to that zone's data.
func (p *Provider) Get(ctx context.Context, signalType, zone string) (any, error) {
	switch signalType {
	case models.SignalTraffic:
		report := p.Traffic(ctx)
		if zone != "" {
			if zt, ok := report.Zones[zone]; ok {
				return zt, nil
			}
		}
		return report, nil
	case models.SignalWeather:
		return p.Weather(ctx), nil
	case models.SignalFestival:
		return p.Festivals(ctx), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSignalType, signalType)
	}
}

func (p *Provider) fromCache(ctx context.Context, signalType string, out any) bool {
	raw, ok := p.cache.Get(ctx, signalType)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		p.logger.Warn("discarding undecodable cache entry",
			zap.String("signal", signalType), zap.Error(err))
		return false
	}
	return true
}

func (p *Provider) fromLive(ctx context.Context, signalType string, out any) error {
	raw, err := p.source.Fetch(ctx, signalType)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode live %s payload: %w", signalType, err)
	}
	return nil
}

func (p *Provider) store(ctx context.Context, signalType string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		p.logger.Warn("marshal signal payload", zap.String("signal", signalType), zap.Error(err))
		return
	}
	if err := p.cache.Set(ctx, signalType, raw, p.ttls[signalType]); err != nil {
		p.logger.Warn("cache signal payload", zap.String("signal", signalType), zap.Error(err))
	}
}
