package history

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/vayura/oxygen-calculator/internal/oxygen"
)

// ServiceConfig holds configuration for the history service.
type ServiceConfig struct {
	Repository Repository
	Logger     zerolog.Logger

	// BreakerTimeout is the open-state duration before the circuit
	// breaker probes the store again. Defaults to 60 seconds.
	BreakerTimeout time.Duration
}

// Service records and queries calculation history. Store access goes
// through a circuit breaker so a down database degrades recording instead
// of adding latency to every request.
type Service struct {
	repo    Repository
	logger  zerolog.Logger
	breaker *gobreaker.CircuitBreaker[any]
}

// NewService creates a new history service.
func NewService(cfg ServiceConfig) *Service {
	timeout := cfg.BreakerTimeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	logger := cfg.Logger
	breaker := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        "history-store",
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("history store breaker state changed")
		},
	})

	return &Service{
		repo:    cfg.Repository,
		logger:  logger,
		breaker: breaker,
	}
}

// Record stores a completed calculation. Best-effort: failures are logged
// and swallowed so a history outage never fails a calculation.
func (s *Service) Record(ctx context.Context, data oxygen.DistrictEnvironmentalData, result oxygen.OxygenCalculationResult) {
	record := &Record{
		ID:                     "calc_" + uuid.New().String()[:22],
		DistrictName:           data.DistrictName,
		Population:             data.Population,
		AQI:                    data.AQI,
		SoilQuality:            data.SoilQuality,
		DisasterFrequency:      data.DisasterFrequency,
		OxygenDeficitKgPerYear: result.OxygenDeficitKgPerYear,
		TreesRequired:          result.TreesRequired,
		ConfidenceLevel:        string(result.ConfidenceLevel),
		CreatedAt:              time.Now().UTC(),
	}

	_, err := s.breaker.Execute(func() (any, error) {
		return nil, s.repo.Insert(ctx, record)
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("district", record.DistrictName).
			Msg("failed to record calculation")
	}
}

// ListRecent returns recent records, newest first.
func (s *Service) ListRecent(ctx context.Context, district string, limit int) ([]*Record, error) {
	records, err := s.breaker.Execute(func() (any, error) {
		return s.repo.ListRecent(ctx, ListOptions{District: district, Limit: limit})
	})
	if err != nil {
		return nil, err
	}
	return records.([]*Record), nil
}
