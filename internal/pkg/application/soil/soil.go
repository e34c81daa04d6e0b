package soil

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/apperr"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/events"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/metrics"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/greenhouse-monitoring/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const DefaultLimit = 100

//go:generate moq -rm -out soil_mock.go . Soil

type Soil interface {
	SaveSoilReading(ctx context.Context, reading types.SoilReading) (types.SoilReading, error)
	ListSoilReadings(ctx context.Context, deviceID string, limit int) ([]types.SoilReading, error)
}

type service struct {
	repo      database.SoilRepository
	publisher events.Publisher
	now       func() time.Time
}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

func New(repo database.SoilRepository, publisher events.Publisher, opts ...Option) Soil {
	s := &service{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) SaveSoilReading(ctx context.Context, reading types.SoilReading) (types.SoilReading, error) {
	if err := validate(reading); err != nil {
		return types.SoilReading{}, err
	}

	now := s.now().UTC()
	if reading.Timestamp.IsZero() {
		reading.Timestamp = now
	}

	saved, err := s.repo.SaveSoilReading(ctx, reading)
	if err != nil {
		return types.SoilReading{}, fmt.Errorf("could not save soil reading: %w", err)
	}

	metrics.ReadingsIngested.WithLabelValues("soil").Inc()

	err = s.publisher.Publish(ctx, events.SoilReadingCreated, now, saved)
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Error().Err(err).Str("device_id", saved.DeviceID).Msg("could not publish soil reading event")
	}

	return saved, nil
}

// ListSoilReadings returns the newest readings first, limited to DefaultLimit when limit is not positive
func (s *service) ListSoilReadings(ctx context.Context, deviceID string, limit int) ([]types.SoilReading, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	return s.repo.ListSoilReadings(ctx, strings.TrimSpace(deviceID), limit)
}

func validate(r types.SoilReading) error {
	verr := &apperr.ValidationError{}

	if strings.TrimSpace(r.DeviceID) == "" {
		verr.Add("deviceId", "must not be blank")
	}

	measurements := []struct {
		field string
		value *float64
	}{
		{"temperature", r.Temperature},
		{"humidity", r.Humidity},
		{"ec", r.EC},
		{"ph", r.PH},
		{"n", r.N},
		{"p", r.P},
		{"k", r.K},
	}

	for _, m := range measurements {
		if m.value == nil {
			verr.Add(m.field, "must not be null")
		}
	}

	return verr.OrNil()
}
