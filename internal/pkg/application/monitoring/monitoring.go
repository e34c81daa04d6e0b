package monitoring

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/apperr"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/events"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/metrics"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/vendors/fbox"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/vendors/ys"
	"github.com/diwise/greenhouse-monitoring/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const (
	LatestWindow  = 24 * time.Hour
	HistoryWindow = 7 * 24 * time.Hour
)

//go:generate moq -rm -out monitoring_mock.go . Monitoring

type Monitoring interface {
	CreateGreenhouse(ctx context.Context, g types.Greenhouse) (types.Greenhouse, error)
	AddSensorReadings(ctx context.Context, readings []types.SensorReading) ([]types.SensorReading, error)

	ListGreenhouses(ctx context.Context) ([]types.Greenhouse, error)
	ListReadingsForGreenhouse(ctx context.Context, boxNo string) ([]types.SensorReading, error)
	LatestReadings(ctx context.Context) ([]types.SensorReading, error)
	GreenhouseStatus(ctx context.Context) ([]types.Greenhouse, error)
	ReadingsInRange(ctx context.Context, boxNo string, start, end *time.Time) ([]types.SensorReading, error)

	CameraStreamURL(ctx context.Context, boxNo string) (string, error)
	LiveValues(ctx context.Context, boxNo string, sensorIDs []string) ([]types.LiveValue, error)

	Weather(ctx context.Context, boxNo, city string) Weather
	BatchStatus(ctx context.Context) BatchStatus
}

type service struct {
	repo      database.SensorRepository
	publisher events.Publisher
	live      ys.Client
	fbox      fbox.Client
	now       func() time.Time
}

type Option func(*service)

// WithClock replaces time.Now as the source of the current time
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

func New(repo database.SensorRepository, publisher events.Publisher, live ys.Client, fboxClient fbox.Client, opts ...Option) Monitoring {
	s := &service{
		repo:      repo,
		publisher: publisher,
		live:      live,
		fbox:      fboxClient,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) CreateGreenhouse(ctx context.Context, g types.Greenhouse) (types.Greenhouse, error) {
	if strings.TrimSpace(g.BoxNo) == "" {
		return types.Greenhouse{}, apperr.Invalid("boxNo", "must not be blank")
	}

	return s.repo.CreateGreenhouse(ctx, g)
}

func (s *service) AddSensorReadings(ctx context.Context, readings []types.SensorReading) ([]types.SensorReading, error) {
	now := s.now().UTC()

	readings = slices.Clone(readings)
	verr := &apperr.ValidationError{}

	for i := range readings {
		r := &readings[i]

		if strings.TrimSpace(r.SensorID) == "" {
			verr.Add(fmt.Sprintf("[%d].sensorId", i), "must not be blank")
		}
		if strings.TrimSpace(r.BoxNo) == "" {
			verr.Add(fmt.Sprintf("[%d].boxNo", i), "must not be blank")
		}
		if !r.Type.Valid() {
			verr.Add(fmt.Sprintf("[%d].type", i), fmt.Sprintf("unknown sensor type %q", r.Type))
		}

		if r.Timestamp.IsZero() {
			r.Timestamp = now
		}
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	saved, err := s.repo.AddSensorReadings(ctx, readings)
	if err != nil {
		return nil, fmt.Errorf("could not save sensor readings: %w", err)
	}

	metrics.ReadingsIngested.WithLabelValues("sensor").Add(float64(len(saved)))

	if len(saved) > 0 {
		err = s.publisher.Publish(ctx, events.SensorReadingsCreated, now, saved)
		if err != nil {
			log := logging.GetFromContext(ctx)
			log.Error().Err(err).Msg("could not publish sensor readings event")
		}
	}

	return saved, nil
}

func (s *service) ListGreenhouses(ctx context.Context) ([]types.Greenhouse, error) {
	return s.repo.ListGreenhouses(ctx)
}

func (s *service) ListReadingsForGreenhouse(ctx context.Context, boxNo string) ([]types.SensorReading, error) {
	return s.repo.ListReadingsForGreenhouse(ctx, boxNo)
}

func (s *service) LatestReadings(ctx context.Context) ([]types.SensorReading, error) {
	return s.repo.ReadingsSince(ctx, s.now().Add(-LatestWindow))
}

func (s *service) GreenhouseStatus(ctx context.Context) ([]types.Greenhouse, error) {
	return s.repo.GreenhousesWithLatestReading(ctx)
}

// ReadingsInRange defaults a missing start to seven days ago and a missing end to now
func (s *service) ReadingsInRange(ctx context.Context, boxNo string, start, end *time.Time) ([]types.SensorReading, error) {
	if strings.TrimSpace(boxNo) == "" {
		return nil, apperr.Invalid("boxNo", "must not be blank")
	}

	now := s.now()

	from, to := now.Add(-HistoryWindow), now
	if start != nil {
		from = *start
	}
	if end != nil {
		to = *end
	}

	return s.repo.ReadingsInRange(ctx, boxNo, from, to)
}

// CameraStreamURL asks the livestream vendor for the box number itself. Vendor failures
// are answered with a placeholder address by the client.
func (s *service) CameraStreamURL(ctx context.Context, boxNo string) (string, error) {
	return s.live.StreamURL(ctx, boxNo)
}

func (s *service) LiveValues(ctx context.Context, boxNo string, sensorIDs []string) ([]types.LiveValue, error) {
	return s.fbox.Values(ctx, boxNo, sensorIDs)
}
