package soil

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/apperr"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/events"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/greenhouse-monitoring/pkg/types"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestSaveSoilReading(t *testing.T) {
	is, ctx, s, publisher := testSetup(t)

	saved, err := s.SaveSoilReading(ctx, completeReading("probe-1"))
	is.NoErr(err)
	is.True(saved.ID > 0)
	is.Equal("probe-1", saved.DeviceID)
	is.Equal(6.5, *saved.PH)
	is.True(saved.Timestamp.Equal(now))

	is.Equal(1, len(publisher.PublishCalls()))
	is.Equal(events.SoilReadingCreated, publisher.PublishCalls()[0].EventType)
}

func TestSaveSoilReadingKeepsSuppliedTimestamp(t *testing.T) {
	is, ctx, s, _ := testSetup(t)

	r := completeReading("probe-1")
	r.Timestamp = now.Add(-time.Hour)

	saved, err := s.SaveSoilReading(ctx, r)
	is.NoErr(err)
	is.True(saved.Timestamp.Equal(now.Add(-time.Hour)))
}

func TestSaveSoilReadingAcceptsZeroMeasurements(t *testing.T) {
	is, ctx, s, _ := testSetup(t)

	r := completeReading("probe-1")
	r.N = lo.ToPtr(0.0)

	saved, err := s.SaveSoilReading(ctx, r)
	is.NoErr(err)
	is.Equal(0.0, *saved.N)
}

func TestSaveSoilReadingListsEveryMissingField(t *testing.T) {
	is, ctx, s, publisher := testSetup(t)

	_, err := s.SaveSoilReading(ctx, types.SoilReading{Humidity: lo.ToPtr(30.0)})
	is.True(apperr.IsValidation(err))

	var verr *apperr.ValidationError
	is.True(errors.As(err, &verr))

	fields := lo.Map(verr.Fields, func(f apperr.FieldError, _ int) string { return f.Field })
	is.Equal([]string{"deviceId", "temperature", "ec", "ph", "n", "p", "k"}, fields)

	stored, err := s.ListSoilReadings(ctx, "", 0)
	is.NoErr(err)
	is.Equal(0, len(stored))
	is.Equal(0, len(publisher.PublishCalls()))
}

func TestSaveSoilReadingRequiresEachMeasurement(t *testing.T) {
	is, ctx, s, _ := testSetup(t)

	tests := map[string]func(*types.SoilReading){
		"temperature: must not be null": func(r *types.SoilReading) { r.Temperature = nil },
		"humidity: must not be null":    func(r *types.SoilReading) { r.Humidity = nil },
		"ec: must not be null":          func(r *types.SoilReading) { r.EC = nil },
		"ph: must not be null":          func(r *types.SoilReading) { r.PH = nil },
		"n: must not be null":           func(r *types.SoilReading) { r.N = nil },
		"p: must not be null":           func(r *types.SoilReading) { r.P = nil },
		"k: must not be null":           func(r *types.SoilReading) { r.K = nil },
		"deviceId: must not be blank":   func(r *types.SoilReading) { r.DeviceID = " " },
	}

	for expected, unset := range tests {
		r := completeReading("probe-1")
		unset(&r)

		_, err := s.SaveSoilReading(ctx, r)
		is.True(apperr.IsValidation(err))
		is.Equal(expected, err.Error())
	}
}

func TestSaveSoilReadingWrapsRepositoryErrors(t *testing.T) {
	is := is.New(t)

	repo := &database.SoilRepositoryMock{
		SaveSoilReadingFunc: func(ctx context.Context, reading types.SoilReading) (types.SoilReading, error) {
			return types.SoilReading{}, database.ErrRepositoryError
		},
	}
	publisher := &events.PublisherMock{}

	s := New(repo, publisher)

	_, err := s.SaveSoilReading(context.Background(), completeReading("probe-1"))
	is.True(errors.Is(err, database.ErrRepositoryError))
	is.True(!apperr.IsValidation(err))
	is.Equal(0, len(publisher.PublishCalls()))
}

func TestListSoilReadingsAppliesDefaultLimit(t *testing.T) {
	is := is.New(t)

	repo := &database.SoilRepositoryMock{
		ListSoilReadingsFunc: func(ctx context.Context, deviceID string, limit int) ([]types.SoilReading, error) {
			return []types.SoilReading{}, nil
		},
	}

	s := New(repo, events.NewNoopPublisher())

	_, err := s.ListSoilReadings(context.Background(), "probe-1", 0)
	is.NoErr(err)
	_, err = s.ListSoilReadings(context.Background(), "probe-1", 5)
	is.NoErr(err)

	calls := repo.ListSoilReadingsCalls()
	is.Equal(DefaultLimit, calls[0].Limit)
	is.Equal(5, calls[1].Limit)
}

func TestListSoilReadingsNewestFirst(t *testing.T) {
	is, ctx, s, _ := testSetup(t)

	for i, device := range []string{"probe-1", "probe-2", "probe-1"} {
		r := completeReading(device)
		r.Timestamp = now.Add(time.Duration(i) * time.Minute)
		_, err := s.SaveSoilReading(ctx, r)
		is.NoErr(err)
	}

	readings, err := s.ListSoilReadings(ctx, "probe-1", 0)
	is.NoErr(err)
	is.Equal(2, len(readings))
	is.True(readings[0].Timestamp.After(readings[1].Timestamp))
}

func completeReading(deviceID string) types.SoilReading {
	return types.SoilReading{
		DeviceID:    deviceID,
		Temperature: lo.ToPtr(18.2),
		Humidity:    lo.ToPtr(41.0),
		EC:          lo.ToPtr(1.2),
		PH:          lo.ToPtr(6.5),
		N:           lo.ToPtr(12.0),
		P:           lo.ToPtr(8.0),
		K:           lo.ToPtr(15.0),
	}
}

func testSetup(t *testing.T) (*is.I, context.Context, Soil, *events.PublisherMock) {
	is := is.New(t)
	ctx := context.Background()

	db, err := database.NewDatabaseConnection(database.NewSQLiteConnector(zerolog.Nop()))
	is.NoErr(err)

	publisher := &events.PublisherMock{
		PublishFunc: func(ctx context.Context, eventType string, timestamp time.Time, data any) error {
			return nil
		},
	}

	s := New(database.NewSoilRepository(db), publisher, WithClock(func() time.Time { return now }))

	return is, ctx, s, publisher
}
