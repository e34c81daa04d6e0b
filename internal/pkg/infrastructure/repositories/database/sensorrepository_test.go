package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diwise/greenhouse-monitoring/pkg/types"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestCreateGreenhouseUpserts(t *testing.T) {
	is, ctx, r := testSetupSensorRepository(t)

	_, err := r.CreateGreenhouse(ctx, types.Greenhouse{BoxNo: "box-01", Name: "first"})
	is.NoErr(err)

	saved, err := r.CreateGreenhouse(ctx, types.Greenhouse{BoxNo: "box-01", Name: "renamed", CameraID: "cam-01"})
	is.NoErr(err)
	is.Equal("renamed", saved.Name)

	all, err := r.ListGreenhouses(ctx)
	is.NoErr(err)
	is.Equal(1, len(all))
	is.Equal("renamed", all[0].Name)
	is.Equal("cam-01", all[0].CameraID)
}

func TestGetUnknownGreenhouse(t *testing.T) {
	is, ctx, r := testSetupSensorRepository(t)

	_, err := r.GetGreenhouse(ctx, "nosuchbox")
	is.True(errors.Is(err, ErrGreenhouseNotFound))
}

func TestAddReadingsRequiresExistingGreenhouse(t *testing.T) {
	is, ctx, r := testSetupSensorRepository(t)

	_, err := r.AddSensorReadings(ctx, []types.SensorReading{reading("s1", "nosuchbox", t0)})
	is.True(err != nil)
}

func TestAddReadingsIsAllOrNothing(t *testing.T) {
	is, ctx, r := testSetupSensorRepository(t)
	createGreenhouses(is, ctx, r, "box-01")

	_, err := r.AddSensorReadings(ctx, []types.SensorReading{
		reading("s1", "box-01", t0),
		reading("s2", "nosuchbox", t0),
	})
	is.True(err != nil)

	readings, err := r.ListReadingsForGreenhouse(ctx, "box-01")
	is.NoErr(err)
	is.Equal(0, len(readings))
}

func TestListReadingsForGreenhouse(t *testing.T) {
	is, ctx, r := testSetupSensorRepository(t)
	createGreenhouses(is, ctx, r, "box-01", "box-02")

	_, err := r.AddSensorReadings(ctx, []types.SensorReading{
		reading("s1", "box-01", t0),
		reading("s2", "box-01", t0.Add(time.Minute)),
		reading("s3", "box-02", t0),
	})
	is.NoErr(err)

	readings, err := r.ListReadingsForGreenhouse(ctx, "box-01")
	is.NoErr(err)
	is.Equal(2, len(readings))
	is.Equal("s1", readings[0].SensorID)
	is.Equal(types.Temperature, readings[0].Type)
	is.True(readings[0].Timestamp.Equal(t0))
}

func TestReadingsSinceIsInclusiveAndNewestFirst(t *testing.T) {
	is, ctx, r := testSetupSensorRepository(t)
	createGreenhouses(is, ctx, r, "box-01")

	since := t0.Add(-24 * time.Hour)

	_, err := r.AddSensorReadings(ctx, []types.SensorReading{
		reading("too-old", "box-01", since.Add(-time.Millisecond)),
		reading("boundary", "box-01", since),
		reading("newest", "box-01", t0),
		reading("middle", "box-01", t0.Add(-time.Hour)),
	})
	is.NoErr(err)

	readings, err := r.ReadingsSince(ctx, since)
	is.NoErr(err)
	is.Equal(3, len(readings))
	is.Equal("newest", readings[0].SensorID)
	is.Equal("middle", readings[1].SensorID)
	is.Equal("boundary", readings[2].SensorID)
}

func TestReadingsInRangeIncludesBoundaries(t *testing.T) {
	is, ctx, r := testSetupSensorRepository(t)
	createGreenhouses(is, ctx, r, "box-01", "box-02")

	start := t0.Add(-7 * 24 * time.Hour)

	_, err := r.AddSensorReadings(ctx, []types.SensorReading{
		reading("before", "box-01", start.Add(-time.Millisecond)),
		reading("start", "box-01", start),
		reading("end", "box-01", t0),
		reading("after", "box-01", t0.Add(time.Millisecond)),
		reading("other", "box-02", t0),
	})
	is.NoErr(err)

	readings, err := r.ReadingsInRange(ctx, "box-01", start, t0)
	is.NoErr(err)
	is.Equal(2, len(readings))
	is.Equal("start", readings[0].SensorID)
	is.Equal("end", readings[1].SensorID)
}

func TestGreenhousesWithLatestReading(t *testing.T) {
	is, ctx, r := testSetupSensorRepository(t)
	createGreenhouses(is, ctx, r, "box-01", "box-02", "box-empty")

	_, err := r.AddSensorReadings(ctx, []types.SensorReading{
		reading("a1", "box-01", t0.Add(-2*time.Hour)),
		reading("a2", "box-01", t0),
		reading("a3", "box-01", t0.Add(-time.Hour)),
		reading("b1", "box-02", t0.Add(-3*time.Hour)),
	})
	is.NoErr(err)

	greenhouses, err := r.GreenhousesWithLatestReading(ctx)
	is.NoErr(err)
	is.Equal(2, len(greenhouses))

	is.Equal("box-01", greenhouses[0].BoxNo)
	is.Equal(1, len(greenhouses[0].SensorData))
	is.Equal("a2", greenhouses[0].SensorData[0].SensorID)

	is.Equal("box-02", greenhouses[1].BoxNo)
	is.Equal(1, len(greenhouses[1].SensorData))
	is.Equal("b1", greenhouses[1].SensorData[0].SensorID)
}

func TestGreenhousesWithLatestReadingWhenEmpty(t *testing.T) {
	is, ctx, r := testSetupSensorRepository(t)
	createGreenhouses(is, ctx, r, "box-empty")

	greenhouses, err := r.GreenhousesWithLatestReading(ctx)
	is.NoErr(err)
	is.Equal(0, len(greenhouses))
}

func createGreenhouses(is *is.I, ctx context.Context, r SensorRepository, boxNos ...string) {
	for _, boxNo := range boxNos {
		_, err := r.CreateGreenhouse(ctx, types.Greenhouse{BoxNo: boxNo, Name: "greenhouse " + boxNo})
		is.NoErr(err)
	}
}

func reading(sensorID, boxNo string, ts time.Time) types.SensorReading {
	return types.SensorReading{
		SensorID:  sensorID,
		BoxNo:     boxNo,
		Name:      "temperature",
		Unit:      "°C",
		Value:     21.5,
		Timestamp: ts,
		Type:      types.Temperature,
	}
}

func testSetupSensorRepository(t *testing.T) (*is.I, context.Context, SensorRepository) {
	is := is.New(t)
	ctx := context.Background()

	db, err := NewDatabaseConnection(NewSQLiteConnector(zerolog.Nop()))
	is.NoErr(err)

	return is, ctx, NewSensorRepository(db)
}
