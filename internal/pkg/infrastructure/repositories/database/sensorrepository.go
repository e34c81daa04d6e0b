package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/greenhouse-monitoring/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate moq -rm -out sensorrepository_mock.go . SensorRepository

type SensorRepository interface {
	CreateGreenhouse(ctx context.Context, g types.Greenhouse) (types.Greenhouse, error)
	AddSensorReadings(ctx context.Context, readings []types.SensorReading) ([]types.SensorReading, error)

	ListGreenhouses(ctx context.Context) ([]types.Greenhouse, error)
	GetGreenhouse(ctx context.Context, boxNo string) (types.Greenhouse, error)
	ListReadingsForGreenhouse(ctx context.Context, boxNo string) ([]types.SensorReading, error)
	ReadingsSince(ctx context.Context, since time.Time) ([]types.SensorReading, error)
	GreenhousesWithLatestReading(ctx context.Context) ([]types.Greenhouse, error)
	ReadingsInRange(ctx context.Context, boxNo string, start, end time.Time) ([]types.SensorReading, error)
}

var ErrGreenhouseNotFound = fmt.Errorf("greenhouse not found")

type sensorRepository struct {
	db *gorm.DB
}

func NewSensorRepository(db *gorm.DB) SensorRepository {
	return &sensorRepository{
		db: db,
	}
}

func (r *sensorRepository) CreateGreenhouse(ctx context.Context, g types.Greenhouse) (types.Greenhouse, error) {
	model := Greenhouse{
		BoxNo:     g.BoxNo,
		Name:      g.Name,
		CameraID:  g.CameraID,
		CameraURL: g.CameraURL,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Omit(clause.Associations).
		Create(&model).
		Error
	if err != nil {
		return types.Greenhouse{}, err
	}

	return toGreenhouse(model), nil
}

func (r *sensorRepository) AddSensorReadings(ctx context.Context, readings []types.SensorReading) ([]types.SensorReading, error) {
	if len(readings) == 0 {
		return []types.SensorReading{}, nil
	}

	models := lo.Map(readings, func(sr types.SensorReading, _ int) SensorReading {
		return SensorReading{
			SensorID:  sr.SensorID,
			BoxNo:     sr.BoxNo,
			Name:      sr.Name,
			Unit:      sr.Unit,
			Value:     sr.Value,
			Timestamp: utc(sr.Timestamp),
			Type:      string(sr.Type),
		}
	})

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&models).Error
	})
	if err != nil {
		return nil, err
	}

	return lo.Map(models, toReading), nil
}

func (r *sensorRepository) ListGreenhouses(ctx context.Context) ([]types.Greenhouse, error) {
	var greenhouses []Greenhouse

	err := r.db.WithContext(ctx).
		Order("box_no").
		Find(&greenhouses).
		Error
	if err != nil {
		return nil, err
	}

	return lo.Map(greenhouses, func(g Greenhouse, _ int) types.Greenhouse {
		return toGreenhouse(g)
	}), nil
}

func (r *sensorRepository) GetGreenhouse(ctx context.Context, boxNo string) (types.Greenhouse, error) {
	logger := logging.GetFromContext(ctx)

	var greenhouse Greenhouse

	err := r.db.WithContext(ctx).
		Where(&Greenhouse{BoxNo: boxNo}).
		First(&greenhouse).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.Greenhouse{}, ErrGreenhouseNotFound
		}

		logger.Error().Err(err).Msg("gorm error")

		return types.Greenhouse{}, ErrRepositoryError
	}

	return toGreenhouse(greenhouse), nil
}

func (r *sensorRepository) ListReadingsForGreenhouse(ctx context.Context, boxNo string) ([]types.SensorReading, error) {
	var readings []SensorReading

	err := r.db.WithContext(ctx).
		Where("box_no = ?", boxNo).
		Order("timestamp").
		Find(&readings).
		Error
	if err != nil {
		return nil, err
	}

	return lo.Map(readings, toReading), nil
}

func (r *sensorRepository) ReadingsSince(ctx context.Context, since time.Time) ([]types.SensorReading, error) {
	var readings []SensorReading

	err := r.db.WithContext(ctx).
		Where("timestamp >= ?", utc(since)).
		Order("timestamp DESC").
		Find(&readings).
		Error
	if err != nil {
		return nil, err
	}

	return lo.Map(readings, toReading), nil
}

// GreenhousesWithLatestReading only returns greenhouses that have at least one reading.
// Readings sharing the maximum timestamp of a greenhouse are all included.
func (r *sensorRepository) GreenhousesWithLatestReading(ctx context.Context) ([]types.Greenhouse, error) {
	var readings []SensorReading

	err := r.db.WithContext(ctx).
		Where("timestamp = (SELECT MAX(s2.timestamp) FROM sensor_readings AS s2 WHERE s2.box_no = sensor_readings.box_no)").
		Order("box_no, sensor_id").
		Find(&readings).
		Error
	if err != nil {
		return nil, err
	}

	if len(readings) == 0 {
		return []types.Greenhouse{}, nil
	}

	byBox := lo.GroupBy(readings, func(sr SensorReading) string {
		return sr.BoxNo
	})

	var greenhouses []Greenhouse

	err = r.db.WithContext(ctx).
		Where("box_no IN ?", lo.Keys(byBox)).
		Order("box_no").
		Find(&greenhouses).
		Error
	if err != nil {
		return nil, err
	}

	return lo.Map(greenhouses, func(g Greenhouse, _ int) types.Greenhouse {
		g.SensorReadings = byBox[g.BoxNo]
		return toGreenhouse(g)
	}), nil
}

func (r *sensorRepository) ReadingsInRange(ctx context.Context, boxNo string, start, end time.Time) ([]types.SensorReading, error) {
	var readings []SensorReading

	err := r.db.WithContext(ctx).
		Where("box_no = ? AND timestamp >= ? AND timestamp <= ?", boxNo, utc(start), utc(end)).
		Order("timestamp").
		Find(&readings).
		Error
	if err != nil {
		return nil, err
	}

	return lo.Map(readings, toReading), nil
}

func toGreenhouse(g Greenhouse) types.Greenhouse {
	gh := types.Greenhouse{
		BoxNo:     g.BoxNo,
		Name:      g.Name,
		CameraID:  g.CameraID,
		CameraURL: g.CameraURL,
	}

	if len(g.SensorReadings) > 0 {
		gh.SensorData = lo.Map(g.SensorReadings, toReading)
	}

	return gh
}

func toReading(sr SensorReading, _ int) types.SensorReading {
	return types.SensorReading{
		SensorID:  sr.SensorID,
		BoxNo:     sr.BoxNo,
		Name:      sr.Name,
		Unit:      sr.Unit,
		Value:     sr.Value,
		Timestamp: sr.Timestamp.UTC(),
		Type:      types.SensorType(sr.Type),
	}
}
