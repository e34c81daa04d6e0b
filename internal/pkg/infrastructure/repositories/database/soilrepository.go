package database

import (
	"context"

	"github.com/diwise/greenhouse-monitoring/pkg/types"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

//go:generate moq -rm -out soilrepository_mock.go . SoilRepository

type SoilRepository interface {
	SaveSoilReading(ctx context.Context, reading types.SoilReading) (types.SoilReading, error)
	ListSoilReadings(ctx context.Context, deviceID string, limit int) ([]types.SoilReading, error)
}

type soilRepository struct {
	db *gorm.DB
}

func NewSoilRepository(db *gorm.DB) SoilRepository {
	return &soilRepository{
		db: db,
	}
}

// SaveSoilReading expects a validated reading, every measurement must be set
func (r *soilRepository) SaveSoilReading(ctx context.Context, reading types.SoilReading) (types.SoilReading, error) {
	model := SoilData{
		DeviceID:    reading.DeviceID,
		Temperature: *reading.Temperature,
		Humidity:    *reading.Humidity,
		EC:          *reading.EC,
		PH:          *reading.PH,
		N:           *reading.N,
		P:           *reading.P,
		K:           *reading.K,
		Timestamp:   utc(reading.Timestamp),
	}

	err := r.db.WithContext(ctx).Create(&model).Error
	if err != nil {
		return types.SoilReading{}, err
	}

	return toSoilReading(model, 0), nil
}

func (r *soilRepository) ListSoilReadings(ctx context.Context, deviceID string, limit int) ([]types.SoilReading, error) {
	var rows []SoilData

	query := r.db.WithContext(ctx)

	if deviceID != "" {
		query = query.Where(&SoilData{DeviceID: deviceID})
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Order("timestamp DESC").Order("id DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, toSoilReading), nil
}

func toSoilReading(s SoilData, _ int) types.SoilReading {
	return types.SoilReading{
		ID:          s.ID,
		DeviceID:    s.DeviceID,
		Temperature: lo.ToPtr(s.Temperature),
		Humidity:    lo.ToPtr(s.Humidity),
		EC:          lo.ToPtr(s.EC),
		PH:          lo.ToPtr(s.PH),
		N:           lo.ToPtr(s.N),
		P:           lo.ToPtr(s.P),
		K:           lo.ToPtr(s.K),
		Timestamp:   s.Timestamp.UTC(),
	}
}
