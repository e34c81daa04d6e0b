package database

import (
	"context"
	"fmt"
	"io"

	"github.com/diwise/greenhouse-monitoring/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/samber/lo"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate moq -rm -out camerarepository_mock.go . CameraRepository

type CameraRepository interface {
	ListCameraDevices(ctx context.Context) ([]types.CameraDevice, error)
	Seed(ctx context.Context, devices io.Reader) error
}

type cameraRepository struct {
	db *gorm.DB
}

func NewCameraRepository(db *gorm.DB) CameraRepository {
	return &cameraRepository{
		db: db,
	}
}

func (r *cameraRepository) ListCameraDevices(ctx context.Context) ([]types.CameraDevice, error) {
	var devices []CameraDevice

	err := r.db.WithContext(ctx).Order("device_serial").Find(&devices).Error
	if err != nil {
		return nil, err
	}

	return lo.Map(devices, func(d CameraDevice, _ int) types.CameraDevice {
		return types.CameraDevice{
			DeviceSerial: d.DeviceSerial,
			ChannelNo:    d.ChannelNo,
			AccessToken:  d.AccessToken,
			Quality:      d.Quality,
		}
	}), nil
}

type cameraDevicesFile struct {
	Cameras []types.CameraDevice `yaml:"cameras"`
}

// Seed reads a yaml list of camera devices and inserts or replaces them by device serial
func (r *cameraRepository) Seed(ctx context.Context, devices io.Reader) error {
	logger := logging.GetFromContext(ctx)

	b, err := io.ReadAll(devices)
	if err != nil {
		return err
	}

	f := cameraDevicesFile{}
	err = yaml.Unmarshal(b, &f)
	if err != nil {
		return fmt.Errorf("failed to parse camera devices: %w", err)
	}

	seen := map[string]bool{}
	for idx, d := range f.Cameras {
		if d.DeviceSerial == "" {
			return fmt.Errorf("camera device %d has no device serial", idx)
		}
		if seen[d.DeviceSerial] {
			return fmt.Errorf("duplicate device serial %s found in camera devices", d.DeviceSerial)
		}
		seen[d.DeviceSerial] = true
	}

	if len(f.Cameras) == 0 {
		return nil
	}

	models := lo.Map(f.Cameras, func(d types.CameraDevice, _ int) CameraDevice {
		return CameraDevice{
			DeviceSerial: d.DeviceSerial,
			ChannelNo:    d.ChannelNo,
			AccessToken:  d.AccessToken,
			Quality:      d.Quality,
		}
	})

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&models).
		Error
	if err != nil {
		return err
	}

	logger.Info().Msgf("loaded %d camera devices", len(models))

	return nil
}
