package camera

import (
	"context"
	"strings"

	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/apperr"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/vendors/ezviz"
	"github.com/diwise/greenhouse-monitoring/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

//go:generate moq -rm -out camera_mock.go . Camera

type Camera interface {
	Capture(ctx context.Context, req types.CaptureRequest) (types.CaptureResult, error)
	ListDevices(ctx context.Context) ([]types.CameraDevice, error)
}

type service struct {
	capture ezviz.Client
	devices database.CameraRepository
}

func New(capture ezviz.Client, devices database.CameraRepository) Camera {
	return &service{
		capture: capture,
		devices: devices,
	}
}

func (s *service) Capture(ctx context.Context, req types.CaptureRequest) (types.CaptureResult, error) {
	verr := &apperr.ValidationError{}

	if strings.TrimSpace(req.DeviceSerial) == "" {
		verr.Add("deviceSerial", "must not be blank")
	}
	if req.ChannelNo == nil {
		verr.Add("channelNo", "must not be null")
	}

	if err := verr.OrNil(); err != nil {
		return types.CaptureResult{}, err
	}

	picURL, err := s.capture.Capture(ctx, req.DeviceSerial, *req.ChannelNo, req.Quality)
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Error().Err(err).Str("device_serial", req.DeviceSerial).Msg("capture failed")

		return types.CaptureResult{}, apperr.Upstream("ezviz", err)
	}

	return types.CaptureResult{PicURL: picURL}, nil
}

func (s *service) ListDevices(ctx context.Context) ([]types.CameraDevice, error) {
	return s.devices.ListCameraDevices(ctx)
}
