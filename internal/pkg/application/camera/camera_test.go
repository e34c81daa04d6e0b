package camera

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/apperr"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/vendors/ezviz"
	"github.com/diwise/greenhouse-monitoring/pkg/types"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

func TestCapture(t *testing.T) {
	is := is.New(t)

	client := &ezviz.ClientMock{
		CaptureFunc: func(ctx context.Context, deviceSerial string, channelNo int, quality *int) (string, error) {
			return "https://img.example.com/" + deviceSerial + ".jpg", nil
		},
	}

	svc := New(client, &database.CameraRepositoryMock{})

	result, err := svc.Capture(context.Background(), types.CaptureRequest{
		DeviceSerial: "D123",
		ChannelNo:    lo.ToPtr(1),
		Quality:      lo.ToPtr(2),
	})
	is.NoErr(err)
	is.Equal("https://img.example.com/D123.jpg", result.PicURL)

	call := client.CaptureCalls()[0]
	is.Equal(1, call.ChannelNo)
	is.Equal(2, *call.Quality)
}

func TestCaptureValidatesBeforeCallingVendor(t *testing.T) {
	is := is.New(t)

	client := &ezviz.ClientMock{}
	svc := New(client, &database.CameraRepositoryMock{})

	_, err := svc.Capture(context.Background(), types.CaptureRequest{ChannelNo: lo.ToPtr(1)})
	is.True(apperr.IsValidation(err))

	_, err = svc.Capture(context.Background(), types.CaptureRequest{DeviceSerial: "D123"})
	is.True(apperr.IsValidation(err))
	is.Equal("channelNo: must not be null", err.Error())

	is.Equal(0, len(client.CaptureCalls()))
}

func TestCaptureFailureIsUpstreamError(t *testing.T) {
	is := is.New(t)

	client := &ezviz.ClientMock{
		CaptureFunc: func(ctx context.Context, deviceSerial string, channelNo int, quality *int) (string, error) {
			return "", ezviz.ErrNoCaptureData
		},
	}

	svc := New(client, &database.CameraRepositoryMock{})

	_, err := svc.Capture(context.Background(), types.CaptureRequest{DeviceSerial: "D123", ChannelNo: lo.ToPtr(1)})

	var upstream *apperr.UpstreamError
	is.True(errors.As(err, &upstream))
	is.Equal("ezviz", upstream.Vendor)
	is.True(errors.Is(err, ezviz.ErrNoCaptureData))
	is.True(!apperr.IsValidation(err))
}

func TestListDevices(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	db, err := database.NewDatabaseConnection(database.NewSQLiteConnector(zerolog.Nop()))
	is.NoErr(err)

	repo := database.NewCameraRepository(db)
	err = repo.Seed(ctx, strings.NewReader(devicesYaml))
	is.NoErr(err)

	devices, err := New(&ezviz.ClientMock{}, repo).ListDevices(ctx)
	is.NoErr(err)
	is.Equal(2, len(devices))
}

const devicesYaml string = `
cameras:
  - deviceSerial: D123
    channelNo: 1
    accessToken: at.abc
    quality: 1
  - deviceSerial: D456
    channelNo: 2
    quality: 0
`
