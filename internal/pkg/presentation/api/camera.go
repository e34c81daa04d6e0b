package api

import (
	"net/http"
	"strings"

	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/camera"
	"github.com/diwise/greenhouse-monitoring/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
)

func captureHandler(log zerolog.Logger, svc camera.Camera) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "camera-capture")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		req := types.CaptureRequest{
			DeviceSerial: strings.TrimSpace(r.FormValue("deviceSerial")),
		}

		req.ChannelNo, err = parseIntParam(r, "channelNo")
		if err != nil {
			writeError(w, err)
			return
		}

		req.Quality, err = parseIntParam(r, "quality")
		if err != nil {
			writeError(w, err)
			return
		}

		result, err := svc.Capture(ctx, req)
		if err != nil {
			requestLogger.Error().Err(err).Str("device_serial", req.DeviceSerial).Msg("unable to capture image")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ok(result))
	}
}

func listCameraDevicesHandler(log zerolog.Logger, svc camera.Camera) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "list-camera-devices")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		devices, err := svc.ListDevices(ctx)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to list camera devices")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ok(devices))
	}
}
