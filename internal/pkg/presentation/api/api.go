package api

import (
	"net/http"
	"strings"

	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/apperr"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/camera"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/monitoring"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/soil"
	"github.com/diwise/greenhouse-monitoring/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("greenhouse-monitoring/api")

func RegisterHandlers(log zerolog.Logger, router *chi.Mux, svc monitoring.Monitoring, soilSvc soil.Soil, cameraSvc camera.Camera) *chi.Mux {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api", func(r chi.Router) {
		r.Route("/monitoring", func(r chi.Router) {
			r.Route("/greenhouses", func(r chi.Router) {
				r.Get("/", listGreenhousesHandler(log, svc))
				r.Post("/", createGreenhouseHandler(log, svc))
				r.Get("/{boxNo}/sensors", listGreenhouseReadingsHandler(log, svc))
				r.Get("/{boxNo}/camera", cameraStreamHandler(log, svc))
				r.Get("/{boxNo}/live", liveValuesHandler(log, svc))
			})

			r.Route("/sensor-data", func(r chi.Router) {
				r.Post("/", addSensorReadingsHandler(log, svc))
				r.Get("/latest", latestReadingsHandler(log, svc))
				r.Get("/history", readingHistoryHandler(log, svc))
			})

			r.Get("/greenhouse/status", greenhouseStatusHandler(log, svc))
			r.Get("/weather", weatherHandler(log, svc))
			r.Get("/batch-status", batchStatusHandler(log, svc))
		})

		r.Route("/camera", func(r chi.Router) {
			r.Post("/capture", captureHandler(log, cameraSvc))
			r.Get("/devices", listCameraDevicesHandler(log, cameraSvc))
		})

		r.Route("/soil", func(r chi.Router) {
			r.Post("/data", saveSoilReadingHandler(log, soilSvc))
			r.Get("/data", listSoilReadingsHandler(log, soilSvc))
		})
	})

	return router
}

func createGreenhouseHandler(log zerolog.Logger, svc monitoring.Monitoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-greenhouse")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var g types.Greenhouse
		err = decodeBody(r, &g)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to unmarshal body")
			writeError(w, err)
			return
		}

		saved, err := svc.CreateGreenhouse(ctx, g)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to create greenhouse")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, saved)
	}
}

func addSensorReadingsHandler(log zerolog.Logger, svc monitoring.Monitoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "add-sensor-readings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var readings []types.SensorReading
		err = decodeBody(r, &readings)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to unmarshal body")
			writeError(w, err)
			return
		}

		saved, err := svc.AddSensorReadings(ctx, readings)
		if err != nil {
			requestLogger.Error().Err(err).Int("count", len(readings)).Msg("unable to add sensor readings")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, saved)
	}
}

func listGreenhousesHandler(log zerolog.Logger, svc monitoring.Monitoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "list-greenhouses")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		greenhouses, err := svc.ListGreenhouses(ctx)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to list greenhouses")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, greenhouses)
	}
}

func listGreenhouseReadingsHandler(log zerolog.Logger, svc monitoring.Monitoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "list-greenhouse-readings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		boxNo := chi.URLParam(r, "boxNo")
		requestLogger = requestLogger.With().Str("box_no", boxNo).Logger()

		readings, err := svc.ListReadingsForGreenhouse(ctx, boxNo)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to list sensor readings")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, readings)
	}
}

func cameraStreamHandler(log zerolog.Logger, svc monitoring.Monitoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "camera-stream")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		boxNo := chi.URLParam(r, "boxNo")

		streamURL, err := svc.CameraStreamURL(ctx, boxNo)
		if err != nil {
			requestLogger.Error().Err(err).Str("box_no", boxNo).Msg("unable to get camera stream")
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(streamURL))
	}
}

func liveValuesHandler(log zerolog.Logger, svc monitoring.Monitoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "live-values")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		boxNo := chi.URLParam(r, "boxNo")

		ids := sensorIDs(r)
		if len(ids) == 0 {
			err = apperr.Invalid("sensorId", "at least one sensor id is required")
			writeError(w, err)
			return
		}

		values, err := svc.LiveValues(ctx, boxNo, ids)
		if err != nil {
			requestLogger.Error().Err(err).Str("box_no", boxNo).Msg("unable to get live values")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, values)
	}
}

func latestReadingsHandler(log zerolog.Logger, svc monitoring.Monitoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "latest-readings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		readings, err := svc.LatestReadings(ctx)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to get latest readings")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, readings)
	}
}

func readingHistoryHandler(log zerolog.Logger, svc monitoring.Monitoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "reading-history")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		boxNo := strings.TrimSpace(r.URL.Query().Get("boxNo"))

		start, err := parseTimeParam(r, "startTime")
		if err != nil {
			writeError(w, err)
			return
		}

		end, err := parseTimeParam(r, "endTime")
		if err != nil {
			writeError(w, err)
			return
		}

		readings, err := svc.ReadingsInRange(ctx, boxNo, start, end)
		if err != nil {
			requestLogger.Error().Err(err).Str("box_no", boxNo).Msg("unable to get reading history")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, readings)
	}
}

func greenhouseStatusHandler(log zerolog.Logger, svc monitoring.Monitoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "greenhouse-status")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		status, err := svc.GreenhouseStatus(ctx)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to get greenhouse status")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}

func weatherHandler(log zerolog.Logger, svc monitoring.Monitoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "weather")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		boxNo := strings.TrimSpace(r.URL.Query().Get("boxNo"))
		if boxNo == "" {
			err = apperr.Invalid("boxNo", "must not be blank")
			requestLogger.Debug().Err(err).Msg("weather requested without box number")
			writeError(w, err)
			return
		}

		city := r.URL.Query().Get("city")
		requestLogger.Debug().Str("box_no", boxNo).Str("city", city).Msg("returning weather")

		writeJSON(w, http.StatusOK, svc.Weather(ctx, boxNo, city))
	}
}

func batchStatusHandler(log zerolog.Logger, svc monitoring.Monitoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "batch-status")
		defer span.End()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		requestLogger.Debug().Msg("returning batch status")

		writeJSON(w, http.StatusOK, svc.BatchStatus(ctx))
	}
}
