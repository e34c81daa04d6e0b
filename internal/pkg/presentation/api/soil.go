package api

import (
	"net/http"

	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/soil"
	"github.com/diwise/greenhouse-monitoring/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
)

func saveSoilReadingHandler(log zerolog.Logger, svc soil.Soil) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "save-soil-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var reading types.SoilReading
		err = decodeBody(r, &reading)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to unmarshal body")
			writeError(w, err)
			return
		}

		saved, err := svc.SaveSoilReading(ctx, reading)
		if err != nil {
			requestLogger.Error().Err(err).Str("device_id", reading.DeviceID).Msg("unable to save soil reading")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ok(saved))
	}
}

func listSoilReadingsHandler(log zerolog.Logger, svc soil.Soil) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "list-soil-readings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		limit, err := parseIntParam(r, "limit")
		if err != nil {
			writeError(w, err)
			return
		}

		n := 0
		if limit != nil {
			n = *limit
		}

		readings, err := svc.ListSoilReadings(ctx, r.URL.Query().Get("deviceId"), n)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to list soil readings")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ok(readings))
	}
}
