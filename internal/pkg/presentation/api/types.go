package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/apperr"
	"github.com/diwise/greenhouse-monitoring/pkg/types"
)

const (
	msgSuccess          = "operation successful"
	msgValidationFailed = "parameter validation failed: "
	msgOperationFailed  = "operation failed: "
)

// timestamps without an offset are read as UTC
var queryTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05"}

func ok[T any](data T) types.Envelope[T] {
	return types.Envelope[T]{
		Message: msgSuccess,
		Code:    strconv.Itoa(http.StatusOK),
		Data:    data,
	}
}

// failure maps err to its envelope and the http status that goes with it
func failure(err error) (int, types.Envelope[any]) {
	if apperr.IsValidation(err) {
		return http.StatusBadRequest, types.Envelope[any]{
			Message: msgValidationFailed + err.Error(),
			Code:    strconv.Itoa(http.StatusBadRequest),
		}
	}

	return http.StatusInternalServerError, types.Envelope[any]{
		Message: msgOperationFailed + err.Error(),
		Code:    strconv.Itoa(http.StatusInternalServerError),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

func writeError(w http.ResponseWriter, err error) {
	status, body := failure(err)
	writeJSON(w, status, body)
}

func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return apperr.Invalid("body", "must not be empty")
	}

	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil {
		return apperr.Invalid("body", fmt.Sprintf("malformed json (%s)", err.Error()))
	}

	return nil
}

func parseTimeParam(r *http.Request, name string) (*time.Time, error) {
	value := strings.TrimSpace(r.URL.Query().Get(name))
	if value == "" {
		return nil, nil
	}

	for _, layout := range queryTimeLayouts {
		t, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			t = t.UTC()
			return &t, nil
		}
	}

	return nil, apperr.Invalid(name, fmt.Sprintf("could not parse %q as a date-time", value))
}

// parseIntParam reads an optional integer from the query string or a posted form
func parseIntParam(r *http.Request, name string) (*int, error) {
	value := strings.TrimSpace(r.FormValue(name))
	if value == "" {
		return nil, nil
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		return nil, apperr.Invalid(name, fmt.Sprintf("%q is not an integer", value))
	}

	return &i, nil
}

// sensorIDs accepts both repeated parameters and comma separated lists
func sensorIDs(r *http.Request) []string {
	ids := []string{}

	for _, v := range r.URL.Query()["sensorId"] {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	return ids
}
