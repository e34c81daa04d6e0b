package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diwise/greenhouse-monitoring/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

// GreenhouseClient talks to the ingestion and query api of a greenhouse monitoring service
type GreenhouseClient interface {
	CreateGreenhouse(ctx context.Context, g types.Greenhouse) (types.Greenhouse, error)
	AddSensorReadings(ctx context.Context, readings []types.SensorReading) ([]types.SensorReading, error)
	Greenhouses(ctx context.Context) ([]types.Greenhouse, error)
	LatestReadings(ctx context.Context) ([]types.SensorReading, error)
	History(ctx context.Context, boxNo string, start, end time.Time) ([]types.SensorReading, error)
	SaveSoilReading(ctx context.Context, reading types.SoilReading) (types.SoilReading, error)
}

type greenhouseClient struct {
	url        string
	httpClient http.Client
}

var tracer = otel.Tracer("greenhouse-monitoring-client")

func New(serviceURL string) GreenhouseClient {
	return &greenhouseClient{
		url: strings.TrimSuffix(serviceURL, "/"),
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   10 * time.Second,
		},
	}
}

func (c *greenhouseClient) CreateGreenhouse(ctx context.Context, g types.Greenhouse) (types.Greenhouse, error) {
	var err error
	ctx, span := tracer.Start(ctx, "create-greenhouse")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var created types.Greenhouse
	err = c.post(ctx, "/api/monitoring/greenhouses", g, &created)

	return created, err
}

func (c *greenhouseClient) AddSensorReadings(ctx context.Context, readings []types.SensorReading) ([]types.SensorReading, error) {
	var err error
	ctx, span := tracer.Start(ctx, "add-sensor-readings")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	log.Debug().Msgf("sending %d sensor readings", len(readings))

	saved := []types.SensorReading{}
	err = c.post(ctx, "/api/monitoring/sensor-data", readings, &saved)

	return saved, err
}

func (c *greenhouseClient) Greenhouses(ctx context.Context) ([]types.Greenhouse, error) {
	var err error
	ctx, span := tracer.Start(ctx, "list-greenhouses")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	greenhouses := []types.Greenhouse{}
	err = c.get(ctx, "/api/monitoring/greenhouses", &greenhouses)

	return greenhouses, err
}

func (c *greenhouseClient) LatestReadings(ctx context.Context) ([]types.SensorReading, error) {
	var err error
	ctx, span := tracer.Start(ctx, "latest-readings")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	readings := []types.SensorReading{}
	err = c.get(ctx, "/api/monitoring/sensor-data/latest", &readings)

	return readings, err
}

func (c *greenhouseClient) History(ctx context.Context, boxNo string, start, end time.Time) ([]types.SensorReading, error) {
	var err error
	ctx, span := tracer.Start(ctx, "reading-history")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	params := url.Values{}
	params.Set("boxNo", boxNo)
	params.Set("startTime", start.UTC().Format(time.RFC3339))
	params.Set("endTime", end.UTC().Format(time.RFC3339))

	readings := []types.SensorReading{}
	err = c.get(ctx, "/api/monitoring/sensor-data/history?"+params.Encode(), &readings)

	return readings, err
}

func (c *greenhouseClient) SaveSoilReading(ctx context.Context, reading types.SoilReading) (types.SoilReading, error) {
	var err error
	ctx, span := tracer.Start(ctx, "save-soil-reading")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	env := types.Envelope[types.SoilReading]{}
	err = c.post(ctx, "/api/soil/data", reading, &env)

	return env.Data, err
}

func (c *greenhouseClient) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	return c.do(req, result)
}

func (c *greenhouseClient) post(ctx context.Context, path string, body, result any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

func (c *greenhouseClient) do(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		env := types.Envelope[any]{}
		if json.Unmarshal(respBody, &env) == nil && env.Message != "" {
			return fmt.Errorf("request failed with status code %d: %s", resp.StatusCode, env.Message)
		}
		return fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	err = json.Unmarshal(respBody, result)
	if err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}
