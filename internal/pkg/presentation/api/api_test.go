package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/apperr"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/camera"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/monitoring"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/application/soil"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/vendors/ezviz"
	"github.com/diwise/greenhouse-monitoring/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestHealth(t *testing.T) {
	is, ts := setupTest(t, &monitoring.MonitoringMock{}, &soil.SoilMock{}, &camera.CameraMock{})
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodGet, "/health", nil)
	is.Equal(http.StatusNoContent, resp.StatusCode)
}

func TestCreateGreenhouse(t *testing.T) {
	m := &monitoring.MonitoringMock{
		CreateGreenhouseFunc: func(ctx context.Context, g types.Greenhouse) (types.Greenhouse, error) {
			return g, nil
		},
	}

	is, ts := setupTest(t, m, &soil.SoilMock{}, &camera.CameraMock{})
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodPost, "/api/monitoring/greenhouses", strings.NewReader(`{"boxNo":"box-01","name":"north","cameraId":"CAM1"}`))
	is.Equal(http.StatusOK, resp.StatusCode)

	var g types.Greenhouse
	is.NoErr(json.Unmarshal([]byte(body), &g))
	is.Equal("box-01", g.BoxNo)
	is.Equal("CAM1", m.CreateGreenhouseCalls()[0].G.CameraID)
}

func TestMalformedBodyIsValidationFailure(t *testing.T) {
	m := &monitoring.MonitoringMock{}

	is, ts := setupTest(t, m, &soil.SoilMock{}, &camera.CameraMock{})
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodPost, "/api/monitoring/sensor-data", strings.NewReader(`{"sensorId":`))
	is.Equal(http.StatusBadRequest, resp.StatusCode)

	env := envelope(is, body)
	is.Equal("400", env.Code)
	is.True(strings.HasPrefix(env.Message, "parameter validation failed: "))
	is.Equal(0, len(m.AddSensorReadingsCalls()))
}

func TestAddSensorReadings(t *testing.T) {
	m := &monitoring.MonitoringMock{
		AddSensorReadingsFunc: func(ctx context.Context, readings []types.SensorReading) ([]types.SensorReading, error) {
			return readings, nil
		},
	}

	is, ts := setupTest(t, m, &soil.SoilMock{}, &camera.CameraMock{})
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodPost, "/api/monitoring/sensor-data", strings.NewReader(sensorDataJson))
	is.Equal(http.StatusOK, resp.StatusCode)

	var readings []types.SensorReading
	is.NoErr(json.Unmarshal([]byte(body), &readings))
	is.Equal(2, len(readings))
	is.Equal(types.SoilMoisture, readings[0].Type)
	is.True(readings[1].Timestamp.IsZero())
}

func TestServiceValidationErrorMapsTo400(t *testing.T) {
	m := &monitoring.MonitoringMock{
		AddSensorReadingsFunc: func(ctx context.Context, readings []types.SensorReading) ([]types.SensorReading, error) {
			return nil, apperr.Invalid("[0].type", "unknown sensor type")
		},
	}

	is, ts := setupTest(t, m, &soil.SoilMock{}, &camera.CameraMock{})
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodPost, "/api/monitoring/sensor-data", strings.NewReader(sensorDataJson))
	is.Equal(http.StatusBadRequest, resp.StatusCode)
	is.Equal("parameter validation failed: [0].type: unknown sensor type", envelope(is, body).Message)
}

func TestServiceFailureMapsTo500(t *testing.T) {
	m := &monitoring.MonitoringMock{
		ListGreenhousesFunc: func(ctx context.Context) ([]types.Greenhouse, error) {
			return nil, errors.New("database is down")
		},
	}

	is, ts := setupTest(t, m, &soil.SoilMock{}, &camera.CameraMock{})
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodGet, "/api/monitoring/greenhouses", nil)
	is.Equal(http.StatusInternalServerError, resp.StatusCode)

	env := envelope(is, body)
	is.Equal("500", env.Code)
	is.Equal("operation failed: database is down", env.Message)
	is.Equal(nil, env.Data)
}

func TestListGreenhouseReadings(t *testing.T) {
	m := &monitoring.MonitoringMock{
		ListReadingsForGreenhouseFunc: func(ctx context.Context, boxNo string) ([]types.SensorReading, error) {
			return []types.SensorReading{}, nil
		},
	}

	is, ts := setupTest(t, m, &soil.SoilMock{}, &camera.CameraMock{})
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodGet, "/api/monitoring/greenhouses/box-07/sensors", nil)
	is.Equal(http.StatusOK, resp.StatusCode)
	is.Equal("[]", body)
	is.Equal("box-07", m.ListReadingsForGreenhouseCalls()[0].BoxNo)
}

func TestCameraStreamIsPlainText(t *testing.T) {
	m := &monitoring.MonitoringMock{
		CameraStreamURLFunc: func(ctx context.Context, boxNo string) (string, error) {
			return "rtmp://rtmp.example.com/live/" + boxNo, nil
		},
	}

	is, ts := setupTest(t, m, &soil.SoilMock{}, &camera.CameraMock{})
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodGet, "/api/monitoring/greenhouses/box-01/camera", nil)
	is.Equal(http.StatusOK, resp.StatusCode)
	is.True(strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain"))
	is.Equal("rtmp://rtmp.example.com/live/box-01", body)
}

func TestLiveValuesRequireSensorIDs(t *testing.T) {
	m := &monitoring.MonitoringMock{
		LiveValuesFunc: func(ctx context.Context, boxNo string, sensorIDs []string) ([]types.LiveValue, error) {
			return []types.LiveValue{}, nil
		},
	}

	is, ts := setupTest(t, m, &soil.SoilMock{}, &camera.CameraMock{})
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodGet, "/api/monitoring/greenhouses/box-01/live", nil)
	is.Equal(http.StatusBadRequest, resp.StatusCode)

	resp, _ = testRequest(is, ts, http.MethodGet, "/api/monitoring/greenhouses/box-01/live?sensorId=t1,t2&sensorId=h1", nil)
	is.Equal(http.StatusOK, resp.StatusCode)
	is.Equal([]string{"t1", "t2", "h1"}, m.LiveValuesCalls()[0].SensorIDs)
}

func TestReadingHistoryParsesTimes(t *testing.T) {
	m := &monitoring.MonitoringMock{
		ReadingsInRangeFunc: func(ctx context.Context, boxNo string, start, end *time.Time) ([]types.SensorReading, error) {
			return []types.SensorReading{}, nil
		},
	}

	is, ts := setupTest(t, m, &soil.SoilMock{}, &camera.CameraMock{})
	defer ts.Close()

	q := url.Values{}
	q.Set("boxNo", "box-01")
	q.Set("startTime", "2024-05-01T10:00:00")
	q.Set("endTime", "2024-05-01T12:00:00+02:00")

	resp, _ := testRequest(is, ts, http.MethodGet, "/api/monitoring/sensor-data/history?"+q.Encode(), nil)
	is.Equal(http.StatusOK, resp.StatusCode)

	call := m.ReadingsInRangeCalls()[0]
	is.Equal("box-01", call.BoxNo)
	is.True(call.Start.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))
	is.True(call.End.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))

	resp, _ = testRequest(is, ts, http.MethodGet, "/api/monitoring/sensor-data/history?boxNo=box-01", nil)
	is.Equal(http.StatusOK, resp.StatusCode)
	is.Equal(nil, m.ReadingsInRangeCalls()[1].Start)
	is.Equal(nil, m.ReadingsInRangeCalls()[1].End)
}

func TestReadingHistoryRejectsBadTime(t *testing.T) {
	m := &monitoring.MonitoringMock{}

	is, ts := setupTest(t, m, &soil.SoilMock{}, &camera.CameraMock{})
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodGet, "/api/monitoring/sensor-data/history?boxNo=box-01&startTime=yesterday", nil)
	is.Equal(http.StatusBadRequest, resp.StatusCode)
	is.Equal("400", envelope(is, body).Code)
	is.Equal(0, len(m.ReadingsInRangeCalls()))
}

func TestWeatherRequiresBoxNo(t *testing.T) {
	m := &monitoring.MonitoringMock{
		WeatherFunc: func(ctx context.Context, boxNo string, city string) monitoring.Weather {
			return monitoring.Weather{Temperature: 22.5, Condition: "Partly Cloudy"}
		},
	}

	is, ts := setupTest(t, m, &soil.SoilMock{}, &camera.CameraMock{})
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodGet, "/api/monitoring/weather", nil)
	is.Equal(http.StatusBadRequest, resp.StatusCode)

	resp, body := testRequest(is, ts, http.MethodGet, "/api/monitoring/weather?boxNo=box-01&city=Sundsvall", nil)
	is.Equal(http.StatusOK, resp.StatusCode)
	is.True(strings.Contains(body, `"condition":"Partly Cloudy"`))
	is.Equal("Sundsvall", m.WeatherCalls()[0].City)
}

func TestCaptureRequiresChannelNoBeforeCallingVendor(t *testing.T) {
	client := &ezviz.ClientMock{}
	cameraSvc := camera.New(client, &database.CameraRepositoryMock{})

	is, ts := setupTest(t, &monitoring.MonitoringMock{}, &soil.SoilMock{}, cameraSvc)
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodPost, "/api/camera/capture?deviceSerial=D123", nil)
	is.Equal(http.StatusBadRequest, resp.StatusCode)
	is.Equal("parameter validation failed: channelNo: must not be null", envelope(is, body).Message)

	resp, _ = testRequest(is, ts, http.MethodPost, "/api/camera/capture?deviceSerial=D123&channelNo=one", nil)
	is.Equal(http.StatusBadRequest, resp.StatusCode)

	is.Equal(0, len(client.CaptureCalls()))
}

func TestCapture(t *testing.T) {
	c := &camera.CameraMock{
		CaptureFunc: func(ctx context.Context, req types.CaptureRequest) (types.CaptureResult, error) {
			return types.CaptureResult{PicURL: "https://img.example.com/1.jpg"}, nil
		},
	}

	is, ts := setupTest(t, &monitoring.MonitoringMock{}, &soil.SoilMock{}, c)
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodPost, "/api/camera/capture?deviceSerial=D123&channelNo=1&quality=0", nil)
	is.Equal(http.StatusOK, resp.StatusCode)

	var env types.Envelope[types.CaptureResult]
	is.NoErr(json.Unmarshal([]byte(body), &env))
	is.Equal("200", env.Code)
	is.Equal("operation successful", env.Message)
	is.Equal("https://img.example.com/1.jpg", env.Data.PicURL)

	req := c.CaptureCalls()[0].Req
	is.Equal("D123", req.DeviceSerial)
	is.Equal(1, *req.ChannelNo)
	is.Equal(0, *req.Quality)
}

func TestCaptureUpstreamFailure(t *testing.T) {
	c := &camera.CameraMock{
		CaptureFunc: func(ctx context.Context, req types.CaptureRequest) (types.CaptureResult, error) {
			return types.CaptureResult{}, apperr.Upstream("ezviz", errors.New("error capturing image: 503 Service Unavailable"))
		},
	}

	is, ts := setupTest(t, &monitoring.MonitoringMock{}, &soil.SoilMock{}, c)
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodPost, "/api/camera/capture?deviceSerial=D123&channelNo=1", nil)
	is.Equal(http.StatusInternalServerError, resp.StatusCode)
	is.Equal("operation failed: error capturing image: 503 Service Unavailable", envelope(is, body).Message)
}

func TestListCameraDevices(t *testing.T) {
	c := &camera.CameraMock{
		ListDevicesFunc: func(ctx context.Context) ([]types.CameraDevice, error) {
			return []types.CameraDevice{{DeviceSerial: "D123", ChannelNo: 1, AccessToken: "at.secret"}}, nil
		},
	}

	is, ts := setupTest(t, &monitoring.MonitoringMock{}, &soil.SoilMock{}, c)
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodGet, "/api/camera/devices", nil)
	is.Equal(http.StatusOK, resp.StatusCode)

	var env types.Envelope[[]types.CameraDevice]
	is.NoErr(json.Unmarshal([]byte(body), &env))
	is.Equal(1, len(env.Data))
	is.True(!strings.Contains(body, "at.secret")) // device tokens stay on the server
}

func TestFailuresAreLoggedWithTraceID(t *testing.T) {
	otel.SetTracerProvider(sdktrace.NewTracerProvider())

	m := &monitoring.MonitoringMock{
		LatestReadingsFunc: func(ctx context.Context) ([]types.SensorReading, error) {
			return nil, errors.New("database is down")
		},
	}

	buf := &bytes.Buffer{}

	is := is.New(t)
	ts := httptest.NewServer(RegisterHandlers(zerolog.New(buf), chi.NewRouter(), m, &soil.SoilMock{}, &camera.CameraMock{}))
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodGet, "/api/monitoring/sensor-data/latest", nil)
	is.Equal(http.StatusInternalServerError, resp.StatusCode)

	logged := map[string]any{}
	is.NoErr(json.Unmarshal(buf.Bytes(), &logged))
	is.Equal("unable to get latest readings", logged["message"])
	is.Equal("database is down", logged["error"])

	traceID, ok := logged["traceID"].(string)
	is.True(ok)
	is.Equal(32, len(traceID))
}

func TestSaveSoilReading(t *testing.T) {
	s := &soil.SoilMock{
		SaveSoilReadingFunc: func(ctx context.Context, reading types.SoilReading) (types.SoilReading, error) {
			reading.ID = 1
			return reading, nil
		},
	}

	is, ts := setupTest(t, &monitoring.MonitoringMock{}, s, &camera.CameraMock{})
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodPost, "/api/soil/data", strings.NewReader(soilDataJson))
	is.Equal(http.StatusOK, resp.StatusCode)

	var env types.Envelope[types.SoilReading]
	is.NoErr(json.Unmarshal([]byte(body), &env))
	is.Equal("200", env.Code)
	is.Equal(uint(1), env.Data.ID)
	is.Equal(6.8, *env.Data.PH)
}

func TestSaveIncompleteSoilReading(t *testing.T) {
	s := soil.New(&database.SoilRepositoryMock{}, nil)

	is, ts := setupTest(t, &monitoring.MonitoringMock{}, s, &camera.CameraMock{})
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodPost, "/api/soil/data", strings.NewReader(`{"deviceId":"probe-1","temperature":18.0}`))
	is.Equal(http.StatusBadRequest, resp.StatusCode)

	env := envelope(is, body)
	is.Equal("400", env.Code)
	is.Equal("parameter validation failed: humidity: must not be null, ec: must not be null, ph: must not be null, n: must not be null, p: must not be null, k: must not be null", env.Message)
}

func TestListSoilReadings(t *testing.T) {
	s := &soil.SoilMock{
		ListSoilReadingsFunc: func(ctx context.Context, deviceID string, limit int) ([]types.SoilReading, error) {
			return []types.SoilReading{}, nil
		},
	}

	is, ts := setupTest(t, &monitoring.MonitoringMock{}, s, &camera.CameraMock{})
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodGet, "/api/soil/data?deviceId=probe-1&limit=10", nil)
	is.Equal(http.StatusOK, resp.StatusCode)
	is.Equal(`{"msg":"operation successful","code":"200","data":[]}`, body)

	call := s.ListSoilReadingsCalls()[0]
	is.Equal("probe-1", call.DeviceID)
	is.Equal(10, call.Limit)

	resp, _ = testRequest(is, ts, http.MethodGet, "/api/soil/data?limit=ten", nil)
	is.Equal(http.StatusBadRequest, resp.StatusCode)
}

func envelope(is *is.I, body string) types.Envelope[any] {
	var env types.Envelope[any]
	is.NoErr(json.Unmarshal([]byte(body), &env))
	return env
}

func setupTest(t *testing.T, m monitoring.Monitoring, s soil.Soil, c camera.Camera) (*is.I, *httptest.Server) {
	is := is.New(t)

	r := RegisterHandlers(zerolog.Nop(), chi.NewRouter(), m, s, c)
	return is, httptest.NewServer(r)
}

func testRequest(is *is.I, ts *httptest.Server, method, path string, body io.Reader) (*http.Response, string) {
	req, err := http.NewRequest(method, ts.URL+path, body)
	is.NoErr(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err)

	return resp, string(respBody)
}

const sensorDataJson string = `[
	{"sensorId":"m1","boxNo":"box-01","name":"soil moisture","unit":"%","value":38.2,"timestamp":"2024-05-01T10:00:00Z","type":"SOIL_MOISTURE"},
	{"sensorId":"t1","boxNo":"box-01","name":"temperature","unit":"°C","value":21.4,"type":"TEMPERATURE"}
]`

const soilDataJson string = `{"deviceId":"probe-1","temperature":18.0,"humidity":40.5,"ec":1.1,"ph":6.8,"n":10,"p":5,"k":12}`
