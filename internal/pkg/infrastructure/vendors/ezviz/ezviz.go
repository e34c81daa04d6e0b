package ezviz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/vendors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("greenhouse-monitoring/ezviz")

var ErrNoCaptureData = errors.New("failed to capture image from camera")

type Config struct {
	APIURL      string
	AppKey      string
	AppSecret   string
	AccessToken string
}

//go:generate moq -rm -out ezviz_mock.go . Client

type Client interface {
	Capture(ctx context.Context, deviceSerial string, channelNo int, quality *int) (string, error)
}

type client struct {
	cfg        *Config
	httpClient *http.Client
}

type Option func(*client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *client) {
		cl.httpClient = c
	}
}

func New(cfg *Config, opts ...Option) Client {
	c := &client{
		cfg:        cfg,
		httpClient: vendors.NewHTTPClient(0),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type captureResponse struct {
	Code string           `json:"code,omitempty"`
	Msg  string           `json:"msg,omitempty"`
	Data *json.RawMessage `json:"data"`
}

// Capture asks the vendor to take a still image and returns its url. There is no
// fallback, every failure is returned to the caller.
func (c *client) Capture(ctx context.Context, deviceSerial string, channelNo int, quality *int) (string, error) {
	var err error

	ctx, span := tracer.Start(ctx, "ezviz-capture")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	form := url.Values{}
	form.Set("accessToken", c.cfg.AccessToken)
	form.Set("deviceSerial", deviceSerial)
	form.Set("channelNo", strconv.Itoa(channelNo))
	if quality != nil {
		form.Set("quality", strconv.Itoa(*quality))
	}

	captureURL := strings.TrimSuffix(c.cfg.APIURL, "/") + "/device/capture"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, captureURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("error capturing image: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("error capturing image: %w", err)
		return "", err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("error capturing image: %w", err)
		return "", err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err = fmt.Errorf("error capturing image: unexpected response code %d", resp.StatusCode)
		return "", err
	}

	cr := captureResponse{}
	err = json.Unmarshal(b, &cr)
	if err != nil {
		err = fmt.Errorf("error capturing image: %w", err)
		return "", err
	}

	if cr.Data == nil {
		err = fmt.Errorf("error capturing image: %w", ErrNoCaptureData)
		return "", err
	}

	data := map[string]any{}
	err = json.Unmarshal(*cr.Data, &data)
	if err != nil {
		err = fmt.Errorf("error capturing image: %w", err)
		return "", err
	}

	picURL, ok := data["picUrl"].(string)
	if !ok {
		err = fmt.Errorf("error capturing image: response data has no picUrl")
		return "", err
	}

	return picURL, nil
}
