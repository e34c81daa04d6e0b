package ys

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/vendors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

const (
	PlaceholderToken   = "mock_token_for_testing_123"
	PlaceholderLiveURL = "rtmp://rtmp.example.com/live/"

	// protocol 2 asks for an RTMP address
	rtmpProtocol = "2"
)

var tracer = otel.Tracer("greenhouse-monitoring/ys")

type Config struct {
	AccountID string
	TokenURL  string
	LiveURL   string
}

//go:generate moq -rm -out ys_mock.go . Client

type Client interface {
	AccessToken(ctx context.Context) (string, error)
	StreamURL(ctx context.Context, deviceSerial string) (string, error)
}

type client struct {
	cfg        *Config
	httpClient *http.Client

	onTokenFailure  vendors.OnFailure[string]
	onStreamFailure func(deviceSerial string) vendors.OnFailure[string]
}

type Option func(*client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *client) {
		cl.httpClient = c
	}
}

func WithTokenFailurePolicy(p vendors.OnFailure[string]) Option {
	return func(cl *client) {
		cl.onTokenFailure = p
	}
}

func WithStreamFailurePolicy(p func(deviceSerial string) vendors.OnFailure[string]) Option {
	return func(cl *client) {
		cl.onStreamFailure = p
	}
}

// New returns a livestream client that answers failed calls with placeholders unless
// other failure policies are given.
func New(cfg *Config, opts ...Option) Client {
	c := &client{
		cfg:        cfg,
		httpClient: vendors.NewHTTPClient(0),
		onTokenFailure: vendors.ReturnPlaceholder("ys", "token", func() string {
			return PlaceholderToken
		}),
		onStreamFailure: PlaceholderStream,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// PlaceholderStream is the default stream policy, an rtmp address keyed by device serial
func PlaceholderStream(deviceSerial string) vendors.OnFailure[string] {
	return vendors.ReturnPlaceholder("ys", "live", func() string {
		return PlaceholderLiveURL + deviceSerial
	})
}

func (c *client) AccessToken(ctx context.Context) (string, error) {
	var err error

	ctx, span := tracer.Start(ctx, "ys-access-token")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	token, err := c.requestToken(ctx)
	if err != nil {
		return c.onTokenFailure(ctx, err)
	}

	return token, nil
}

func (c *client) requestToken(ctx context.Context) (string, error) {
	body, err := json.Marshal(map[string]string{"accountId": c.cfg.AccountID})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	b, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}

	return strings.TrimSpace(string(b)), nil
}

func (c *client) StreamURL(ctx context.Context, deviceSerial string) (string, error) {
	var err error

	ctx, span := tracer.Start(ctx, "ys-stream-url")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	log.Debug().Str("device_serial", deviceSerial).Msg("requesting live address")

	token, err := c.AccessToken(ctx)
	if err != nil {
		return "", err
	}

	stream, err := c.requestStream(ctx, token, deviceSerial)
	if err != nil {
		return c.onStreamFailure(deviceSerial)(ctx, err)
	}

	return stream, nil
}

func (c *client) requestStream(ctx context.Context, token, deviceSerial string) (string, error) {
	params := url.Values{}
	params.Set("deviceSerial", deviceSerial)
	params.Set("protocol", rtmpProtocol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.LiveURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create live address request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)

	b, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("live address request failed: %w", err)
	}

	return string(b), nil
}

func (c *client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response code %d", resp.StatusCode)
	}

	return b, nil
}
