package fbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/vendors"
	"github.com/diwise/greenhouse-monitoring/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const PlaceholderToken = "token"

var tracer = otel.Tracer("greenhouse-monitoring/fbox")

type Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	ValuesURL    string
}

//go:generate moq -rm -out fbox_mock.go . Client

type Client interface {
	AccessToken(ctx context.Context) (string, error)
	Values(ctx context.Context, boxNo string, sensorIDs []string) ([]types.LiveValue, error)
}

type client struct {
	cfg         *Config
	credentials *clientcredentials.Config
	httpClient  *http.Client

	onTokenFailure  vendors.OnFailure[string]
	onValuesFailure vendors.OnFailure[[]types.LiveValue]
}

type Option func(*client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *client) {
		cl.httpClient = c
	}
}

func New(cfg *Config, opts ...Option) Client {
	c := &client{
		cfg: cfg,
		credentials: &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		httpClient: vendors.NewHTTPClient(0),
		onTokenFailure: vendors.ReturnPlaceholder("fbox", "token", func() string {
			return PlaceholderToken
		}),
		onValuesFailure: vendors.ReturnPlaceholder("fbox", "values", func() []types.LiveValue {
			return []types.LiveValue{}
		}),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *client) AccessToken(ctx context.Context) (string, error) {
	var err error

	ctx, span := tracer.Start(ctx, "fbox-access-token")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	token, err := c.credentials.Token(context.WithValue(ctx, oauth2.HTTPClient, c.httpClient))
	if err != nil {
		return c.onTokenFailure(ctx, err)
	}

	return token.AccessToken, nil
}

func (c *client) Values(ctx context.Context, boxNo string, sensorIDs []string) ([]types.LiveValue, error) {
	var err error

	ctx, span := tracer.Start(ctx, "fbox-values")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	token, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	values, err := c.requestValues(ctx, token, boxNo, sensorIDs)
	if err != nil {
		return c.onValuesFailure(ctx, err)
	}

	return values, nil
}

func (c *client) requestValues(ctx context.Context, token, boxNo string, sensorIDs []string) ([]types.LiveValue, error) {
	if sensorIDs == nil {
		sensorIDs = []string{}
	}

	body, err := json.Marshal(map[string]any{"ids": sensorIDs})
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("boxNo", boxNo)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.ValuesURL+"?"+params.Encode(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create values request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("values request failed: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response code %d", resp.StatusCode)
	}

	values := []types.LiveValue{}
	err = json.Unmarshal(b, &values)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal values: %w", err)
	}

	return values, nil
}
