package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/vendors/ezviz"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/vendors/fbox"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/vendors/ys"
)

// Config is read once at start up and handed by reference to the components that need it
type Config struct {
	ListenAddress string `env:"LISTEN_ADDRESS" envDefault:"0.0.0.0"`
	ServicePort   string `env:"SERVICE_PORT" envDefault:"8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	DevMode bool `env:"DEV_MODE" envDefault:"false"`

	HTTPTimeout time.Duration `env:"VENDOR_HTTP_TIMEOUT" envDefault:"10s"`

	CameraDevicesFile string `env:"CAMERA_DEVICES_FILE"`

	Database Database `envPrefix:"POSTGRES_"`
	Events   Events   `envPrefix:"RABBITMQ_"`
	Ezviz    Ezviz    `envPrefix:"EZVIZ_"`
	YS       YS       `envPrefix:"YS_"`
	FBox     FBox     `envPrefix:"FBOX_"`
}

type Database struct {
	Host     string `env:"HOST"`
	Port     string `env:"PORT" envDefault:"5432"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	DbName   string `env:"DBNAME" envDefault:"greenhouse"`
	SslMode  string `env:"SSLMODE" envDefault:"disable"`
}

// Events only decides whether a broker is used, the messaging library reads
// the remaining RABBITMQ_ settings itself
type Events struct {
	Host string `env:"HOST"`
}

type Ezviz struct {
	APIURL      string `env:"API_URL" envDefault:"https://open.ys7.com/api/lapp"`
	AppKey      string `env:"APP_KEY"`
	AppSecret   string `env:"APP_SECRET"`
	AccessToken string `env:"ACCESS_TOKEN"`
}

type YS struct {
	AccountID string `env:"ACCOUNT_ID"`
	TokenURL  string `env:"TOKEN_URL" envDefault:"http://42.193.14.241:7000/ysapi/subAccount/getToken"`
	LiveURL   string `env:"LIVE_URL" envDefault:"https://open.ys7.com/api/lapp/v2/live/address/get"`
}

type FBox struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	TokenURL     string `env:"TOKEN_URL" envDefault:"https://fbox360.com/idserver/core/connect/token"`
	ValuesURL    string `env:"VALUES_URL" envDefault:"https://fbox360.com/api/v2/dmon/value/get"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadFrom(environment map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) DatabaseConnector() database.ConnectorConfig {
	return database.ConnectorConfig{
		Host:     c.Database.Host,
		Port:     c.Database.Port,
		Username: c.Database.User,
		DbName:   c.Database.DbName,
		Password: c.Database.Password,
		SslMode:  c.Database.SslMode,
	}
}

func (c *Config) EzvizConfig() *ezviz.Config {
	return &ezviz.Config{
		APIURL:      c.Ezviz.APIURL,
		AppKey:      c.Ezviz.AppKey,
		AppSecret:   c.Ezviz.AppSecret,
		AccessToken: c.Ezviz.AccessToken,
	}
}

func (c *Config) YSConfig() *ys.Config {
	return &ys.Config{
		AccountID: c.YS.AccountID,
		TokenURL:  c.YS.TokenURL,
		LiveURL:   c.YS.LiveURL,
	}
}

func (c *Config) FBoxConfig() *fbox.Config {
	return &fbox.Config{
		ClientID:     c.FBox.ClientID,
		ClientSecret: c.FBox.ClientSecret,
		TokenURL:     c.FBox.TokenURL,
		ValuesURL:    c.FBox.ValuesURL,
	}
}
