package config

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadFrom(map[string]string{})
	is.NoErr(err)

	is.Equal("8080", cfg.ServicePort)
	is.Equal(10*time.Second, cfg.HTTPTimeout)
	is.Equal("5432", cfg.Database.Port)
	is.Equal("https://open.ys7.com/api/lapp", cfg.Ezviz.APIURL)
	is.Equal("https://open.ys7.com/api/lapp/v2/live/address/get", cfg.YS.LiveURL)
	is.Equal("https://fbox360.com/idserver/core/connect/token", cfg.FBox.TokenURL)
	is.Equal("", cfg.Events.Host)
}

func TestVendorCredentialsFromEnvironment(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadFrom(map[string]string{
		"EZVIZ_ACCESS_TOKEN":  "at.shared",
		"YS_ACCOUNT_ID":       "account-01",
		"FBOX_CLIENT_ID":      "client-01",
		"FBOX_CLIENT_SECRET":  "secret",
		"POSTGRES_HOST":       "db.local",
		"RABBITMQ_HOST":       "rabbitmq",
		"VENDOR_HTTP_TIMEOUT": "3s",
	})
	is.NoErr(err)

	is.Equal("at.shared", cfg.EzvizConfig().AccessToken)
	is.Equal("account-01", cfg.YSConfig().AccountID)
	is.Equal("client-01", cfg.FBoxConfig().ClientID)
	is.Equal("db.local", cfg.DatabaseConnector().Host)
	is.Equal("rabbitmq", cfg.Events.Host)
	is.Equal(3*time.Second, cfg.HTTPTimeout)
}

func TestInvalidTimeoutFails(t *testing.T) {
	is := is.New(t)

	_, err := LoadFrom(map[string]string{"VENDOR_HTTP_TIMEOUT": "soon"})
	is.True(err != nil)
}
