package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	if yaml != "" {
		require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))
	}
	return v
}

func TestDefaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Server.ServeSwagger)
	assert.Equal(t, "./web", cfg.Site.StaticDir)
	assert.Equal(t, "index.html", cfg.Site.Page)
	assert.Empty(t, cfg.Rates.APIURL)
	assert.Equal(t, 8*time.Second, cfg.Rates.Timeout())
	assert.Equal(t, "rates.json", cfg.Rates.LocalFile)

	loc, err := cfg.Site.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestFromYAML(t *testing.T) {
	cfg, err := fromViper(newTestViper(t, `
server:
  port: 9090
site:
  timezone: UTC
rates:
  api_url: " https://api.example.com/rates "
  timeout_ms: 2500
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "https://api.example.com/rates", cfg.Rates.APIURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.Rates.Timeout())

	loc, err := cfg.Site.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("RATEBOARD_RATES_API_URL", "http://localhost:9000/api/rates")
	t.Setenv("RATEBOARD_RATES_TIMEOUT_MS", "1200")

	v := newTestViper(t, "")
	v.SetEnvPrefix("RATEBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/api/rates", cfg.Rates.APIURL)
	assert.Equal(t, 1200, cfg.Rates.TimeoutMs)
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Server: ServerConfig{Port: 0, WriteTimeoutSec: 30},
		Site:   SiteConfig{StaticDir: "", Page: "index.html", Timezone: "Mars/Olympus"},
		Rates:  RatesConfig{APIURL: "ftp://example.com", TimeoutMs: 0, LocalFile: "rates.json"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "server.port")
	assert.Contains(t, msg, "site.static_dir")
	assert.Contains(t, msg, "site.timezone")
	assert.Contains(t, msg, "rates.api_url")
	assert.Contains(t, msg, "rates.timeout_ms")
}

func TestValidate_WriteTimeoutCoversRender(t *testing.T) {
	base := func(writeSec, timeoutMs int) Config {
		return Config{
			Server: ServerConfig{Port: 8080, WriteTimeoutSec: writeSec},
			Site:   SiteConfig{StaticDir: "./web", Page: "index.html", Timezone: "UTC"},
			Rates:  RatesConfig{TimeoutMs: timeoutMs, LocalFile: "rates.json"},
		}
	}

	t.Run("two slow fetches outlast the write timeout", func(t *testing.T) {
		cfg := base(30, 20000)
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.write_timeout_sec")
	})

	t.Run("equal is not enough", func(t *testing.T) {
		cfg := base(16, 8000)
		require.Error(t, cfg.Validate())
	})

	t.Run("defaults leave headroom", func(t *testing.T) {
		cfg := base(30, 8000)
		assert.NoError(t, cfg.Validate())
	})
}
