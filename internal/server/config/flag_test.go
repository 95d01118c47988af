package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_OverridesConfig(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"server",
		"-a", "127.0.0.1:9090",
		"-d", "postgres://u:p@localhost/financas",
		"-s", "flag-secret",
		"-t", "15",
		"-o", "https://app.example.com",
	}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, c.Addr, "127.0.0.1:9090")
	assert.Equal(t, c.DatabaseDSN, "postgres://u:p@localhost/financas")
	assert.Equal(t, c.SecretKey, "flag-secret")
	assert.Equal(t, c.AccessTokenValidityDuration, 15*time.Minute)
	assert.Equal(t, c.CORSOrigins, "https://app.example.com")
}

func TestParseFlags_UnknownFlagsIgnored(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"server", "-test.v=true", "-z", "junk", "-a", ":7070"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, c.Addr, ":7070")
	assert.Equal(t, c.SecretKey, "secretKey")
}

func TestLoadConfig_FlagsBeatEnv(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	t.Setenv("ADDRESS", "127.0.0.1:8080")
	os.Args = []string{"server", "-a", ":6060"}

	c := LoadConfig()
	assert.Equal(t, c.Addr, ":6060")
}
