package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(values map[string]any) *viper.Viper {
	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("STORE_DRIVER", StoreDriverMemory)
	v.SetDefault("RECENTLY_CLOSED_WINDOW", "24h")
	v.SetDefault("DEFAULT_PAGE_SIZE", 9)
	v.SetDefault("MAX_PAGE_SIZE", 100)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(nil))
	require.NoError(t, err)

	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, 24*time.Hour, cfg.RecentlyClosedWindow)
	assert.Equal(t, 9, cfg.DefaultPageSize)
	assert.Equal(t, 100, cfg.MaxPageSize)
	assert.NotEmpty(t, cfg.JWTSecret, "dev fallback secret")
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestFromViper_ParsesBrokersAndWindow(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{
		"KAFKA_BROKERS":          " kafka-1:9092, ,kafka-2:9092 ",
		"RECENTLY_CLOSED_WINDOW": "2h",
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 2*time.Hour, cfg.RecentlyClosedWindow)
}

func TestFromViper_InvalidWindowFallsBack(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{"RECENTLY_CLOSED_WINDOW": "soon"}))
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.RecentlyClosedWindow)
}

func TestFromViper_Errors(t *testing.T) {
	_, err := fromViper(newTestViper(map[string]any{"STORE_DRIVER": "postgres"}))
	assert.Error(t, err, "postgres without PGSQL_URL")

	_, err = fromViper(newTestViper(map[string]any{"STORE_DRIVER": "sqlite"}))
	assert.Error(t, err, "unknown driver")

	_, err = fromViper(newTestViper(map[string]any{"IS_PRODUCTION": true}))
	assert.Error(t, err, "production without JWT secret")
}
