// File: config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "development", AppConfig.Env)
	assert.Equal(t, 100, AppConfig.MaxRequestsPerMin)
	assert.Equal(t, 60, AppConfig.HealthIntervalSec)
	assert.Equal(t, int64(50), AppConfig.TokenPriceCents)
	assert.Equal(t, 0, AppConfig.RedisCacheDB)
	assert.Equal(t, 1, AppConfig.RedisAuthDB)
	assert.False(t, IsProduction())
}
