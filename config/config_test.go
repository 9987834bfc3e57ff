package config

import (
	"testing"

	"mta/attribution"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset() {
	initiated = false
	configuration = nil
}

func intPtr(value int) *int { return &value }

func boolPtr(value bool) *bool { return &value }

func TestLoadKeepsCallerConfig(t *testing.T) {
	cacheSize := 0
	given := &Configuration{CacheSize: &cacheSize}
	config, err := Load(given)
	require.Nil(t, err)

	*config.CacheSize = 10
	assert.Equal(t, 0, cacheSize)
	assert.Equal(t, &cacheSize, given.CacheSize)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		config  *Configuration
		wantErr bool
		check   func(t *testing.T, config *Configuration)
	}{
		{"defaults", nil, nil, false, func(t *testing.T, config *Configuration) {
			assert.Equal(t, DEVELOPMENT, config.Env)
			assert.Equal(t, 8090, config.Port)
			assert.Equal(t, attribution.DefaultDecayRatio, config.DecayRatio)
			assert.Equal(t, "disk", config.JourneyStore.Type)
			assert.Equal(t, 1000, config.GetCacheSize())
			assert.False(t, config.ShouldDropCycles())
		}},
		{"flags kept", nil, &Configuration{Env: "Staging", Port: 9000}, false, func(t *testing.T, config *Configuration) {
			assert.Equal(t, STAGING, config.Env)
			assert.Equal(t, 9000, config.Port)
			assert.Equal(t, 7.0, config.HalfLifeDays)
		}},
		{"env overrides", map[string]string{"MTA_PORT": "7000", "MTA_STORE_TYPE": "s3", "MTA_STORE_BUCKET": "journeys"},
			&Configuration{Port: 9000}, false, func(t *testing.T, config *Configuration) {
				assert.Equal(t, 7000, config.Port)
				assert.Equal(t, "s3", config.JourneyStore.Type)
				assert.Equal(t, "journeys", config.JourneyStore.Bucket)
				assert.Equal(t, "us-east-1", config.JourneyStore.Region)
			}},
		{"cache disabled", nil, &Configuration{Env: DEVELOPMENT, Port: 8090, CacheSize: intPtr(0)}, false, func(t *testing.T, config *Configuration) {
			require.NotNil(t, config.CacheSize)
			assert.Equal(t, 0, config.GetCacheSize())
		}},
		{"drop cycles kept", nil, &Configuration{DropCycles: boolPtr(true)}, false, func(t *testing.T, config *Configuration) {
			assert.True(t, config.ShouldDropCycles())
			assert.Equal(t, 1000, config.GetCacheSize())
		}},
		{"env disables drop cycles", map[string]string{"MTA_DROP_CYCLES": "false", "MTA_CACHE_SIZE": "0"},
			&Configuration{DropCycles: boolPtr(true), CacheSize: intPtr(50)}, false, func(t *testing.T, config *Configuration) {
				assert.False(t, config.ShouldDropCycles())
				assert.Equal(t, 0, config.GetCacheSize())
			}},
		{"negative cache size", nil, &Configuration{CacheSize: intPtr(-1)}, true, nil},
		{"invalid env", nil, &Configuration{Env: "qa"}, true, nil},
		{"invalid decay ratio", map[string]string{"MTA_DECAY_RATIO": "1.5"}, nil, true, nil},
		{"malformed env value", map[string]string{"MTA_HALF_LIFE_DAYS": "week"}, nil, true, nil},
		{"bucket required", nil, &Configuration{JourneyStore: JourneyStoreConf{Type: "gcs"}}, true, nil},
		{"unknown store", nil, &Configuration{JourneyStore: JourneyStoreConf{Type: "ftp"}}, true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			config, err := Load(tt.config)
			assert.Equal(t, tt.wantErr, err != nil, "error: %v", err)
			if tt.check != nil {
				require.NotNil(t, config)
				tt.check(t, config)
			}
		})
	}
}

func TestInit(t *testing.T) {
	reset()
	defer reset()

	assert.False(t, IsDevelopment())
	assert.Equal(t, attribution.DefaultConfig(), GetAttributionConfig())

	require.Nil(t, Init(&Configuration{Env: DEVELOPMENT, HalfLifeDays: 14}))
	assert.True(t, IsDevelopment())
	assert.Equal(t, 14.0, GetAttributionConfig().HalfLifeDays)
	assert.Equal(t, "mta", GetConfig().AppName)

	assert.NotNil(t, Init(&Configuration{}), "second init fails")
}
