package config

import (
	"fmt"
	"os"
	"strings"

	"mta/attribution"
	"mta/filestore"
	U "mta/util"

	"github.com/imdario/mergo"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	E "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var initiated bool = false

const (
	DEVELOPMENT = "development"
	STAGING     = "staging"
	PRODUCTION  = "production"
)

// Environment variables are read with this prefix, e.g. MTA_PORT, MTA_STORE_BUCKET.
const EnvPrefix = "mta"

type JourneyStoreConf struct {
	Type    string `json:"type" envconfig:"type"`
	BaseDir string `json:"base_dir" envconfig:"base_dir"`
	Bucket  string `json:"bucket" envconfig:"bucket"`
	Region  string `json:"region" envconfig:"region"`
}

type Configuration struct {
	AppName      string           `json:"app_name" envconfig:"app_name"`
	Env          string           `json:"env" envconfig:"env"`
	Port         int              `json:"port" envconfig:"port"`
	DecayRatio   float64          `json:"decay_ratio" envconfig:"decay_ratio"`
	HalfLifeDays float64          `json:"half_life_days" envconfig:"half_life_days"`
	CacheSize    *int             `json:"cache_size" envconfig:"cache_size"`
	DropCycles   *bool            `json:"drop_cycles" envconfig:"drop_cycles"`
	JourneyStore JourneyStoreConf `json:"journey_store" envconfig:"store"`

	MetricsProjectID string `json:"metrics_project_id" envconfig:"metrics_project_id"`
	MetricsLocation  string `json:"metrics_location" envconfig:"metrics_location"`
}

var configuration *Configuration = nil

func defaultConfiguration() Configuration {
	cacheSize := 1000
	dropCycles := false
	return Configuration{
		AppName:      "mta",
		Env:          DEVELOPMENT,
		Port:         8090,
		DecayRatio:   attribution.DefaultDecayRatio,
		HalfLifeDays: attribution.DefaultHalfLifeDays,
		CacheSize:    &cacheSize,
		DropCycles:   &dropCycles,
		JourneyStore: JourneyStoreConf{
			Type:    filestore.TypeDisk,
			BaseDir: "/usr/local/var/mta",
			Region:  "us-east-1",
		},
		MetricsLocation: "us-west1",
	}
}

func initLogging() {
	// Log as JSON instead of the default ASCII formatter.
	log.SetFormatter(&log.JSONFormatter{})

	if IsDevelopment() {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// loadEnvFile reads .env from the working directory when present.
func loadEnvFile() error {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return E.Wrap(err, "failed to load .env")
	}
	return nil
}

// optionals holds the settings where zero is a valid value. mergo treats zero
// as unset, so these are resolved by nil-ness instead.
type optionals struct {
	cacheSize  *int
	dropCycles *bool
}

// takeOptionals moves the optional settings out of config.
func takeOptionals(config *Configuration) optionals {
	taken := optionals{cacheSize: config.CacheSize, dropCycles: config.DropCycles}
	config.CacheSize = nil
	config.DropCycles = nil
	return taken
}

// applyTo copies the set values onto config.
func (o optionals) applyTo(config *Configuration) {
	if o.cacheSize != nil {
		cacheSize := *o.cacheSize
		config.CacheSize = &cacheSize
	}
	if o.dropCycles != nil {
		dropCycles := *o.dropCycles
		config.DropCycles = &dropCycles
	}
}

// Load resolves the final configuration. Values set through MTA_* environment
// variables override the given config and defaults fill whatever is still
// unset. CacheSize and DropCycles count as set when non nil, so an explicit 0
// or false is kept.
func Load(config *Configuration) (*Configuration, error) {
	if config == nil {
		config = &Configuration{}
	}
	resolved := *config
	given := takeOptionals(&resolved)

	var fromEnv Configuration
	if err := envconfig.Process(EnvPrefix, &fromEnv); err != nil {
		return nil, E.Wrap(err, "failed to read environment")
	}
	envOptionals := takeOptionals(&fromEnv)
	if err := mergo.Merge(&resolved, fromEnv, mergo.WithOverride); err != nil {
		return nil, E.Wrap(err, "failed to merge environment")
	}

	defaults := defaultConfiguration()
	defaultOptionals := takeOptionals(&defaults)
	if err := mergo.Merge(&resolved, defaults); err != nil {
		return nil, E.Wrap(err, "failed to merge defaults")
	}
	defaultOptionals.applyTo(&resolved)
	given.applyTo(&resolved)
	envOptionals.applyTo(&resolved)

	if err := validate(&resolved); err != nil {
		return nil, err
	}
	return &resolved, nil
}

func validate(config *Configuration) error {
	config.Env = strings.ToLower(config.Env)
	if !U.ContainsStringInArray([]string{DEVELOPMENT, STAGING, PRODUCTION}, config.Env) {
		return fmt.Errorf("invalid env %q", config.Env)
	}
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("invalid port %d", config.Port)
	}
	if config.DecayRatio <= 0 || config.DecayRatio > 1 {
		return fmt.Errorf("decay ratio must be in (0, 1], got %v", config.DecayRatio)
	}
	if config.HalfLifeDays <= 0 {
		return fmt.Errorf("half life must be positive, got %v", config.HalfLifeDays)
	}
	if config.GetCacheSize() < 0 {
		return fmt.Errorf("invalid cache size %d", config.GetCacheSize())
	}
	switch config.JourneyStore.Type {
	case filestore.TypeDisk:
	case filestore.TypeGCS, filestore.TypeS3:
		if config.JourneyStore.Bucket == "" {
			return fmt.Errorf("bucket is required for %s journey store", config.JourneyStore.Type)
		}
	default:
		return fmt.Errorf("invalid journey store %q", config.JourneyStore.Type)
	}
	return nil
}

func Init(config *Configuration) error {
	if initiated {
		return fmt.Errorf("Config already initialized")
	}
	if err := loadEnvFile(); err != nil {
		return err
	}
	resolved, err := Load(config)
	if err != nil {
		return err
	}
	configuration = resolved
	initLogging()

	log.WithFields(log.Fields{
		"env":   configuration.Env,
		"store": configuration.JourneyStore.Type,
	}).Info("Config initialized.")

	initiated = true
	return nil
}

// GetCacheSize is the number of memoized results, 0 when caching is off.
func (config *Configuration) GetCacheSize() int {
	if config.CacheSize == nil {
		return 0
	}
	return *config.CacheSize
}

func (config *Configuration) ShouldDropCycles() bool {
	return config.DropCycles != nil && *config.DropCycles
}

func GetConfig() *Configuration {
	return configuration
}

func IsDevelopment() bool {
	return configuration != nil && strings.Compare(configuration.Env, DEVELOPMENT) == 0
}

// GetAttributionConfig is the calculator configuration for time decay.
func GetAttributionConfig() attribution.Config {
	if configuration == nil {
		return attribution.DefaultConfig()
	}
	return attribution.Config{
		DecayRatio:   configuration.DecayRatio,
		HalfLifeDays: configuration.HalfLifeDays,
	}
}
