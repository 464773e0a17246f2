package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database    *dbConfig
	Service     *svcConfig
	Engine      *engineConfig
	Calibration *calibrationConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"pgsql"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"slope_monitor"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address         string `envconfig:"SLOPE_MONITOR_ADDRESS" default:":3443"`
	MetricsAddress  string `envconfig:"SLOPE_MONITOR_METRICS_ADDRESS" default:":8080"`
	BaseUrl         string `envconfig:"SLOPE_MONITOR_BASE_URL" default:"https://localhost:3443"`
	LogLevel        string `envconfig:"SLOPE_MONITOR_LOG_LEVEL" default:"info"`
	MigrationFolder string `envconfig:"SLOPE_MONITOR_MIGRATIONS_FOLDER" default:""`
}

type engineConfig struct {
	URL     string        `envconfig:"SLOPE_MONITOR_ENGINE_URL" default:"http://localhost:8090"`
	Timeout time.Duration `envconfig:"SLOPE_MONITOR_ENGINE_TIMEOUT" default:"120s"`
}

// calibrationConfig carries the initial guesses seeded into the engine's
// best-fit operation in automatic calibration mode. The defaults are the
// values the legacy engine was tuned to converge with.
type calibrationConfig struct {
	InitialDecay       float64 `envconfig:"SLOPE_MONITOR_CALIBRATION_KT_INIT" default:"2.9"`
	InitialCoefficient float64 `envconfig:"SLOPE_MONITOR_CALIBRATION_AN_INIT" default:"0.27"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}

// NewDefault returns a configuration populated only with defaults,
// ignoring the environment. Used by tests.
func NewDefault() *Config {
	return &Config{
		Database: &dbConfig{
			Type:     "pgsql",
			Hostname: "localhost",
			Port:     "5432",
			Name:     "slope_monitor",
			User:     "admin",
			Password: "adminpass",
		},
		Service: &svcConfig{
			Address:        ":3443",
			MetricsAddress: ":8080",
			LogLevel:       "info",
		},
		Engine: &engineConfig{
			URL:     "http://localhost:8090",
			Timeout: 120 * time.Second,
		},
		Calibration: &calibrationConfig{
			InitialDecay:       2.9,
			InitialCoefficient: 0.27,
		},
	}
}
