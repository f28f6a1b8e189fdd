// Package config loads the process configuration from ORIGINTRACE_*
// environment variables.
package config

import (
	"time"

	"github.com/gabapcia/origintrace/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix of every setting.
const Prefix = "ORIGINTRACE"

// Storage drivers.
const (
	StorageNone    = "none"
	StorageRedis   = "redis"
	StorageLevelDB = "leveldb"
)

// DefaultCustodian is the Tokhun marketplace contract.
const DefaultCustodian = "addr1wyl5fauf4m4thqze74kvxk8efcj4n7qjx005v33ympj7uwsscprfk"

type (
	// Blockfrost configures the ledger API.
	Blockfrost struct {
		URL               string  `envconfig:"URL" default:"https://cardano-mainnet.blockfrost.io/api/v0" validate:"required,url"`
		ProjectID         string  `envconfig:"PROJECT_ID"`
		RequestsPerSecond float64 `envconfig:"RPS" default:"10" validate:"gt=0"`
		Burst             int     `envconfig:"BURST" default:"10" validate:"gte=1"`
	}

	// HTTP configures the outbound HTTP client.
	HTTP struct {
		Timeout      time.Duration `envconfig:"TIMEOUT" default:"10s"`
		RetryMax     int           `envconfig:"RETRY_MAX" default:"4" validate:"gte=0"`
		RetryWaitMin time.Duration `envconfig:"RETRY_WAIT_MIN" default:"1s"`
		RetryWaitMax time.Duration `envconfig:"RETRY_WAIT_MAX" default:"30s"`
		LogRequests  bool          `envconfig:"LOG_REQUESTS" default:"false"`
	}

	// Redis configures the redis storage driver.
	Redis struct {
		Addr      string `envconfig:"ADDR" default:"localhost:6379"`
		Username  string `envconfig:"ACL_USER"`
		Password  string `envconfig:"ACL_PASSWORD"`
		DB        int    `envconfig:"DB_INDEX" default:"0" validate:"gte=0"`
		Namespace string `envconfig:"NAMESPACE" default:"origintrace"`
	}

	// LevelDB configures the leveldb storage driver.
	LevelDB struct {
		Path string `envconfig:"DATA_DIR" default:".origintrace"`
	}

	// Telemetry configures OpenTelemetry export.
	Telemetry struct {
		Enabled        bool          `envconfig:"ENABLED" default:"false"`
		ServiceName    string        `envconfig:"SERVICE_NAME" default:"origintrace" validate:"required"`
		MetricInterval time.Duration `envconfig:"METRIC_INTERVAL" default:"60s" validate:"gt=0"`
		SampleRatio    float64       `envconfig:"SAMPLE_RATIO" default:"1" validate:"gte=0,lte=1"`
	}

	// Trace configures the tracer defaults.
	Trace struct {
		Custodian     string `envconfig:"CUSTODIAN" default:"addr1wyl5fauf4m4thqze74kvxk8efcj4n7qjx005v33ympj7uwsscprfk"`
		ReturnLabel   string `envconfig:"RETURN_LABEL" default:"Withdraw"`
		TransferLabel string `envconfig:"TRANSFER_LABEL" default:"Sold"`
		Concurrency   int    `envconfig:"CONCURRENCY" default:"4" validate:"gte=1"`
	}

	// Config is the whole process configuration.
	//
	// envconfig falls back to the bare tag name when the prefixed variable is
	// unset, so tags avoid names such as PATH or USER.
	Config struct {
		LogLevel   string     `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
		Storage    string     `envconfig:"STORAGE" default:"none" validate:"oneof=none redis leveldb"`
		Blockfrost Blockfrost `envconfig:"BLOCKFROST"`
		HTTP       HTTP       `envconfig:"HTTP"`
		Redis      Redis      `envconfig:"REDIS"`
		LevelDB    LevelDB    `envconfig:"LEVELDB"`
		Telemetry  Telemetry  `envconfig:"OTEL"`
		Trace      Trace      `envconfig:"TRACE"`
	}
)

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, validator.Validate(cfg)
}
