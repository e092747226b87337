// Package config loads process settings from the environment.
package config

import (
	"fmt"
	"math/big"
	"time"

	"github.com/superfluid-finance/web3-hooks/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Checkpoint backends.
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendPebble   = "pebble"
)

// Wei is a token amount in wei. It decodes from a base-10 environment value.
type Wei struct {
	*big.Int
}

// Decode implements envconfig.Decoder.
func (w *Wei) Decode(value string) error {
	n, ok := new(big.Int).SetString(value, 10)
	if !ok || n.Sign() < 0 {
		return fmt.Errorf("invalid wei amount %q", value)
	}
	w.Int = n
	return nil
}

type Config struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	OtelEnabled bool   `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"web3-hooks" validate:"required"`

	// NetworksFile replaces the embedded network catalog when set.
	NetworksFile string `envconfig:"NETWORKS_FILE"`

	CheckpointBackend    string `envconfig:"CHECKPOINT_BACKEND" default:"file" validate:"oneof=file redis postgres pebble"`
	CheckpointDir        string `envconfig:"CHECKPOINT_DIR" default:"."`
	CheckpointPebblePath string `envconfig:"CHECKPOINT_PEBBLE_PATH" default:"checkpoints.pebble"`

	RedisAddr     string `envconfig:"REDIS_ADDR" validate:"required_if=CheckpointBackend redis"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"min=0"`

	PostgresDSN string `envconfig:"POSTGRES_DSN" validate:"required_if=CheckpointBackend postgres"`

	// SlackWebhookURL is the incoming webhook notifications are posted to.
	// Messages are only logged when it is empty.
	SlackWebhookURL string `envconfig:"SLACK_WEBHOOK_URL" validate:"omitempty,url"`

	MinAmount     Wei           `envconfig:"MIN_AMOUNT" default:"100000000000000000000"`
	QueueDelay    time.Duration `envconfig:"QUEUE_DELAY" default:"30s" validate:"min=0"`
	QueueInterval time.Duration `envconfig:"QUEUE_INTERVAL" default:"1s" validate:"gt=0"`

	Port int `envconfig:"PORT" default:"3000" validate:"min=1,max=65535"`
}

// Addr returns the listen address of the webhook server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}
