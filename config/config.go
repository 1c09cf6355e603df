package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	SourceFile  = "file"
	SourceKafka = "kafka"
)

// Config is the server's environment-driven configuration.
type Config struct {
	GRPCAddr    string `env:"GRPC_ADDR" envDefault:":50051"`
	MetricsAddr string `env:"METRICS_ADDR" envDefault:":9090"`
	MarketsFile string `env:"MARKETS_FILE" envDefault:"markets.json"`

	// Source selects where order events come from: segment files under
	// DataDir, or a Kafka topic.
	Source        string `env:"SOURCE" envDefault:"file"`
	DataDir       string `env:"DATA_DIR" envDefault:"data/node_order_statuses"`
	CheckpointDir string `env:"CHECKPOINT_DIR" envDefault:"data/checkpoints"`

	KafkaBrokers     []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaEventsTopic string   `env:"KAFKA_EVENTS_TOPIC" envDefault:"order-events"`
	KafkaGroupID     string   `env:"KAFKA_GROUP_ID" envDefault:"hp-node-stream"`

	// Mark price tuning.
	ImpactNotional  float64       `env:"IMPACT_NOTIONAL" envDefault:"10000"`
	EMAHalfLife     time.Duration `env:"EMA_HALF_LIFE" envDefault:"30s"`
	MaxDeviationBPS float64       `env:"MAX_DEVIATION_BPS" envDefault:"50"`

	// Optional cadenced mark-price publishing to Kafka.
	MarkPublish         bool          `env:"MARK_PUBLISH" envDefault:"false"`
	MarkPublishTopic    string        `env:"MARK_PUBLISH_TOPIC" envDefault:"mark-prices"`
	MarkPublishInterval time.Duration `env:"MARK_PUBLISH_INTERVAL" envDefault:"1s"`

	// Depth bounds on the RPC surface.
	MaxDepth int `env:"MAX_DEPTH" envDefault:"1000"`
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load() // missing .env is fine

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Source {
	case SourceFile:
	case SourceKafka:
		if len(c.KafkaBrokers) == 0 {
			return fmt.Errorf("SOURCE=kafka requires KAFKA_BROKERS")
		}
	default:
		return fmt.Errorf("unknown SOURCE %q (want %q or %q)", c.Source, SourceFile, SourceKafka)
	}
	if c.MarkPublish && len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("MARK_PUBLISH requires KAFKA_BROKERS")
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("MAX_DEPTH must be positive, got %d", c.MaxDepth)
	}
	if c.ImpactNotional <= 0 {
		return fmt.Errorf("IMPACT_NOTIONAL must be positive, got %v", c.ImpactNotional)
	}
	return nil
}
