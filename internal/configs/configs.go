package configs

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPAddr           string   `env:"HTTP_ADDR" envDefault:":8081"`
	CorsAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	KafkaEnabled       bool   `env:"KAFKA_ENABLED" envDefault:"true"`
	KafkaBrokers       string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	KafkaEventsTopic   string `env:"KAFKA_EVENTS_TOPIC" envDefault:"order-events"`
	KafkaCommandsTopic string `env:"KAFKA_COMMANDS_TOPIC" envDefault:"order-status-commands"`
	KafkaDLQTopic      string `env:"KAFKA_DLQ_TOPIC" envDefault:"order-status-commands.dlq"`
	KafkaGroupID       string `env:"KAFKA_GROUP_ID" envDefault:"order-review-svc"`

	CommandJSONPath string `env:"COMMAND_JSON_PATH" envDefault:"web/status_command.json"`
	// bearer token of the customer the CLI acts for, as returned by the login endpoint
	CommandToken string `env:"COMMAND_TOKEN"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"change-me"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	// CacheTTL of zero disables the restaurant and menu cache.
	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	CacheShards int           `env:"CACHE_SHARDS" envDefault:"16"`

	TracingEnabled bool   `env:"TRACING_ENABLED" envDefault:"false"`
	JaegerEndpoint string `env:"JAEGER_ENDPOINT" envDefault:"http://localhost:14268/api/traces"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	DatabaseURL     string `env:"DATABASE_URL" envDefault:""`
	PostgresHost    string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort    string `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser    string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPass    string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB      string `env:"POSTGRES_DB" envDefault:"orders"`
	PostgresSSLMode string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	if c.CacheShards <= 0 {
		return Config{}, fmt.Errorf("config parse: CACHE_SHARDS must be positive, got %d", c.CacheShards)
	}
	return c, nil
}

func (c Config) KafkaBrokersSlice() []string {
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// PgDSN prefers DATABASE_URL and otherwise builds a URL from the POSTGRES_* keys.
// Credentials are percent-encoded.
func (c Config) PgDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUser, c.PostgresPass),
		Host:     net.JoinHostPort(c.PostgresHost, c.PostgresPort),
		Path:     "/" + c.PostgresDB,
		RawQuery: url.Values{"sslmode": {c.PostgresSSLMode}}.Encode(),
	}
	return u.String()
}

// SetupLogger configures the package-level logrus logger.
func (c Config) SetupLogger() error {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stdout)
	if strings.EqualFold(c.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}
