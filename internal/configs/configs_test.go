package configs

import (
	"net/url"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, ":8081", cfg.HTTPAddr)
	require.Equal(t, 24*time.Hour, cfg.JWTTTL)
	require.Equal(t, []string{"*"}, cfg.CorsAllowedOrigins)
	require.True(t, cfg.KafkaEnabled)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("CACHE_TTL", "0s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokersSlice())
	require.Zero(t, cfg.CacheTTL)
	require.Len(t, cfg.CorsAllowedOrigins, 2)
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	t.Setenv("CACHE_SHARDS", "0")
	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("CACHE_SHARDS", "8")
	t.Setenv("JWT_TTL", "forever")
	_, err = LoadConfig()
	require.Error(t, err)
}

func TestPgDSN(t *testing.T) {
	cfg := Config{
		PostgresUser: "app", PostgresPass: "pw", PostgresHost: "db",
		PostgresPort: "5432", PostgresDB: "orders", PostgresSSLMode: "disable",
	}
	require.Equal(t, "postgres://app:pw@db:5432/orders?sslmode=disable", cfg.PgDSN())

	cfg.PostgresPass = "p@ss/w:rd?"
	dsn := cfg.PgDSN()
	require.Equal(t, "postgres://app:p%40ss%2Fw%3Ard%3F@db:5432/orders?sslmode=disable", dsn)
	u, err := url.Parse(dsn)
	require.NoError(t, err)
	pass, _ := u.User.Password()
	require.Equal(t, "p@ss/w:rd?", pass)
	require.Equal(t, "db:5432", u.Host)

	cfg.DatabaseURL = "postgres://override"
	require.Equal(t, "postgres://override", cfg.PgDSN())
}

func TestSetupLogger(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	require.NoError(t, Config{LogLevel: "debug", LogFormat: "json"}.SetupLogger())
	require.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	require.Error(t, Config{LogLevel: "loud"}.SetupLogger())
}
