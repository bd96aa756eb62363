package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Env is the runtime environment of the daemon. Everything operational,
// the service identity, the postgres pool and the optional redis/monitor
// endpoints, arrives through environment variables.
type Env struct {
	Env         string `env:"ENV" envDefault:"dev"`
	Port        int    `env:"PORT" envDefault:"8000"`
	Version     string `env:"VERSION" envDefault:"dev"`
	Title       string `env:"TITLE" envDefault:"walletd"`
	Description string `env:"DESCRIPTION" envDefault:"custodial EVM wallet service"`

	PostgresHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"walletd"`
	PostgresUser     string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`

	PoolMinSize int `env:"DB_POOL_MIN_SIZE" envDefault:"1"`
	PoolMaxSize int `env:"DB_POOL_MAX_SIZE" envDefault:"10"`
	PoolMaxIdle int `env:"DB_POOL_MAX_IDLE" envDefault:"300"`
	PoolTimeout int `env:"DB_POOL_TIMEOUT" envDefault:"30"`

	RedisURL         string `env:"REDIS_URL"`
	MonitorURL       string `env:"MONITOR_URL"`
	KeystorePassword string `env:"KEYSTORE_PASSWORD"`
}

// LoadEnv reads .env when present, then parses the process environment.
func LoadEnv() (*Env, error) {
	_ = godotenv.Load()

	e := &Env{}
	if err := env.Parse(e); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	if e.PoolMinSize < 0 || e.PoolMaxSize < 1 || e.PoolMinSize > e.PoolMaxSize {
		return nil, fmt.Errorf("invalid pool bounds, min %d max %d", e.PoolMinSize, e.PoolMaxSize)
	}
	if e.Port < 1 || e.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", e.Port)
	}
	return e, nil
}

// DSN builds the postgres connection string. Credentials go through
// url.UserPassword so reserved characters survive the round trip.
func (e *Env) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(e.PostgresUser, e.PostgresPassword),
		Host:   fmt.Sprintf("%s:%d", e.PostgresHost, e.PostgresPort),
		Path:   e.PostgresDB,
	}
	return u.String()
}

// PoolIdleTime is DB_POOL_MAX_IDLE as a duration.
func (e *Env) PoolIdleTime() time.Duration {
	return time.Duration(e.PoolMaxIdle) * time.Second
}

// PoolAcquireTimeout is DB_POOL_TIMEOUT as a duration.
func (e *Env) PoolAcquireTimeout() time.Duration {
	return time.Duration(e.PoolTimeout) * time.Second
}
