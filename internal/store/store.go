package store

import (
	"context"
	"time"

	"github.com/ChainSafe/log15"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/puddle/v2"
	"github.com/pkg/errors"

	"github.com/evmlabs/walletd/config"
)

// Store owns the postgres connection pool and hands out repositories.
// Pool sizing and timeouts come from the environment.
type Store struct {
	pool    *pgxpool.Pool
	timeout time.Duration
	log     log15.Logger
}

// New connects, checks the server is reachable and ensures the schema.
func New(ctx context.Context, env *config.Env, logger log15.Logger) (*Store, error) {
	pc, err := pgxpool.ParseConfig(env.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "parse postgres dsn")
	}
	pc.MinConns = int32(env.PoolMinSize)
	pc.MaxConns = int32(env.PoolMaxSize)
	pc.MaxConnIdleTime = env.PoolIdleTime()
	pc.ConnConfig.ConnectTimeout = env.PoolAcquireTimeout()

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, errors.Wrap(err, "create pool")
	}

	s := &Store{pool: pool, timeout: env.PoolAcquireTimeout(), log: logger}

	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err = pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}
	if err = s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("connected to postgres", "host", env.PostgresHost, "db", env.PostgresDB,
		"poolMin", env.PoolMinSize, "poolMax", env.PoolMaxSize)
	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return errors.Wrap(err, "ensure schema")
	}
	return nil
}

// wrapErr wraps a repo failure, surfacing a closed pool as ErrNotReady.
func wrapErr(err error, msg string) error {
	if errors.Is(err, puddle.ErrClosedPool) {
		err = ErrNotReady
	}
	return errors.Wrap(err, msg)
}

// Healthy runs a round-trip query against the pool.
func (s *Store) Healthy(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var one int
	if err := s.pool.QueryRow(ctx, `SELECT 1`).Scan(&one); err != nil {
		return wrapErr(err, "health query")
	}
	return nil
}

// Stat exposes the pool counters.
func (s *Store) Stat() *pgxpool.Stat {
	return s.pool.Stat()
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Wallets() *WalletRepo {
	return &WalletRepo{pool: s.pool}
}

func (s *Store) Txs() *TxRepo {
	return &TxRepo{pool: s.pool}
}
