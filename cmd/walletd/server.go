package main

import (
	log "github.com/ChainSafe/log15"
	"github.com/urfave/cli/v2"

	"github.com/evmlabs/walletd/config"
	"github.com/evmlabs/walletd/core"
	"github.com/evmlabs/walletd/internal/api"
	"github.com/evmlabs/walletd/internal/api/handler"
	"github.com/evmlabs/walletd/internal/evm"
	"github.com/evmlabs/walletd/internal/metrics"
	"github.com/evmlabs/walletd/internal/service"
	"github.com/evmlabs/walletd/internal/store"
	"github.com/evmlabs/walletd/pkg/redis"
	"github.com/evmlabs/walletd/pkg/util"
)

func server(ctx *cli.Context) error {
	err := startLogger(ctx)
	if err != nil {
		return err
	}
	log.Info("Starting walletd...")

	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	reg, err := config.Load(ctx.String(config.ConfigFileFlag.Name))
	if err != nil {
		return err
	}
	util.Init(env.Env, env.MonitorURL)

	port := env.Port
	if ctx.IsSet(config.PortFlag.Name) {
		port = ctx.Int(config.PortFlag.Name)
	}

	var cache service.BalanceCache
	if env.RedisURL != "" {
		redis.Init(env.RedisURL)
		cache = redis.NewCache()
	}

	db, err := store.New(ctx.Context, env, log.New("system", "store"))
	if err != nil {
		return err
	}
	defer db.Close()

	chain, err := evm.Dial(ctx.Context, reg.CurrentRPCURL(), reg.Offline(), log.New("system", "evm"))
	if err != nil {
		return err
	}
	defer chain.Close()

	assets := service.NewAsset(reg, log.New("system", "assets"))
	wallets := service.NewWallet(db.Wallets(), chain, cache, assets, reg.CurrentNetwork, log.New("system", "wallets"))
	txs := service.NewTx(db.Txs(), db.Wallets(), chain, assets, log.New("system", "txs"))

	h := handler.New(db, wallets, txs, assets, handler.Info{
		Title:       env.Title,
		Description: env.Description,
		Version:     env.Version,
		Env:         env.Env,
		Network:     reg.CurrentNetwork,
	}, log.New("system", "api"))

	withMetrics := ctx.Bool(config.MetricsFlag.Name)
	if withMetrics {
		metrics.ObservePool(db.Stat)
	}

	engine := api.NewRouter(h, log.New("system", "http"), api.Options{Metrics: withMetrics})

	sysErr := make(chan error)
	c := core.NewCore(sysErr)
	c.AddService(api.NewServer(engine, port, log.New("system", "api"), sysErr))
	c.Start()

	return nil
}
