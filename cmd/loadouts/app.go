package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/prayer-loadouts/internal/clients/clipboard"
	"github.com/KirkDiggler/prayer-loadouts/internal/config"
	"github.com/KirkDiggler/prayer-loadouts/internal/configstore"
	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
	"github.com/KirkDiggler/prayer-loadouts/internal/executor"
	"github.com/KirkDiggler/prayer-loadouts/internal/handlers/plugin"
	"github.com/KirkDiggler/prayer-loadouts/internal/host"
	"github.com/KirkDiggler/prayer-loadouts/internal/orchestrators/exchange"
	loadoutorch "github.com/KirkDiggler/prayer-loadouts/internal/orchestrators/loadout"
	"github.com/KirkDiggler/prayer-loadouts/internal/redis"
	"github.com/KirkDiggler/prayer-loadouts/internal/repositories/loadouts"
)

// app is the wired stack for one command
type app struct {
	cfg       *config.Config
	state     *host.StoreState
	loop      *executor.Loop
	clipboard clipboard.Client
	repo      loadouts.Repository
	loadouts  loadoutorch.Service
	handler   *plugin.Handler
	closers   []func() error
}

// withApp wires the stack, runs fn and tears the stack down
func withApp(fn func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.close()

		return fn(ctx, cmd, a, args)
	}
}

func newApp(ctx context.Context, cfg *config.Config) (_ *app, err error) {
	a := &app{cfg: cfg}
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	store, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}

	a.repo, err = loadouts.NewFlatKeyRepository(&loadouts.Config{
		Store: store,
		Group: cfg.Groups.Loadouts,
	})
	if err != nil {
		return nil, err
	}

	a.state, err = host.NewStoreState(&host.StoreStateConfig{
		Store:       store,
		PrayerGroup: cfg.Groups.Prayer,
		VarbitGroup: cfg.Groups.Varbits,
		ClientGroup: cfg.Groups.Client,
		OnRedraw: func(ctx context.Context) {
			slog.DebugContext(ctx, "prayer widgets redrawn")
		},
	})
	if err != nil {
		return nil, err
	}

	a.loop, err = executor.NewLoop(&executor.LoopConfig{
		QueueSize:    cfg.Executor.QueueSize,
		AwaitTimeout: cfg.Executor.AwaitTimeout,
	})
	if err != nil {
		return nil, err
	}
	a.loop.Start(ctx)

	a.clipboard, err = clipboard.New(&clipboard.Config{Memory: cfg.Clipboard.Memory})
	if errors.IsUnavailable(err) {
		slog.WarnContext(ctx, "system clipboard unavailable, using an in-memory buffer", "error", err)
		a.clipboard, err = clipboard.NewBuffer(""), nil
	}
	if err != nil {
		return nil, err
	}

	a.loadouts, err = loadoutorch.NewOrchestrator(&loadoutorch.Config{
		Repository: a.repo,
		State:      a.state,
		Executor:   a.loop,
	})
	if err != nil {
		return nil, err
	}

	exch, err := exchange.NewOrchestrator(&exchange.Config{
		Repository: a.repo,
		Clipboard:  a.clipboard,
	})
	if err != nil {
		return nil, err
	}

	a.handler, err = plugin.NewHandler(&plugin.HandlerConfig{
		Loadouts:      a.loadouts,
		Exchange:      exch,
		State:         a.state,
		Executor:      a.loop,
		Panel:         plugin.PanelFunc(refreshPanel),
		AutoLoadDelay: cfg.Plugin.AutoLoadDelay,
	})
	if err != nil {
		return nil, err
	}

	if err := a.handler.Startup(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *app) openStore(ctx context.Context) (configstore.Store, error) {
	switch a.cfg.Store.Backend {
	case config.BackendRedis:
		rc := a.cfg.Store.Redis
		client, err := redis.NewClient(rc.Endpoint, &redis.Options{
			PoolSize:   rc.PoolSize,
			MaxRetries: rc.MaxRetries,
			UseTLS:     rc.UseTLS,
			DB:         rc.DB,
		})
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
		}
		a.closers = append(a.closers, client.Close)

		if err := redis.Ping(ctx, client, rc.PingTimeout); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
		}
		slog.DebugContext(ctx, "connected to redis", "endpoint", rc.Endpoint)

		return configstore.NewRedisStore(&configstore.RedisConfig{Client: client})
	case config.BackendSQLite:
		store, err := configstore.NewSQLiteStore(ctx, &configstore.SQLiteConfig{Path: a.cfg.Store.SQLite.Path})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store.Close)
		slog.DebugContext(ctx, "opened sqlite store", "path", a.cfg.Store.SQLite.Path)

		return store, nil
	default:
		return nil, errors.InvalidArgumentf("unknown store backend %q", a.cfg.Store.Backend)
	}
}

func (a *app) close() {
	if a.handler != nil {
		a.handler.Shutdown()
	}
	if a.loop != nil {
		a.loop.Stop()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("failed to close store", "error", err)
		}
	}
}

func refreshPanel(ctx context.Context) {
	slog.DebugContext(ctx, "loadouts panel refreshed")
}
