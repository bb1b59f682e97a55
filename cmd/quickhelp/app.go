package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"quickhelp/internal/api"
	"quickhelp/internal/config"
	"quickhelp/internal/controller"
	"quickhelp/internal/logger"
	"quickhelp/internal/telemetry"
)

// errOperationFailed ends a one-shot command whose result was an error
// block. The block itself has already been printed.
var errOperationFailed = errors.New("operation failed")

func newApp() *cli.App {
	return &cli.App{
		Name:  "quickhelp",
		Usage: "search, ask and cluster a QuickHelp knowledge base",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to quickhelp.yaml"},
			&cli.StringFlag{Name: "backend", Aliases: []string{"b"}, Usage: "backend base URL"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "env", Usage: "local, dev, test or prod"},
		},
		Action: tuiAction,
		Commands: []*cli.Command{
			{
				Name:   "tui",
				Usage:  "run the terminal UI (default)",
				Action: tuiAction,
			},
			{
				Name:  "serve",
				Usage: "serve the web UI",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Usage: "listen address (default from config)"},
				},
				Action: serveAction,
			},
			{
				Name:      "search",
				Usage:     "search the knowledge base",
				ArgsUsage: "QUERY",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Usage: "keyword, semantic or hybrid"},
					&cli.IntFlag{Name: "max-results", Aliases: []string{"n"}, Usage: "maximum number of results"},
				},
				Action: searchAction,
			},
			{
				Name:      "ask",
				Usage:     "ask a question",
				ArgsUsage: "QUESTION",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Usage: "retrieval mode"},
				},
				Action: askAction,
			},
			{
				Name:  "cluster",
				Usage: "cluster the knowledge base",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "algorithm", Aliases: []string{"a"}, Usage: "hdbscan, kmeans or hierarchical"},
				},
				Action: clusterAction,
			},
			{
				Name:   "clusters",
				Usage:  "show the saved clusters",
				Action: clustersAction,
			},
			{
				Name:  "index",
				Usage: "index documents under a path",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "document directory (default from config)"},
				},
				Action: indexAction,
			},
			{
				Name:   "stats",
				Usage:  "show knowledge base statistics",
				Action: statsAction,
			},
		},
	}
}

// runtime is what every command shares once flags and config are resolved.
type runtime struct {
	cfg       config.Config
	logger    *zap.Logger
	client    *api.Client
	telemetry *telemetry.Provider
}

// setup loads config, applies global flags, and builds the logger and
// backend client. With logToFile set, logs go to logging.file.
func setup(c *cli.Context, logToFile bool) (*runtime, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if v := c.String("backend"); v != "" {
		cfg.Backend.URL = v
	}
	if v := c.String("log-level"); v != "" {
		cfg.Logging.Level = v
	}
	if v := c.String("env"); v != "" {
		cfg.Env = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	logOpts := logger.Options{Env: cfg.Env, Level: cfg.Logging.Level}
	if logToFile {
		logOpts.File = cfg.Logging.File
	} else if logOpts.Level == "" {
		// Keep one-shot output readable.
		logOpts.Level = "warn"
	}
	l, err := logger.New(logOpts)
	if err != nil {
		return nil, err
	}

	tp, err := telemetry.Setup(c.Context)
	if err != nil {
		l.Warn("tracing disabled", zap.Error(err))
	}

	// backend.timeout is enforced per operation by the controller.
	client, err := api.New(cfg.Backend.URL, api.WithLogger(l.Named("api")))
	if err != nil {
		return nil, err
	}

	return &runtime{cfg: cfg, logger: l, client: client, telemetry: tp}, nil
}

func (rt *runtime) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rt.telemetry.Shutdown(ctx); err != nil {
		rt.logger.Warn("flush traces", zap.Error(err))
	}
	_ = rt.logger.Sync()
}

func (rt *runtime) controllerOptions() controller.Options {
	return controller.Options{
		MaxResults: rt.cfg.UI.MaxResults,
		AskMode:    rt.cfg.UI.AskMode,
		Timeout:    rt.cfg.Backend.Timeout,
		Logger:     rt.logger.Named("controller"),
	}
}
