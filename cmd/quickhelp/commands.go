package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"quickhelp/internal/controller"
	"quickhelp/internal/render"
	"quickhelp/internal/ui"
	"quickhelp/internal/web"
)

func tuiAction(c *cli.Context) error {
	if c.Args().Present() {
		return fmt.Errorf("unknown command %q", c.Args().First())
	}
	rt, err := setup(c, true)
	if err != nil {
		return err
	}
	defer rt.close()

	rt.logger.Info("starting terminal ui", zap.String("backend", rt.client.BaseURL()))
	state := controller.NewViewState(rt.cfg.InitialTab())
	ctrl := controller.New(rt.client, state, rt.controllerOptions())
	m := ui.NewAppModel(c.Context, ctrl, state, ui.Options{
		Panels: ui.PanelOptions{
			Modes:      rt.cfg.UI.Modes,
			SearchMode: rt.cfg.UI.SearchMode,
			Algorithms: rt.cfg.UI.Algorithms,
			Algorithm:  rt.cfg.UI.Algorithm,
			IndexPath:  rt.cfg.UI.IndexPath,
		},
		Logger: rt.logger.Named("ui"),
	})
	return ui.Run(c.Context, m)
}

func serveAction(c *cli.Context) error {
	rt, err := setup(c, false)
	if err != nil {
		return err
	}
	defer rt.close()

	addr := rt.cfg.Server.Addr
	if v := c.String("addr"); v != "" {
		addr = v
	}
	rt.logger.Info("Starting QuickHelp web UI",
		zap.String("env", rt.cfg.Env),
		zap.String("backend", rt.client.BaseURL()),
		zap.Bool("tracing", rt.telemetry.Enabled()),
	)

	srv := web.NewServer(rt.client, web.Options{
		InitialTab: rt.cfg.InitialTab(),
		Controller: rt.controllerOptions(),
		Form: web.FormDefaults{
			Modes:      rt.cfg.UI.Modes,
			SearchMode: rt.cfg.UI.SearchMode,
			Algorithms: rt.cfg.UI.Algorithms,
			Algorithm:  rt.cfg.UI.Algorithm,
			IndexPath:  rt.cfg.UI.IndexPath,
		},
		CORSOrigins: rt.cfg.Server.CORSOrigins,
		Logger:      rt.logger,
	})
	return srv.ListenAndServe(c.Context, web.ServeConfig{
		Addr:            addr,
		ReadTimeout:     time.Duration(rt.cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout:    time.Duration(rt.cfg.Server.WriteTimeoutSec) * time.Second,
		ShutdownTimeout: time.Duration(rt.cfg.Server.ShutdownSec) * time.Second,
	})
}

func searchAction(c *cli.Context) error {
	tune := func(opts *controller.Options) {
		if n := c.Int("max-results"); n > 0 {
			opts.MaxResults = n
		}
	}
	return runOnce(c, controller.TabSearch, tune, func(ctx context.Context, rt *runtime, ctrl *controller.Controller) controller.Outcome {
		query := strings.Join(c.Args().Slice(), " ")
		return ctrl.Search(ctx, query, stringOr(c.String("mode"), rt.cfg.UI.SearchMode))
	})
}

func askAction(c *cli.Context) error {
	tune := func(opts *controller.Options) {
		opts.AskMode = stringOr(c.String("mode"), opts.AskMode)
	}
	return runOnce(c, controller.TabAsk, tune, func(ctx context.Context, _ *runtime, ctrl *controller.Controller) controller.Outcome {
		return ctrl.Ask(ctx, strings.Join(c.Args().Slice(), " "))
	})
}

func clusterAction(c *cli.Context) error {
	return runOnce(c, controller.TabCluster, nil, func(ctx context.Context, rt *runtime, ctrl *controller.Controller) controller.Outcome {
		return ctrl.RunClustering(ctx, stringOr(c.String("algorithm"), rt.cfg.UI.Algorithm))
	})
}

func clustersAction(c *cli.Context) error {
	return runOnce(c, controller.TabCluster, nil, func(ctx context.Context, _ *runtime, ctrl *controller.Controller) controller.Outcome {
		outcome := ctrl.LoadClusters(ctx)
		if outcome == controller.OutcomeError {
			// LoadClusters only logs transport failures.
			ctrl.Surface().Render(controller.TargetClusterResults, controller.ErrorMessage("Could not load saved clusters"))
		}
		return outcome
	})
}

func indexAction(c *cli.Context) error {
	return runOnce(c, controller.TabIndex, nil, func(ctx context.Context, rt *runtime, ctrl *controller.Controller) controller.Outcome {
		return ctrl.Index(ctx, stringOr(c.String("path"), rt.cfg.UI.IndexPath))
	})
}

func statsAction(c *cli.Context) error {
	rt, err := setup(c, false)
	if err != nil {
		return err
	}
	defer rt.close()

	state := controller.NewViewState(controller.TabSearch)
	ctrl := controller.New(rt.client, state, rt.controllerOptions())
	ctrl.LoadStats(c.Context)
	snap := state.Snapshot()

	term := render.Terminal{}
	if !snap.HasCounters {
		fmt.Fprintln(c.App.Writer, term.Render(controller.ErrorMessage("Could not load statistics")))
		return errOperationFailed
	}
	fmt.Fprintln(c.App.Writer, term.Counters(snap.Counters, true))
	return nil
}

// operation runs one controller call for a one-shot command.
type operation func(ctx context.Context, rt *runtime, ctrl *controller.Controller) controller.Outcome

// runOnce runs op against a fresh view state and prints what it rendered
// into the tab's container. tune, when set, adjusts the controller options.
func runOnce(c *cli.Context, tab controller.Tab, tune func(*controller.Options), op operation) error {
	rt, err := setup(c, false)
	if err != nil {
		return err
	}
	defer rt.close()

	opts := rt.controllerOptions()
	if tune != nil {
		tune(&opts)
	}
	state := controller.NewViewState(tab)
	ctrl := controller.New(rt.client, state, opts)
	outcome := op(c.Context, rt, ctrl)
	snap := state.Snapshot()

	term := render.Terminal{}
	if content := snap.Content(controller.TargetFor(tab)); content != nil {
		fmt.Fprintln(c.App.Writer, term.Render(content))
	}
	if snap.HasCounters {
		fmt.Fprintln(c.App.Writer, term.Counters(snap.Counters, true))
	}
	if outcome.Failed() {
		return errOperationFailed
	}
	return nil
}

func stringOr(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
