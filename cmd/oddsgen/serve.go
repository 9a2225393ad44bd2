package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AttackingOrDefending/oddsgen/internal/health"
	"github.com/AttackingOrDefending/oddsgen/internal/metrics"
	"github.com/AttackingOrDefending/oddsgen/internal/scheduler"
	"github.com/AttackingOrDefending/oddsgen/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the metrics endpoint and the scheduled calibration sampler",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		metrics.InitRegistry()

		srv := health.NewServer(health.Config{
			ServiceName: cfg.App.Name,
			Version:     Version,
			Commit:      GitCommit,
			Address:     cfg.Metrics.Address,
			MetricsPath: cfg.Metrics.Path,
			Metrics:     metrics.Handler(),
			Logger:      appLogger,
		})
		if cfg.Metrics.Enabled {
			if err := srv.Start(ctx); err != nil {
				return err
			}
		}

		var sched *scheduler.Scheduler
		if cfg.Calibration.Enabled {
			svc := service.NewGeneratorService(cfg.Tunables, cfg.Generator.Seed, appLogger)
			sampler := service.NewCalibrationSampler(
				svc,
				cfg.Calibration.OpponentLadder,
				cfg.Calibration.SamplesPerRating,
				cfg.Calibration.InitialTimeSec,
				cfg.Calibration.IncrementSec,
				appLogger,
			)
			sched = scheduler.NewScheduler(sampler, appLogger)
			if err := sched.ScheduleCalibration(cfg.Calibration.Schedule); err != nil {
				return err
			}
			if err := sched.Start(); err != nil {
				return err
			}
		}

		srv.SetReady(true)
		appLogger.Info("oddsgen serving; press Ctrl-C to stop")

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		appLogger.Info("Shutting down")
		srv.SetReady(false)
		if sched != nil {
			if err := sched.Stop(); err != nil {
				appLogger.WithError(err).Warn("Scheduler shutdown error")
			}
		}
		cancel()
		return nil
	},
}
