package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"SignalWatch/internal/chart"
	"SignalWatch/internal/collector"
	"SignalWatch/internal/config"
	"SignalWatch/internal/console"
	"SignalWatch/internal/display"
	"SignalWatch/internal/logger"
	"SignalWatch/internal/scheduler"
)

var version = "dev"

// app is everything a command needs once config is loaded.
type app struct {
	cfg       *config.Config
	collector *collector.Collector
	renderer  *chart.TerminalRenderer
	console   *display.Console
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		debug   bool
	)

	rootCmd := &cobra.Command{
		Use:   "signalwatch",
		Short: "Real-time stock technical analysis in the terminal",
		Long: `SignalWatch fetches price history for a list of tickers, computes EMA, MACD,
RSI and Bollinger Band indicators, flags buy and sell signals and draws an
annotated chart for each ticker, repeating on a fixed refresh interval.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cfgPath, debug)
			if err != nil {
				return err
			}
			prompter := console.NewSurveyPrompter(a.cfg.Defaults.Tickers, a.cfg.Defaults.IntervalSeconds, nil)
			session := scheduler.NewSession(a.collector, a.renderer, a.console, prompter)
			return session.Run(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Configuration file path (default $CONFIG_PATH or configs/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newAnalyzeCmd(&cfgPath, &debug))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newAnalyzeCmd(cfgPath *string, debug *bool) *cobra.Command {
	var zoomStart, zoomEnd string

	cmd := &cobra.Command{
		Use:   "analyze TICKERS",
		Short: "Run one analysis cycle for comma-separated tickers",
		Long: `Run a single, non-interactive analysis cycle.
Example: signalwatch analyze AAPL,MSFT --zoom-start 2024-01-01 --zoom-end 2024-03-31`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tickers, err := console.ParseTickers(args[0])
			if err != nil {
				return err
			}
			zoom, err := console.ParseZoomRange(zoomStart, zoomEnd)
			if err != nil {
				return err
			}
			a, err := setup(*cfgPath, *debug)
			if err != nil {
				return err
			}
			session := scheduler.NewSession(a.collector, a.renderer, a.console, nil)
			res := session.RunCycle(cmd.Context(), tickers, zoom)
			if res.Analyzed == 0 {
				return fmt.Errorf("no ticker could be analyzed (%d failed)", res.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&zoomStart, "zoom-start", "", "Zoom start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&zoomEnd, "zoom-end", "", "Zoom end date (YYYY-MM-DD)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "signalwatch %s\n", version)
		},
	}
}

// setup loads config, installs the logger and wires the pipeline.
func setup(cfgPath string, debug bool) (*app, error) {
	if cfgPath == "" {
		cfgPath = config.DefaultPath
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			cfgPath = v
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	level := cfg.Log.Level
	if debug {
		level = "debug"
	}
	logger.New(os.Stderr, level)
	log.Info("signalwatch starting", "version", version, "config", cfgPath)

	if !collector.ValidInterval(cfg.DataSource.Interval) {
		return nil, fmt.Errorf("data_source.interval %q is not a supported bar size", cfg.DataSource.Interval)
	}
	if _, err := collector.PeriodStart(cfg.DataSource.Period, time.Now()); err != nil {
		return nil, fmt.Errorf("data_source.period: %w", err)
	}

	fetcher, err := collector.NewFetcher(cfg.DataSource.Provider, collector.Options{
		BaseURL: cfg.DataSource.BaseURL,
		APIKey:  cfg.DataSource.APIKey,
		Proxy:   cfg.Proxy,
		Timeout: time.Duration(cfg.DataSource.TimeoutSeconds) * time.Second,
		Retries: cfg.DataSource.Retries,
	})
	if err != nil {
		return nil, fmt.Errorf("init data source: %w", err)
	}
	log.Info("data source ready", "provider", fetcher.Name(),
		"period", cfg.DataSource.Period, "interval", cfg.DataSource.Interval)

	return &app{
		cfg:       cfg,
		collector: collector.New(fetcher, cfg.DataSource.Period, cfg.DataSource.Interval),
		renderer:  chart.NewTerminalRenderer(cfg.Chart.Width, cfg.Chart.Height),
		console:   display.NewConsole(os.Stdout),
	}, nil
}
