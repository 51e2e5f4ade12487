package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/danmuck/fixwire/internal/config"
	"github.com/danmuck/fixwire/internal/logging"
	"github.com/danmuck/fixwire/internal/messages"
	"github.com/danmuck/fixwire/internal/observability"
	"github.com/danmuck/fixwire/internal/protocol/catalog"
	"github.com/danmuck/fixwire/internal/protocol/frame"
	"github.com/spf13/cobra"
)

// app is the state shared by subcommands once the root has loaded config.
type app struct {
	configPath  string
	catalogPath string
	logLevel    string

	cfg     cliConfig
	catalog *catalog.Catalog
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "fixwirectl",
		Short:         "Encode and decode fixed-width positional messages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "fixwirectl config file (toml)")
	root.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "schema definition file (toml or yaml), overrides config")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level, overrides config")

	root.AddCommand(
		newListCommand(a),
		newSchemaCommand(a),
		newEncodeCommand(a),
		newDecodeCommand(a),
	)
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := loadCLIConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.catalogPath != "" {
		cfg.Catalog = a.catalogPath
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if cfg.LogLevel != "" && !logging.SetLevel(cfg.LogLevel) {
		return fmt.Errorf("unknown log level: %q", cfg.LogLevel)
	}
	a.cfg = cfg
	logger := observability.Component("fixwirectl")

	c, err := catalog.New(messages.All()...)
	if err != nil {
		return err
	}
	if cfg.Catalog != "" {
		loaded, err := config.LoadCatalog(cfg.Catalog)
		if err != nil {
			return err
		}
		for _, name := range c.Override(loaded) {
			logger.Warn().Str("schema", name).Str("catalog", cfg.Catalog).Msg("catalog file replaces built-in schema")
		}
	}
	a.catalog = c

	if cfg.MetricsAddr != "" {
		a.serveMetrics(cfg.MetricsAddr)
	}
	logger.Debug().
		Str("command", cmd.Name()).
		Strs("schemas", c.Names()).
		Msg("config loaded")
	return nil
}

func (a *app) serveMetrics(addr string) {
	logger := observability.Component("metrics")
	mux := http.NewServeMux()
	mux.Handle("/metrics", observability.Handler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Str("addr", addr).Msg("metrics listener stopped")
		}
	}()
	logger.Info().Str("addr", addr).Msg("serving metrics")
}

func (a *app) frameOptions() frame.Options {
	return frame.Options{Terminator: []byte(a.cfg.Terminator)}
}
