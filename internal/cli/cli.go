// Package cli implements the graphql-schema-utils command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/heneryville/graphql-schema-utils/internal/config"
	"github.com/heneryville/graphql-schema-utils/internal/eventbus"
	"github.com/heneryville/graphql-schema-utils/internal/logging"
	"github.com/heneryville/graphql-schema-utils/internal/otel"
	"github.com/heneryville/graphql-schema-utils/internal/pipeline"
)

const appName = "graphql-schema-utils"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		date = d
	}
}

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	verbose      bool
	configPath   string
	otelEndpoint string
	otelService  string

	cfg      config.Config
	bus      *eventbus.Bus
	pipeline *pipeline.Pipeline
	shutdown func(context.Context) error
}

// New creates a CLI that logs to w.
func New(w io.Writer, level log.Level) *CLI {
	bus := eventbus.New()
	return &CLI{
		Logger:   logging.New(w, level),
		cfg:      config.Default(),
		bus:      bus,
		pipeline: pipeline.New(bus),
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Compare and merge GraphQL schemas",
		Long: `graphql-schema-utils compares two versions of a GraphQL schema, classifying every
difference as breaking or backward compatible, and merges schemas into one.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.configPath, "config", "", "configuration file (default "+config.DefaultFile+" if present)")
	flags.StringVar(&c.otelEndpoint, "otel-endpoint", "", "OTLP collector endpoint; empty disables tracing")
	flags.StringVar(&c.otelService, "otel-service", "", "OpenTelemetry service name")

	root.AddCommand(c.diffCommand())
	root.AddCommand(c.mergeCommand())
	root.AddCommand(c.renderCommand())
	return root
}

// setup reads the configuration, applies flag overrides and wires tracing
// before any subcommand runs.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if c.verbose {
		c.Logger.SetLevel(LogDebug)
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("otel-endpoint") {
		cfg.Telemetry.Endpoint = c.otelEndpoint
	}
	if flags.Changed("otel-service") {
		cfg.Telemetry.Service = c.otelService
	}
	c.cfg = cfg

	shutdown, err := otel.Setup(c.bus, cfg.Telemetry.Endpoint, cfg.Telemetry.Service)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	c.shutdown = shutdown
	if cfg.Telemetry.Endpoint != "" {
		c.Logger.Debug("tracing enabled", "endpoint", cfg.Telemetry.Endpoint, "service", cfg.Telemetry.Service)
	}

	cmd.SetContext(logging.WithLogger(cmd.Context(), c.Logger))
	return nil
}

// Close flushes telemetry started by a command.
func (c *CLI) Close(ctx context.Context) error {
	if c.shutdown == nil {
		return nil
	}
	return c.shutdown(ctx)
}
