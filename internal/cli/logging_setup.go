package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/ohmtools/ohmoracle/internal/config"
	"github.com/ohmtools/ohmoracle/internal/logging"
)

// configCtxKey carries the loaded *config.Config on the command context.
type configCtxKey struct{}

// setupLogging loads configuration and builds the root logger from config
// file, environment, and CLI flags, in rising precedence. The resulting
// context carries the logger, a trace ID, and the config for subcommands.
func setupLogging(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(os.LookupEnv)

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	if format, _ := cmd.Flags().GetString("log-format"); format != "" {
		cfg.Logging.Format = format
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Logging.Level = "debug"
		cfg.Logging.Format = logging.FormatConsole
	}

	root := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}, cmd.ErrOrStderr())
	logger = logging.ComponentLogger(root, "cli")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	ctx = context.WithValue(ctx, configCtxKey{}, cfg)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).Str("command", cmd.Name()).Str("trace_id", traceID).Msg("command started")

	return nil
}

// loadConfig reads the config file named by --config, or the default
// location when the flag is unset.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// configFromContext returns the config attached by setupLogging, falling
// back to defaults so commands stay usable in tests that skip the root.
func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configCtxKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}
