package cli

import (
	"context"
	"io"
	"log/slog"

	"bank-account-cli/internal/config"
	"bank-account-cli/internal/console"
	apperrors "bank-account-cli/internal/errors"
	"bank-account-cli/internal/models"
	"bank-account-cli/internal/services"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// Options holds the command line overrides for the environment configuration
type Options struct {
	EnvFile   string
	LogLevel  string
	LogFormat string
	Seed      int64
}

// NewRootCmd creates the bankcli command. The interactive session is its Run;
// stdin, stdout and stderr come from the command's In, Out and Err streams.
func NewRootCmd() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "bankcli",
		Short: "Interactive single-account bank console",
		Long: `bankcli opens one in-memory bank account and offers a menu to deposit,
withdraw, check the balance and close the account. Nothing is persisted.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runSession(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.EnvFile, "env-file", "", "env file to load (default is .env when present)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn or error (overrides LOG_LEVEL)")
	flags.StringVar(&opts.LogFormat, "log-format", "", "log format: text or json (overrides LOG_FORMAT)")
	flags.Int64Var(&opts.Seed, "seed", 0, "account number seed, 0 seeds from the clock (overrides ACCOUNT_NUMBER_SEED)")

	return rootCmd
}

func loadConfig(cmd *cobra.Command, opts *Options) (*config.Config, error) {
	if err := config.LoadEnvFile(opts.EnvFile); err != nil {
		return nil, apperrors.New(apperrors.SystemConfigurationError,
			apperrors.WithMessage(err.Error()),
			apperrors.WithCause(err),
		)
	}

	cfg := config.Load()

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = opts.LogFormat
	}
	if flags.Changed("seed") {
		cfg.Account.NumberSeed = opts.Seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.New(apperrors.SystemConfigurationError,
			apperrors.WithMessage("invalid configuration: "+err.Error()),
			apperrors.WithCause(err),
		)
	}

	return cfg, nil
}

// newLogger builds the stderr logger. Development builds carry source locations.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.Log.SlogLevel(),
		AddSource: cfg.IsDevelopment(),
	}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// runSession wires the account service and drives one console session.
// A session that ends before the account opens still returns nil: the
// error has already been shown to the user.
func runSession(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) error {
	sessionID := uuid.New().String()
	logger := newLogger(cfg, errOut).With(slog.String("session_id", sessionID))
	ctx = services.WithCorrelationID(ctx, sessionID)

	registry := prometheus.NewRegistry()
	metrics := services.NewNoopMetrics()
	if cfg.Metrics.Enabled {
		metrics = services.NewPrometheusMetrics(registry)
	}

	service := services.NewAccountService(
		models.NewAccountNumberGenerator(cfg.Account.NumberSeed),
		services.NewAuditLogger(logger),
		metrics,
		logger,
	)

	logger.DebugContext(ctx, "session started",
		slog.String("environment", cfg.App.Environment),
		slog.Bool("metrics_enabled", cfg.Metrics.Enabled),
	)

	if err := console.NewSession(in, out, errOut, service, logger).Run(ctx); err != nil {
		if console.IsInputError(err) {
			logger.WarnContext(ctx, "initial balance could not be read", slog.String("error", err.Error()))
		} else {
			logger.ErrorContext(ctx, "account could not be opened", slog.String("error", err.Error()))
		}
	}

	if cfg.Metrics.Enabled {
		logMetricsSummary(ctx, logger, registry)
	}

	return nil
}
