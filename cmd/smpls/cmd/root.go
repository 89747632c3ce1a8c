package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/smpls/model"
	"github.com/katalvlaran/smpls/smpls"
)

const tracerName = "github.com/katalvlaran/smpls/cmd/smpls"

var (
	modelPath  string
	logLevel   string
	format     string
	outputPath string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "smpls",
	Short: "Translate switching max-plus linear systems into max-plus automata",
	Long: `smpls reads a YAML model holding scenario matrices and either a scenario
FSM or an I/O automaton with its event relations, and translates, checks,
determinizes or draws it.

Flags default to SMPLS_MODEL, SMPLS_LOG_LEVEL and SMPLS_FORMAT, which may be
set in a .env file in the working directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(logLevel)
		if err != nil {
			return err
		}
		logger = l.With(zap.String("run", uuid.NewString()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// The .env file is optional.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVarP(&modelPath, "model", "m", os.Getenv("SMPLS_MODEL"), "model file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", envOr("SMPLS_LOG_LEVEL", "info"), "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", envOr("SMPLS_FORMAT", "yaml"), "output format")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "output file, stdout when empty")
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// newLogger returns a development logger for debug and a production logger
// at the given level otherwise.
func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	return cfg.Build()
}

// traced wraps a command body in a span named after the command.
func traced(run func(ctx context.Context, cmd *cobra.Command, span trace.Span) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, span := otel.Tracer(tracerName).Start(cmd.Context(), cmd.Name(),
			trace.WithAttributes(attribute.String("smpls.model", modelPath)))
		defer span.End()

		if err := run(ctx, cmd, span); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.Error("command failed", zap.String("command", cmd.Name()), zap.Error(err))
			return err
		}
		return nil
	}
}

func loadModel(ctx context.Context) (*model.Document, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "load")
	defer span.End()

	if modelPath == "" {
		return nil, fmt.Errorf("no model given: use --model or SMPLS_MODEL: %w", smpls.ErrNotLoaded)
	}
	doc, err := model.Load(modelPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("model loaded", zap.String("path", modelPath),
		zap.Int("matrices", len(doc.Matrices)),
		zap.Bool("fsm", doc.FSM != nil),
		zap.Bool("ioa", doc.IOA != nil))

	return doc, nil
}

// output returns the command's writer, or the file named by --output.
func output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if outputPath == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}

// withOutput runs write against the command output and closes it.
func withOutput(cmd *cobra.Command, write func(w io.Writer) error) (err error) {
	w, closeFn, err := output(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); err == nil {
			err = cerr
		}
	}()

	return write(w)
}

func libOptions() []smpls.Option {
	return []smpls.Option{smpls.WithLogger(logger)}
}
