package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calebcase/dataaccess/internal/config"
)

// app carries the state shared by the sub-commands.
type app struct {
	configPath string
	verbose    bool

	// Flag values. They only replace the configuration when set.
	precision        int
	typ              string
	scale            int32
	checkOverflow    bool
	rounded          bool
	preserveZeroSign bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "dataaccess",
		Short: "Convert packed and external decimals",
		Long: `dataaccess encodes, decodes and shifts packed (PD) and external (zoned)
decimals.

Buffers are given and printed as hex. The decimal type is "packed" or one of
the external sign conventions:

  embedded-trailing, embedded-leading, separate-trailing, separate-leading,
  unicode-unsigned, unicode-separate-leading, unicode-separate-trailing`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.IntVarP(&a.precision, "precision", "p", 0, "Count of significant digits")
	pf.StringVarP(&a.typ, "type", "t", "", "Decimal type: packed or an external sign convention")
	pf.Int32VarP(&a.scale, "scale", "s", 0, "Digits after the decimal point")
	pf.BoolVar(&a.checkOverflow, "check-overflow", true, "Fail instead of dropping high order digits")
	pf.BoolVar(&a.rounded, "rounded", false, "Round half up when shifting right")
	pf.BoolVar(&a.preserveZeroSign, "preserve-zero-sign", false, "Keep the operand sign on zero results")

	rootCmd.AddCommand(
		a.packCmd(),
		a.unpackCmd(),
		a.shiftCmd(),
		a.moveCmd(),
		a.checkCmd(),
	)

	return rootCmd
}

// setup loads the configuration, applies flag overrides and builds the
// logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("precision") {
		cfg.Precision = a.precision
	}
	if flags.Changed("type") {
		cfg.Type = a.typ
	}
	if flags.Changed("scale") {
		cfg.Scale = a.scale
	}
	if flags.Changed("check-overflow") {
		cfg.CheckOverflow = a.checkOverflow
	}
	if flags.Changed("rounded") {
		cfg.Rounded = a.rounded
	}
	if flags.Changed("preserve-zero-sign") {
		cfg.PreserveZeroSign = a.preserveZeroSign
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}

	err = cfg.Validate()
	if err != nil {
		return err
	}

	a.cfg = cfg

	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to parse logging level: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)

	a.logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.logger.Debug("Configuration loaded",
		zap.String("config", a.configPath),
		zap.Int("precision", cfg.Precision),
		zap.String("type", cfg.Type),
		zap.Int32("scale", cfg.Scale),
		zap.Bool("check_overflow", cfg.CheckOverflow))

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
