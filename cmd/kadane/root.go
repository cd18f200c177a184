package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/admirerr/DSA-Collection/algorithm"
	"github.com/admirerr/DSA-Collection/internal/config"
	"github.com/admirerr/DSA-Collection/internal/logging"
	"github.com/admirerr/DSA-Collection/internal/sequence"
)

type loggerFactory func(config.LoggingConfig, zapcore.WriteSyncer) (*zap.Logger, error)

type options struct {
	configPath string
	file       string
	verbose    bool
	unchecked  bool

	newLogger loggerFactory
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithOptions(&options{newLogger: logging.New})
}

func newRootCmdWithOptions(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kadane [numbers...]",
		Short: "Print the maximum contiguous subarray sum of a sequence",
		Long: `kadane computes the largest sum of any non-empty run of consecutive
integers in linear time. An empty sequence has sum 0.

Without arguments the example sequence from the config file is used
(default [-2, 1, -3, 4, -1, 2, 1, -5, 4]).`,
		Example: `  kadane
  kadane 1,2,3,4
  kadane -- -3 -7 -1 -4
  kadane --file scores.yaml
  seq 1 10 | kadane -f -`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", config.DefaultPath, "Path to the YAML config file")
	flags.StringVarP(&opts.file, "file", "f", "", "Read the sequence from a file, - for stdin")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&opts.unchecked, "unchecked", false, "Allow int64 wraparound instead of failing on overflow")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Message: err.Error()}
	})

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	if opts.file != "" && len(args) > 0 {
		return &ExitError{Code: 2, Message: "--file cannot be combined with numbers on the command line"}
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	if opts.unchecked {
		cfg.Checked = false
	}

	logger, err := opts.newLogger(cfg.Logging, zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	seq, source, err := readSequence(cmd, opts, args, cfg)
	if err != nil {
		logger.Error("failed to read sequence", zap.String("source", source), zap.Error(err))
		return err
	}
	logger.Debug("evaluating sequence",
		zap.String("source", source),
		zap.Int("length", len(seq)),
		zap.Bool("checked", cfg.Checked))

	var sum int64
	if cfg.Checked {
		sum, err = algorithm.MaxSubarraySumChecked(seq)
		if err != nil {
			logger.Error("sum out of range", zap.Error(err))
			return err
		}
	} else {
		sum = algorithm.MaxSubarraySum(seq)
	}

	logger.Debug("done", zap.Int64("sum", sum))
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Maximum subarray sum is %d\n", sum)
	return err
}

func readSequence(cmd *cobra.Command, opts *options, args []string, cfg *config.Config) ([]int64, string, error) {
	switch {
	case opts.file == "-":
		seq, err := sequence.Parse(cmd.InOrStdin())
		return seq, "stdin", err
	case opts.file != "":
		seq, err := sequence.Load(opts.file)
		return seq, opts.file, err
	case len(args) > 0:
		seq, err := sequence.ParseArgs(args)
		return seq, "args", err
	default:
		return cfg.Example, "config", nil
	}
}
