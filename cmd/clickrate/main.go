// Command clickrate reconstructs one acquisition run from a local JSON file and prints its
// rate report. It runs the same decoding and analysis chain as the server without storage.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"click-rate/internal/decoders"
	"click-rate/internal/ingestors"
	"click-rate/internal/planners"
	"click-rate/internal/ratestats"
	"click-rate/internal/reporting"
	"click-rate/internal/shared/configs"
	"click-rate/internal/shared/loggers"
	"click-rate/internal/shared/svcerrors"
	"click-rate/internal/shared/validators"

	"github.com/spf13/pflag"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	configPath      string
	inputPath       string
	printTimestamps bool
	plan            bool
	durationS       float64
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "clickrate: %v\n", err)
		return exitUsage
	}

	cfg, err := configs.LoadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "clickrate: %v\n", err)
		return exitError
	}

	logger, err := loggers.NewWithWriter(cfg.Log.Level, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "clickrate: failed to initialize logger: %v\n", err)
		return exitError
	}
	logger = logger.With().Str(loggers.FieldApp, "clickrate").Logger()

	if opts.plan {
		err = printPlan(stdout, cfg, opts)
	} else {
		logger = logger.With().Str(loggers.FieldInputPath, opts.inputPath).Logger()
		err = analyzeRun(stdin, stdout, logger, cfg, opts)
	}
	if err != nil {
		event := logger.Error().Err(err)
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			event = event.Str(loggers.FieldErrorCode, svcErr.Code)
		}
		event.Msg("clickrate failed")
		return exitError
	}
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := pflag.NewFlagSet("clickrate", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.configPath, "config", "c", "./configs/configs.yml", "path to the YAML config")
	fs.StringVarP(&opts.inputPath, "input", "i", "-", "run JSON file, - for stdin")
	fs.BoolVar(&opts.printTimestamps, "print-timestamps", false, "print every absolute timestamp")
	fs.BoolVar(&opts.plan, "plan", false, "print the window plan instead of analyzing a run")
	fs.Float64Var(&opts.durationS, "duration-s", 0, "measurement duration in seconds for --plan (default from config)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if opts.durationS != 0 && !opts.plan {
		return nil, errors.New("--duration-s requires --plan")
	}
	return opts, nil
}

func printPlan(w io.Writer, cfg *configs.Config, opts *options) error {
	durationS := cfg.Acquisition.MeasurementDurationS
	if opts.durationS != 0 {
		durationS = opts.durationS
	}

	plan, err := planners.NewWindowPlanner(cfg.Acquisition.MaxTagsPerWindow).PlanSeconds(durationS, cfg.Acquisition.WindowLengthNs)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Windows: %d\nWindow length (ns): %d\nCovered duration (ns): %d\nEvent capacity: %d\n",
		plan.WindowCount, plan.WindowLength, plan.CoveredDuration(), plan.EventCapacity)
	return err
}

func analyzeRun(stdin io.Reader, stdout io.Writer, logger loggers.Logger, cfg *configs.Config, opts *options) error {
	input, runID, err := openInput(stdin, opts.inputPath)
	if err != nil {
		return err
	}
	defer input.Close()

	req, err := ingestors.DecodeRunRequest(validators.New(), ingestors.FormatJSON, input)
	if err != nil {
		return err
	}
	record, err := req.Record(runID, ingestors.NewRunDefaults(cfg.Acquisition))
	if err != nil {
		return err
	}

	if outside := decoders.CountOutOfWindow(record.Timestamps, record.WindowLength, record.Unit); outside > 0 {
		logger.Warn().Int("out_of_window_count", outside).Msg("timestamps outside their window")
	}

	decoder := decoders.NewTagStreamDecoder(decoders.WithParallelism(cfg.Decoder.Parallelism))
	timeline, err := decoder.DecodeRecord(record)
	if err != nil {
		return err
	}
	logger.Debug().
		Int(loggers.FieldWindowCount, timeline.WindowCount()).
		Int(loggers.FieldEventCount, len(timeline.Timestamps)).
		Msg("timeline reconstructed")

	report, err := ratestats.NewReportBuilder().Build(timeline)
	if err != nil {
		return err
	}
	for _, statistic := range report.Undefined {
		logger.Warn().Str("statistic", statistic).Msg("statistic undefined for run")
	}

	return reporting.WriteText(stdout, report, timeline, reporting.Options{PrintTimestamps: opts.printTimestamps})
}

// openInput returns the run source and a run ID derived from the file name.
func openInput(stdin io.Reader, path string) (io.ReadCloser, string, error) {
	if path == "-" {
		return io.NopCloser(stdin), "stdin", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open input: %w", err)
	}
	return f, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), nil
}
