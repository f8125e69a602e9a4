package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/loader"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"
)

const programName = "cpu-scheduler"

// errUsage reports a wrong number of positional arguments.
var errUsage = errors.New("wrong number of arguments")

// options holds the flags of one command tree.
type options struct {
	logLevel   string // Log verbosity level
	configPath string // Optional config file, ./config.yaml otherwise
	format     string // Report format: text, table or json
	port       int    // HTTP port for serve

	config *config.SchedulerConfig
}

// newRootCmd builds the command tree for the program called name. Output goes to out.
func newRootCmd(name string, out io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   name + " <input_file> <algorithm>",
		Short: "Simulate FCFS and SJF scheduling over a batch of processes",
		Long: "Reads a batch of processes (a count followed by arrival/burst pairs, or a YAML file)\n" +
			"and prints the execution order with average waiting and turnaround times.\n\n" +
			"The words serve and help are taken as subcommands; schedule a file with one of\n" +
			"those names through a path such as ./serve.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errUsage
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(cmd.OutOrStdout(), args[0], args[1], opts.format)
		},
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ./config.yaml when present)")
	rootCmd.Flags().StringVar(&opts.format, "format", "text", "Report format (text, table, json)")

	rootCmd.AddCommand(newServeCmd(opts))
	return rootCmd
}

// setup loads configuration and applies the log level. Flags set on the
// command line win over the config file and environment.
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.config = cfg

	if !cmd.Flags().Changed("log") {
		o.logLevel = cfg.LogLevel
	}
	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", o.logLevel)
	}
	logrus.SetLevel(level)

	if f := cmd.Flags().Lookup("format"); f != nil && !f.Changed {
		o.format = cfg.ReportFormat
	}
	if f := cmd.Flags().Lookup("port"); f != nil && !f.Changed {
		o.port = cfg.Port
	}
	return nil
}

func runSchedule(out io.Writer, inputFile, algorithm, format string) error {
	batch, err := loader.LoadFile(inputFile)
	if err != nil {
		return err
	}
	logrus.Infof("Loaded %d processes from %s", batch.Len(), inputFile)

	result, err := schedulers.Schedule(batch, algorithm)
	if err != nil {
		return err
	}

	switch format {
	case "text", "":
		return report.WriteText(out, result)
	case "table":
		return report.WriteTable(out, result)
	case "json":
		return report.WriteJSON(out, schedulers.GenerateResponse(result))
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// errorMessage maps err to the line printed before exiting with status 1.
func errorMessage(name string, err error) string {
	switch {
	case errors.Is(err, errUsage):
		return fmt.Sprintf("Usage: %s <input_file> <scheduling_algorithm (FCFS/SJF)>", name)
	case errors.Is(err, core.ErrIOFailure):
		return "Error opening file."
	case errors.Is(err, core.ErrUnsupportedAlgorithm):
		return "Invalid scheduling algorithm specified."
	case errors.Is(err, core.ErrEmptyBatch):
		return "No processes to schedule."
	case errors.Is(err, core.ErrInvalidInput):
		return fmt.Sprintf("Invalid input file: %v", err)
	default:
		return err.Error()
	}
}

// Run executes the CLI with args and returns the process exit status.
func Run(args []string, out io.Writer) int {
	return RunAs(programName, args, out)
}

// RunAs is Run for a program invoked as name, which appears in the usage line.
func RunAs(name string, args []string, out io.Writer) int {
	rootCmd := newRootCmd(name, out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		logrus.Debugf("command failed: %v", err)
		fmt.Fprintln(out, errorMessage(name, err))
		return 1
	}
	return 0
}

// Execute runs the CLI root command
func Execute() {
	if code := RunAs(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout); code != 0 {
		os.Exit(code)
	}
}
