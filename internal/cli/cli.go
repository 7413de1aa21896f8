package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/relforge/relforge/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly,
// or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("relforge", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
relforge - resolves release declarations into deployable release descriptors.

Usage:
  relforge [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    Path to a single .hcl declaration file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the declaration file or directory.")
	cFlag := flagSet.String("c", "", "Path to the declaration file or directory (shorthand).")
	worldFlag := flagSet.String("world", "", "Comma-separated extra paths to world declaration files.")
	releaseFlag := flagSet.String("release", "", "Release to resolve, as 'name' or 'name:version'. Default: all declared releases.")
	outputFlag := flagSet.String("output", "", "File to write the release descriptor to. Default: stdout.")
	oFlag := flagSet.String("o", "", "File to write the release descriptor to (shorthand).")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *configFlag != "" {
		path = *configFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Declaration path determined.", "path", path)

	if path == "" {
		slog.Debug("No declaration path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	var worldPaths []string
	for _, p := range strings.Split(*worldFlag, ",") {
		if p = strings.TrimSpace(p); p != "" {
			worldPaths = append(worldPaths, p)
		}
	}

	outputPath := *outputFlag
	if outputPath == "" {
		outputPath = *oFlag
	}

	config, err := app.NewConfig(app.Config{
		ConfigPath: path,
		WorldPaths: worldPaths,
		Release:    *releaseFlag,
		OutputPath: outputPath,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
