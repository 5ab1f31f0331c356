package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/enumdex/internal/app"
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

// typeList collects repeated -type flags.
type typeList []string

func (t *typeList) String() string { return strings.Join(*t, ",") }

func (t *typeList) Set(v string) error {
	*t = append(*t, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated app config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("enumgen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
enumgen - derives dense index domains for finite Go types.

Usage:
  enumgen [options] [DIR]

Arguments:
  DIR
    Package directory to scan. Defaults to the current directory. If the
    directory tree contains enumgen.hcl manifests, each one drives a
    generation run; otherwise the flags below describe a single run.

Options:
`)
		flagSet.PrintDefaults()
	}

	var types typeList
	configFlag := flagSet.String("config", "", "Path to an enumgen.hcl manifest.")
	dirFlag := flagSet.String("dir", "", "Package directory to scan.")
	outputFlag := flagSet.String("output", "", "Generated file name, relative to the package directory.")
	stdoutFlag := flagSet.Bool("stdout", false, "Print generated source instead of writing the file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.Var(&types, "type", "Type to generate a domain for. Repeatable; defaults to every recognizable type.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	dir := *dirFlag
	if dir == "" && flagSet.NArg() > 0 {
		dir = flagSet.Arg(0)
	}
	if dir == "" {
		dir = "."
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

	config := &app.Config{
		Dir:        dir,
		Output:     *outputFlag,
		ConfigPath: *configFlag,
		Types:      types,
		Stdout:     *stdoutFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	}
	slog.Debug("CLI parser finished successfully.", "dir", config.Dir, "config", config.ConfigPath)
	return config, false, nil
}
