// easy2ha converts a Hager easy (TXA) project export into a Home Assistant
// KNX configuration file.
//
// The converter reads the channel tree from the export, classifies each
// channel as a light, cover, temperature sensor, climate controller or
// weather station, resolves the datapoint bus addresses into entity fields
// and renders the result as YAML:
//
//	easy2ha --input house.txa --output knx.yaml
//
// One invocation is one conversion; there is no daemon mode.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"

	"github.com/nerrad567/easy2ha/internal/easyproj"
	"github.com/nerrad567/easy2ha/internal/homeassistant"
	"github.com/nerrad567/easy2ha/internal/infrastructure/config"
	"github.com/nerrad567/easy2ha/internal/infrastructure/logging"
	"github.com/nerrad567/easy2ha/internal/render"
)

// Exit codes, kept distinct so scripts can tell a bad invocation from a
// failed conversion.
const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

// options holds the parsed command line.
type options struct {
	input    string
	output   string
	logLevel string
	config   string
	version  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the application logic, separated from main for testability.
// It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options

	fs := flag.NewFlagSet("easy2ha", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }
	fs.StringVar(&opts.input, "i", "", "input project export")
	fs.StringVar(&opts.input, "input", "", "input project export")
	fs.StringVar(&opts.output, "o", "", "output YAML file")
	fs.StringVar(&opts.output, "output", "", "output YAML file")
	fs.StringVar(&opts.logLevel, "l", "", "log level")
	fs.StringVar(&opts.logLevel, "loglevel", "", "log level")
	fs.StringVar(&opts.config, "c", "", "configuration file")
	fs.StringVar(&opts.config, "config", "", "configuration file")
	fs.BoolVar(&opts.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitSuccess
		}
		return exitUsage
	}

	if opts.version {
		fmt.Fprintf(stdout, "easy2ha %s\n", versioninfo.Short())
		return exitSuccess
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected argument %q\n", fs.Arg(0))
		printUsage(stderr)
		return exitUsage
	}

	if opts.input == "" || opts.output == "" {
		fmt.Fprintln(stderr, "Error: --input and --output are required")
		printUsage(stderr)
		return exitUsage
	}

	cfg, err := config.Load(configPath(opts.config))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	// The command line wins over file and environment settings.
	if opts.logLevel != "" {
		cfg.Logging.Level = strings.ToLower(opts.logLevel)
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitUsage
		}
	}

	log := logging.New(cfg.Logging, versioninfo.Short())
	log.Info("starting easy2ha",
		"version", versioninfo.Short(),
		"input", opts.input,
		"output", opts.output,
	)

	parser := easyproj.NewParser(log)
	project, err := parser.ParseFile(opts.input)
	if err != nil {
		log.Error("cannot read project", "path", opts.input, "error", err)
		fmt.Fprintf(stderr, "Error: reading project %s: %v\n", opts.input, err)
		return exitFailure
	}

	converter := homeassistant.NewConverter(log, homeassistant.Options{
		SortEntities: cfg.Output.SortEntities,
	})
	doc, summary := converter.Convert(project)

	if err := render.WriteFile(opts.output, doc); err != nil {
		log.Error("cannot write configuration", "path", opts.output, "error", err)
		fmt.Fprintf(stderr, "Error: writing configuration %s: %v\n", opts.output, err)
		return exitFailure
	}

	log.Info("configuration written", "path", opts.output, "entities", summary.EntitiesTotal)
	fmt.Fprintf(stdout, "Converted %s -> %s (%d entities)\n", opts.input, opts.output, summary.EntitiesTotal)

	return exitSuccess
}

// configPath resolves the configuration file path. The --config flag wins
// over the EASY2HA_CONFIG environment variable; empty means built-in
// defaults.
func configPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv("EASY2HA_CONFIG")
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `easy2ha - convert a Hager easy project export to a Home Assistant KNX configuration

Usage:
  easy2ha --input <project.txa> --output <knx.yaml> [options]

Options:
  -i, --input     Input project export (.txa archive or bare Channels.xml)
  -o, --output    Output YAML configuration file
  -l, --loglevel  Log level: DEBUG, INFO, WARNING, ERROR or CRITICAL [default: INFO]
  -c, --config    Optional configuration file (also via EASY2HA_CONFIG)
      --version   Print version and exit

Examples:
  easy2ha -i house.txa -o knx.yaml
  easy2ha -i house.txa -o knx.yaml -l DEBUG
  easy2ha -c configs/config.yaml -i house.txa -o knx.yaml`)
}
