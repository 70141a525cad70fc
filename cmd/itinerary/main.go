package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"tripplanner/internal/errors"
)

// Supported subcommands:
// - optimize: Plan an itinerary from a POI file
// - profiles: Print the category weight and keyword tables

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type optimizeFlags struct {
	cmd        *flag.FlagSet
	input      *string
	days       *int
	category   *string
	strategy   *string
	format     *string
	loadConfig *bool
}

type profilesFlags struct {
	cmd    *flag.FlagSet
	format *string
}

func newOptimizeFlags(stderr io.Writer) optimizeFlags {
	cmd := flag.NewFlagSet("optimize", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	return optimizeFlags{
		cmd:        cmd,
		input:      cmd.String("input", "", "POI JSON file, '-' reads stdin"),
		days:       cmd.Int("days", 1, "Number of days to plan"),
		category:   cmd.String("category", "Historical", "Trip category (Historical, Religious, Nature, Adventure, Romantic)"),
		strategy:   cmd.String("strategy", "", "Tour strategy (greedy, shortest-path); empty uses the configured default"),
		format:     cmd.String("format", formatText, "Output format (text, json, geojson)"),
		loadConfig: cmd.Bool("config", false, "Load config/config.yaml and environment overrides instead of built-in defaults"),
	}
}

func newProfilesFlags(stderr io.Writer) profilesFlags {
	cmd := flag.NewFlagSet("profiles", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	return profilesFlags{
		cmd:    cmd,
		format: cmd.String("format", formatText, "Output format (text, json)"),
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		printUsage(stderr)

		return errors.New("missing subcommand")
	}

	switch args[0] {
	case "optimize":
		flags := newOptimizeFlags(stderr)
		if err := flags.cmd.Parse(args[1:]); err != nil {
			return errors.Wrap(err, "failed to parse optimize flags")
		}

		return runOptimize(ctx, &flags, stdout, stderr)
	case "profiles":
		flags := newProfilesFlags(stderr)
		if err := flags.cmd.Parse(args[1:]); err != nil {
			return errors.Wrap(err, "failed to parse profiles flags")
		}

		return runProfiles(*flags.format, stdout)
	default:
		printUsage(stderr)

		return errors.Errorf("unknown subcommand: %s", args[0])
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: itinerary <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  optimize    Plan a multi-day itinerary from a POI file")
	fmt.Fprintln(w, "  profiles    Print category weights and keywords")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Use 'itinerary <command> -h' for more information about a command.")
}
