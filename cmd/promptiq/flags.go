// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --mode, --json, --focus, --assume-intent, --interactive, --out

package main

import "flag"

type cliArgs struct {
	mode         string
	json         bool
	focus        string
	assumeIntent string
	verbose      bool
	interactive  bool
	out          string
	version      bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.mode, "mode", "", "Processing mode: fast or deep (default from config)")
	flag.BoolVar(&args.json, "json", false, "Emit the raw result as JSON")
	flag.StringVar(&args.focus, "focus", "", "Highlight one quality dimension (fuzzy-matched)")
	flag.StringVar(&args.assumeIntent, "assume-intent", "", "Skip classification and force this intent (fuzzy-matched)")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging and verbose reports")
	flag.BoolVar(&args.interactive, "interactive", false, "Browse the result in a TUI pager")
	flag.StringVar(&args.out, "out", "", "Write a task-list markdown file to this path")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// remaining returns the non-flag command-line arguments: prompt text,
// "-" for stdin, or @file references.
func (a cliArgs) remaining() []string {
	return flag.Args()
}
