// ABOUTME: CLI entry point for promptiq
// ABOUTME: Parses flags, loads config, runs the pipeline, dispatches to an output mode

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	// termfix must be imported before any package that imports bubbletea.
	// It sets lipgloss.SetHasDarkBackground(true) in its init(), preventing
	// Bubble Tea's tea_init.go from sending OSC 10/11 terminal queries whose
	// async responses leak garbage into the output.
	_ "github.com/mauromedda/promptiq-go/internal/termfix"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/mauromedda/promptiq-go/internal/config"
	"github.com/mauromedda/promptiq-go/internal/intent"
	pilog "github.com/mauromedda/promptiq-go/internal/log"
	"github.com/mauromedda/promptiq-go/internal/mode/interactive"
	"github.com/mauromedda/promptiq-go/internal/mode/print"
	"github.com/mauromedda/promptiq-go/internal/optimizer"
	"github.com/mauromedda/promptiq-go/internal/pattern"
	"github.com/mauromedda/promptiq-go/internal/quality"
	"github.com/mauromedda/promptiq-go/internal/taskfile"
	"github.com/mauromedda/promptiq-go/pkg/fuzzy"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("promptiq %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the full sequence: config, prompt gathering, pipeline,
// output dispatch.
func run(args cliArgs) error {
	if args.verbose {
		pilog.SetLevel(pilog.LevelDebug)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyOverrides(cfg, args)

	forced, err := resolveIntent(args.assumeIntent)
	if err != nil {
		return err
	}
	focus, err := resolveFocus(args.focus)
	if err != nil {
		return err
	}

	opt, err := optimizer.New(cfg.Patterns)
	if err != nil {
		return fmt.Errorf("building pattern registry: %w", err)
	}

	prompts, err := gatherPrompts(args.remaining(), os.Stdin)
	if err != nil {
		return err
	}

	mode := pattern.Mode(cfg.Mode)
	results := make([]optimizer.Result, len(prompts))
	var g errgroup.Group
	for i, p := range prompts {
		g.Go(func() error {
			if forced != "" {
				results[i] = opt.OptimizeAssuming(p.text, mode, forced)
			} else {
				results[i] = opt.Optimize(p.text, mode)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return emit(cfg, args, focus, prompts, results)
}

// promptSource pairs prompt text with where it came from.
type promptSource struct {
	text   string
	origin string // "" for inline/stdin, else the file path
}

// gatherPrompts resolves positional arguments into prompt texts. @file
// arguments each become one prompt; everything else joins into a single
// inline prompt. No arguments means read stdin, which also happens when
// stdin is a pipe and no inline text was given.
func gatherPrompts(argv []string, stdin io.Reader) ([]promptSource, error) {
	var inline []string
	var prompts []promptSource
	readStdin := false

	for _, arg := range argv {
		switch {
		case arg == "-":
			readStdin = true
		case strings.HasPrefix(arg, "@"):
			path := strings.TrimPrefix(arg, "@")
			text, err := taskfile.ReadPrompt(path)
			if err != nil {
				return nil, err
			}
			prompts = append(prompts, promptSource{text: text, origin: path})
		default:
			inline = append(inline, arg)
		}
	}

	if len(inline) > 0 {
		prompts = append(prompts, promptSource{text: strings.Join(inline, " ")})
	}
	if readStdin || len(prompts) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		prompts = append(prompts, promptSource{text: string(data)})
	}
	return prompts, nil
}

// emit dispatches the results to the selected output mode.
func emit(cfg *config.Config, args cliArgs, focus string, prompts []promptSource, results []optimizer.Result) error {
	if args.interactive {
		if len(results) != 1 {
			return fmt.Errorf("interactive mode takes exactly one prompt, got %d", len(results))
		}
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		return interactive.Run(results[0])
	}

	if args.out != "" {
		if len(results) != 1 {
			return fmt.Errorf("--out takes exactly one prompt, got %d", len(results))
		}
		return taskfile.WriteFile(args.out, results[0])
	}

	pcfg := print.Config{
		Format:  cfg.Output,
		Verbose: cfg.Verbose,
		Color:   term.IsTerminal(int(os.Stdout.Fd())),
	}
	for i, res := range results {
		if len(results) > 1 {
			fmt.Printf("=== %s ===\n", prompts[i].origin)
		}
		if err := print.Run(os.Stdout, res, pcfg); err != nil {
			return err
		}
		if focus != "" {
			fmt.Printf("Focus %s: %d -> %d\n\n",
				focus, res.Quality.Dimension(focus), res.FinalQuality.Dimension(focus))
		}
	}
	return nil
}

// applyOverrides layers CLI flags over the loaded config.
func applyOverrides(cfg *config.Config, args cliArgs) {
	if args.mode != "" {
		cfg.Mode = args.mode
	}
	if args.json {
		cfg.Output = config.OutputJSON
	}
	if args.verbose {
		cfg.Verbose = true
	}
}

// resolveIntent fuzzy-matches s against the known intents.
func resolveIntent(s string) (intent.Intent, error) {
	if s == "" {
		return "", nil
	}
	names := make([]string, 0, len(intent.All()))
	for _, i := range intent.All() {
		names = append(names, string(i))
	}
	name, ok := fuzzy.Best(s, names)
	if !ok {
		return "", fmt.Errorf("unknown intent %q (known: %s)", s, strings.Join(names, ", "))
	}
	return intent.Intent(name), nil
}

// resolveFocus fuzzy-matches s against the quality dimension names.
func resolveFocus(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	name, ok := fuzzy.Best(s, quality.Dimensions())
	if !ok {
		return "", fmt.Errorf("unknown dimension %q (known: %s)", s, strings.Join(quality.Dimensions(), ", "))
	}
	return name, nil
}
