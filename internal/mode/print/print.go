// ABOUTME: Result printing with text and JSON formatters
// ABOUTME: Text output renders a styled score report; JSON emits the raw aggregate

package print

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mauromedda/promptiq-go/internal/optimizer"
	"github.com/mauromedda/promptiq-go/internal/quality"
)

// Config configures result printing.
type Config struct {
	Format  string // "text" (default) or "json"
	Verbose bool   // include strengths, factors, and skipped patterns
	Color   bool   // styled output; off for pipes
}

// Run writes res to w in the configured format.
func Run(w io.Writer, res optimizer.Result, cfg Config) error {
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	return newFormatter(cfg).write(w, res)
}

// formatter abstracts output formatting.
type formatter interface {
	write(w io.Writer, res optimizer.Result) error
}

func newFormatter(cfg Config) formatter {
	switch cfg.Format {
	case "json":
		return &jsonFormatter{}
	default:
		return &textFormatter{verbose: cfg.Verbose, color: cfg.Color}
	}
}

// jsonFormatter emits the aggregate result as one indented JSON object.
type jsonFormatter struct{}

func (f *jsonFormatter) write(w io.Writer, res optimizer.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// textFormatter renders a human-readable report: intent line, score table
// with bars, applied patterns, and the enhanced prompt.
type textFormatter struct {
	verbose bool
	color   bool
}

const barWidth = 20

func (f *textFormatter) write(w io.Writer, res optimizer.Result) error {
	s := f.styles()

	fmt.Fprintln(w, s.title.Render("Prompt Analysis"))
	fmt.Fprintf(w, "%s %s (%d%% confidence, %s mode)\n",
		s.label.Render("Intent:"), res.Intent.PrimaryIntent, res.Intent.Confidence, res.Mode)
	fmt.Fprintf(w, "%s %d -> %d\n\n",
		s.label.Render("Overall:"), res.Quality.Overall, res.FinalQuality.Overall)

	for _, dim := range quality.Dimensions() {
		score := res.FinalQuality.Dimension(dim)
		fmt.Fprintf(w, "  %s %3d %s\n", pad(dim, 14), score, f.bar(score, s))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s %d/100, recommend %s\n",
		s.label.Render("Escalation:"), res.Escalation.Score, s.accent.Render(string(res.Escalation.Recommend)))
	if f.verbose {
		for _, factor := range res.Escalation.Factors {
			fmt.Fprintf(w, "  - %s\n", factor)
		}
	}
	fmt.Fprintln(w)

	if len(res.AppliedPatterns) > 0 {
		fmt.Fprintln(w, s.title.Render("Applied Patterns"))
		for _, p := range res.AppliedPatterns {
			fmt.Fprintf(w, "  %s %s (%s impact)\n", s.accent.Render(p.Name+":"), p.Description, p.Impact)
		}
		fmt.Fprintln(w)
	}
	if f.verbose && len(res.Skipped) > 0 {
		fmt.Fprintln(w, s.title.Render("Skipped"))
		for _, note := range res.Skipped {
			fmt.Fprintf(w, "  %s\n", note)
		}
		fmt.Fprintln(w)
	}
	if f.verbose && len(res.Quality.Strengths) > 0 {
		fmt.Fprintln(w, s.title.Render("Strengths"))
		for _, str := range res.Quality.Strengths {
			fmt.Fprintf(w, "  %s\n", str)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, s.title.Render("Enhanced Prompt"))
	fmt.Fprintln(w, res.Enhanced)
	return nil
}

// bar renders a fixed-width fill bar for a 0-100 score.
func (f *textFormatter) bar(score int, s styleSet) string {
	filled := score * barWidth / 100
	if filled > barWidth {
		filled = barWidth
	}
	b := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	switch {
	case score >= 70:
		return s.good.Render(b)
	case score >= 40:
		return s.mid.Render(b)
	default:
		return s.bad.Render(b)
	}
}

// pad right-pads label to width display cells.
func pad(label string, width int) string {
	gap := width - runewidth.StringWidth(label)
	if gap <= 0 {
		return label
	}
	return label + strings.Repeat(" ", gap)
}

type styleSet struct {
	title  lipgloss.Style
	label  lipgloss.Style
	accent lipgloss.Style
	good   lipgloss.Style
	mid    lipgloss.Style
	bad    lipgloss.Style
}

func (f *textFormatter) styles() styleSet {
	if !f.color {
		plain := lipgloss.NewStyle()
		return styleSet{plain, plain, plain, plain, plain, plain}
	}
	return styleSet{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label:  lipgloss.NewStyle().Bold(true),
		accent: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		good:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		mid:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		bad:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
