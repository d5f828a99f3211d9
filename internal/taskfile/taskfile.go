// ABOUTME: Task file rendering: writes an optimization result as task-list markdown
// ABOUTME: Reads prompt text back out of a task file for re-runs

package taskfile

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/mauromedda/promptiq-go/internal/optimizer"
)

const enhancedHeading = "## Enhanced Prompt"

// Render writes res as a task-list markdown document to w. The document
// keeps the enhanced prompt in a dedicated section so ReadPrompt can
// recover it later.
func Render(res optimizer.Result, w io.Writer) error {
	return taskTmpl.Execute(w, res)
}

// WriteFile renders res to path, replacing any existing file.
func WriteFile(path string, res optimizer.Result) error {
	var sb strings.Builder
	if err := Render(res, &sb); err != nil {
		return fmt.Errorf("rendering task file: %w", err)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing task file: %w", err)
	}
	return nil
}

// ReadPrompt reads prompt text from path. A file previously written by
// WriteFile yields the enhanced-prompt section; any other file yields its
// whole trimmed content, so plain prompt files work too.
func ReadPrompt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading prompt file: %w", err)
	}
	text := string(data)

	idx := strings.Index(text, enhancedHeading)
	if idx < 0 {
		return strings.TrimSpace(text), nil
	}

	body := text[idx+len(enhancedHeading):]
	// The section runs until the next top-level heading.
	if end := strings.Index(body, "\n# "); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body), nil
}

// checkbox renders a markdown task item state.
func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

var taskTmpl = template.Must(template.New("taskfile").Funcs(template.FuncMap{
	"checkbox": checkbox,
}).Parse(taskTemplate))

const taskTemplate = `# Prompt Optimization Tasks

Mode: {{.Mode}} | Intent: {{.Intent.PrimaryIntent}} ({{.Intent.Confidence}}% confidence)
Quality: {{.Quality.Overall}} -> {{.FinalQuality.Overall}} | Escalation: {{.Escalation.Score}} ({{.Escalation.Recommend}})

{{if .AppliedPatterns}}## Applied
{{range .AppliedPatterns}}- {{checkbox true}} {{.Name}}: {{.Description}} ({{.Impact}} impact)
{{end}}{{end}}
{{- if .Quality.Improvements}}## Follow-ups
{{range .Quality.Improvements}}- {{checkbox false}} {{.}}
{{end}}{{end}}
{{- if .Escalation.Factors}}## Escalation Factors
{{range .Escalation.Factors}}- {{.}}
{{end}}{{end}}
` + enhancedHeading + `

{{.Enhanced}}
`
