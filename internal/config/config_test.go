// ABOUTME: Config loading tests: defaults, merge precedence, validation
// ABOUTME: Redirects HOME to a temp dir so real user config never leaks in

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_NoFilesUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Mode != "fast" {
		t.Errorf("Mode = %q; want fast", c.Mode)
	}
	if c.Output != OutputText {
		t.Errorf("Output = %q; want text", c.Output)
	}
	if c.Patterns.Conciseness.MinChanges != 3 {
		t.Errorf("MinChanges = %d; want default 3", c.Patterns.Conciseness.MinChanges)
	}
}

func TestLoad_GlobalThenProjectPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".promptiq", "config.yaml"),
		"mode: deep\noutput: json\npatterns:\n  conciseness:\n    min_changes: 5\n")

	project := t.TempDir()
	writeFile(t, filepath.Join(project, ".promptiq.yaml"), "output: text\n")

	c, err := Load(project)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Mode != "deep" {
		t.Errorf("Mode = %q; want deep from global", c.Mode)
	}
	if c.Output != OutputText {
		t.Errorf("Output = %q; want text from project override", c.Output)
	}
	if c.Patterns.Conciseness.MinChanges != 5 {
		t.Errorf("MinChanges = %d; want 5 from global", c.Patterns.Conciseness.MinChanges)
	}
}

func TestLoad_ProjectDisablesPatterns(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	project := t.TempDir()
	writeFile(t, filepath.Join(project, ".promptiq.yaml"),
		"patterns:\n  disabled:\n    - conciseness\n")

	c, err := Load(project)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Patterns.Disabled) != 1 || c.Patterns.Disabled[0] != "conciseness" {
		t.Errorf("Disabled = %v; want [conciseness]", c.Patterns.Disabled)
	}
}

func TestLoad_InvalidMode(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	project := t.TempDir()
	writeFile(t, filepath.Join(project, ".promptiq.yaml"), "mode: turbo\n")

	if _, err := Load(project); err == nil || !strings.Contains(err.Error(), "mode") {
		t.Errorf("Load error = %v; want mode validation failure", err)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	project := t.TempDir()
	writeFile(t, filepath.Join(project, ".promptiq.yaml"), "mode: [unclosed\n")

	if _, err := Load(project); err == nil {
		t.Error("want parse error for malformed YAML")
	}
}

func TestValidate_Output(t *testing.T) {
	t.Parallel()

	c := Default()
	c.Output = "xml"
	if err := c.Validate(); err == nil || !strings.Contains(err.Error(), "output") {
		t.Errorf("Validate = %v; want output failure", err)
	}
}
