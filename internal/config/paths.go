// ABOUTME: Standard filesystem paths for promptiq configuration
// ABOUTME: Resolves ~/.promptiq/ for global and .promptiq.yaml for project-local

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName   = ".promptiq"
	projectFileName = ".promptiq.yaml"
)

// GlobalDir returns the user-global config directory (~/.promptiq/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(projectRoot, projectFileName)
}
