package commands

import (
	"os"
	"path/filepath"

	"github.com/hay-kot/popwire/internal/core/config"
	"github.com/hay-kot/popwire/internal/core/journal"
	"github.com/hay-kot/popwire/internal/interop"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Registry routes engine callbacks back to the options that fired them
	Registry *interop.Registry

	// Journal records popup runs made by resolve
	Journal journal.Store
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "popwire", "config.yaml")
}

// DefaultJournalPath returns the default journal path using XDG_DATA_HOME.
func DefaultJournalPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "popwire", "journal.json")
}
