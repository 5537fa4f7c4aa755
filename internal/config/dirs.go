package config

import (
	"os"
	"path/filepath"
)

// Dir returns the directory holding config.yaml.
// $BARO_CONFIG_HOME overrides the default ~/.config/baro.
func Dir() string {
	if dir := os.Getenv("BARO_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".baro"
	}
	return filepath.Join(home, ".config", "baro")
}

// DataDir returns the directory for runtime artifacts such as the log file.
// $BARO_DATA_HOME overrides the default ~/.local/share/baro.
func DataDir() string {
	if dir := os.Getenv("BARO_DATA_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".baro"
	}
	return filepath.Join(home, ".local", "share", "baro")
}

// LogFile returns the full path of the debug log file.
func LogFile() string {
	return filepath.Join(DataDir(), LogFileName)
}
