// Package where implements a resolver for application-specific filesystem paths following the XDG base directory layout.
package where

import (
	"os"
	"path/filepath"

	"github.com/makedot/makedot/constant"
	"github.com/makedot/makedot/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default palette configuration file.
const EnvConfigPath = "MAKEDOT_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// xdg returns the value of the given XDG variable, falling back to a directory below the user's home.
func xdg(env string, fallback ...string) string {
	if dir, ok := os.LookupEnv(env); ok && dir != "" {
		return dir
	}

	home := lo.Must(os.UserHomeDir())
	return filepath.Join(append([]string{home}, fallback...)...)
}

// ConfigHome resolves the user configuration directory ($XDG_CONFIG_HOME or ~/.config).
func ConfigHome() string {
	return xdg("XDG_CONFIG_HOME", ".config")
}

// Config resolves the default palette configuration file.
// The path can be overridden through the MAKEDOT_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok && custom != "" {
		return custom
	}

	return filepath.Join(ConfigHome(), constant.ConfigFile)
}

// Data resolves the application data directory ($XDG_DATA_HOME/makedot or ~/.local/share/makedot).
func Data() string {
	return ensureDir(filepath.Join(xdg("XDG_DATA_HOME", ".local", "share"), constant.Makedot))
}

// Compiled resolves the root directory that receives rendered templates.
func Compiled() string {
	return ensureDir(filepath.Join(Data(), constant.CompiledDir))
}

// Logs resolves the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Data(), "logs"))
}
