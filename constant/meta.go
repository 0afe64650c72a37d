// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Makedot is the canonical application identifier used for filesystem paths and CLI branding.
	Makedot = "makedot"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// ConfigFile is the name of the palette configuration file inside the user configuration directory.
	ConfigFile = Makedot + ".toml"

	// CompiledDir is the subdirectory of the data directory holding rendered templates.
	CompiledDir = "compiled"
)

// Build metadata, populated through -ldflags at release time.
var (
	BuiltAt  string
	BuiltBy  string
	Revision string
)
