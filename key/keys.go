// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Rendering - these keys govern how templates are discovered and compiled.
const (
	RenderEngine = "render.engine"
	RenderOutput = "render.output"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the application output.
const (
	CliColored = "cli.colored"
)
