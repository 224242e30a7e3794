// Package key lists every configuration key clipdeck understands.
package key

// DefinedFieldsCount is the number of keys registered in config.Default.
const DefinedFieldsCount = 13

// Media service.
const (
	APIURL     = "api.url"
	APITimeout = "api.timeout"
)

// Playback.
const (
	Player                     = "player.default"
	PlayerCompletionPercentage = "player.completion_percentage"
)

// History.
const (
	HistorySaveOnPlay = "history.save_on_play"
)

// TUI.
const (
	TUIItemSpacing = "tui.item_spacing"
	TUIShowURLs    = "tui.show_urls"
)

const (
	IconsVariant = "icons.variant"
)

// Logs.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
