// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Player Connection - these keys describe how to reach the player's remote-control interface.
const (
	PlayerHost           = "player.host"
	PlayerPort           = "player.port"
	PlayerPassword       = "player.password"
	PlayerProcess        = "player.process"
	PlayerConnectTimeout = "player.connect_timeout"
	PlayerPromptTimeout  = "player.prompt_timeout"
	PlayerReadTimeout    = "player.read_timeout"
	PlayerOpenWith       = "player.open_with"
)

// Tracking - these keys govern the polling driver.
const (
	TrackerInterval         = "tracker.interval"
	TrackerUnavailableGrace = "tracker.unavailable_grace"
)

// Renaming - these keys control the progress marker side effect on media files.
const (
	RenameEnabled = "rename.enabled"
)

// History Tracking - these keys configure the persistence of viewing history.
const (
	HistoryBackend = "history.backend"
	HistoryPath    = "history.path"
)

// HTTP API - these keys configure the optional JSON API served by the watcher.
const (
	APIListen = "api.listen"
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

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
