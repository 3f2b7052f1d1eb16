// Package config loads the glassy settings file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/glassy/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// Command-line flags are layered on top with Config.Apply.
//
// # Example
//
//	catalog = "~/catalogs/**/*.yaml"
//	theme = "Midnight"
//	watch = true
//	poll_interval = 5
//	reset_page_on_filter = false
//
//	[log]
//	file = "~/.local/state/glassy/glassy.log"
//	level = "debug"
//	max_size_mb = 10
//	max_backups = 3
//	max_age_days = 28
//
// # Default Values
//
//   - Config file: ~/.config/glassy/config.toml
//   - Catalog: embedded GlassyUI catalog
//   - Theme: Glass
//   - Poll interval: 2 seconds (only used when the file watcher is unavailable)
//   - Log file: ~/.local/state/glassy/glassy.log, level info
//
// Paths starting with ~ are expanded against the user's home directory and
// made absolute. A log file of "-" or "off" disables logging.
//
// # Error Handling
//
// A missing file is not an error. Unreadable files, invalid TOML and negative
// numbers are reported; numeric problems are joined into a single error.
package config
