// Package app provides the orchestration layer for glassy.
//
// # Overview
//
// This package wires together configuration, logging, the catalog, the
// shared state store and the UI. It is the composition root where all
// dependencies are initialized and connected.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read config.toml, apply flags
//	       ├─────> logging.New()        Rotating JSON log file
//	       ├─────> catalog.LoadPattern() Embedded, file or glob
//	       ├─────> state.Store.Update() Publish the first catalog
//	       ├─────> StartReloader()      Only with watch = true
//	       └─────> ui.Run()             Start TUI (blocks)
//
// # Reloading
//
// StartReloader prefers an fsnotify watcher on the catalog's directories.
// When the watcher cannot start it falls back to StartPoller, which reloads
// every poll_interval and doubles the wait after each consecutive failure,
// capped at 30 seconds. Either way a failed load keeps the previous catalog
// and records the error for the status line.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Unreadable or invalid config file
//   - Unusable log file or level
//   - Initial catalog missing or invalid
//
// Recoverable errors (logged, reloading continues):
//   - Reload parse or validation failures
//   - Watcher errors
package app
