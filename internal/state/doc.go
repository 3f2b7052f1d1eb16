// Package state provides thread-safe state shared between the catalog
// reloader and the UI.
//
// # Overview
//
// The reloader (a file watcher or the polling fallback) publishes catalogs
// into a Store; the UI takes a Snapshot on its tick and swaps the catalog in
// when the version moved.
//
//	Producer (reloader):           Consumer (UI):
//	┌──────────────────┐          ┌──────────────────┐
//	│ catalog.Load...  │          │                  │
//	│      ↓           │          │                  │
//	│ store.Update()   │─────────→│ store.Snapshot() │
//	│      ↓           │ (mutex)  │      ↓           │
//	│  wait for change │          │ version changed? │
//	└──────────────────┘          └──────────────────┘
//
// # Update Semantics
//
//	// Success: publish, bump Version if the content differs
//	store.Update(cat, nil)
//
//	// Failure: keep the old catalog, record the error
//	store.Update(nil, err)
//	→ snapshot.Catalog = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// Catalogs are immutable, so snapshots share them; only the error value is
// copied.
//
// The zero Store is ready to use. Snapshot returns a zero Snapshot until the
// first Update.
package state
