// Package ui provides the terminal user interface for browsing a component
// catalog.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns the bubbles widgets (search
// field, body viewport, help footer) and delegates page state to a
// browse.Page, so filtering, pagination and activation live outside the
// rendering code.
//
// # Package Structure
//
//   - app.go: Model, Options, Init/Update/View and the Run function
//   - navigation.go: catalog and route key handling, card cursor
//   - search.go: search field focus and query propagation
//   - body.go: hero, card grid, empty state and pager inside the viewport
//   - card.go: card and grid rendering
//   - header.go: site bar, catalog status line and footer
//   - route.go: placeholder shown after navigating away
//   - activity.go: tail of the application log
//   - help.go, keys.go: help overlay and key bindings
//   - theme.go, style_helpers.go: color themes and lipgloss helpers
//
// # Views
//
//   - Catalog: header, scrollable body (hero, grid of up to nine cards,
//     Previous/Next with "Page X of Y"), key help footer
//   - Route: the destination a card or the site title navigated to; esc
//     returns to a freshly built catalog page
//   - Activity: the last lines of glassy's own log, refreshed on each tick;
//     esc goes back to whichever view opened it
//
// # Event Flow
//
//  1. Run() builds the Model and starts the program in the alt screen
//  2. A tick fetches state.Store snapshots; a newer catalog version is
//     swapped into the page, keeping the query and page number
//  3. Key presses mutate the page or the widgets and re-render the body
//
// # Usage Example
//
//	err := ui.Run(ui.Options{
//		Context:   ctx,
//		Store:     store,
//		Router:    nav.NewRouter(logger),
//		Logger:    logger,
//		ThemeName: "Glass",
//	})
package ui
