// Package catalog provides the component descriptors shown by glassy.
//
// # Overview
//
// A Catalog is an immutable, ordered list of Descriptor values. Each
// descriptor carries the text rendered on a card and the route the card
// navigates to when activated. The page never edits a catalog; a reload
// produces a brand new value that replaces the old one.
//
// # Sources
//
//   - Default(): the bundled GlassyUI catalog (21 components, embedded JSON)
//   - LoadFile(path): a single .json, .yaml or .yml file
//   - LoadPattern(pattern): a path or doublestar glob; matches are merged in
//     lexical order
//
// # File Format
//
//	name: GlassyUI
//	components:
//	  - title: Buttons
//	    description: Sleek, customizable buttons with glassmorphic styling.
//	    icon: box
//	    route: /button-details
//	    status: new
//
// Titles are required and unique (case-insensitive). Routes are required and
// must start with "/". Validation reports every problem at once.
//
// # Hot Reload
//
// Watcher observes the directories behind a catalog source with fsnotify
// and calls back with the reloaded catalog after a short debounce. A failed
// reload is reported with a nil catalog so callers can keep the previous one.
package catalog
