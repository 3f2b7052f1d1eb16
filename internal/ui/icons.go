package ui

import "strings"

// iconGlyphs maps lucide icon names used by catalog files to terminal glyphs.
var iconGlyphs = map[string]string{
	"message-square": "✉",
	"sliders":        "≡",
	"info":           "ℹ",
	"box":            "▣",
	"layout":         "▦",
	"type":           "¶",
	"arrow-right":    "→",
	"align-left":     "☰",
	"arrow-up":       "↑",
	"dollar-sign":    "$",
	"thumbs-up":      "★",
	"contact":        "☏",
}

const defaultGlyph = "◆"

// iconGlyph returns the glyph for a lucide icon name, falling back to a
// neutral marker for empty or unknown names.
func iconGlyph(name string) string {
	if g, ok := iconGlyphs[strings.ToLower(strings.TrimSpace(name))]; ok {
		return g
	}
	return defaultGlyph
}
