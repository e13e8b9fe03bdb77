package entities

import "strings"

// Icon fallbacks per sheet section
const (
	IconAdvantage    = "advantage"
	IconDisadvantage = "disadvantage"
	IconItem         = "item"
)

var glyphs = map[string]string{
	"strength": "⚡", "power": "⚡", "strong": "⚡", "might": "⚡", "energy": "⚡", "bolt": "⚡",
	"book": "📖", "knowledge": "📖", "lore": "📖", "academic": "📖", "journal": "📖",
	"key": "🔑", "lock": "🔑", "secret": "🔑", "access": "🔑",
	"advantage":    "✦",
	"disadvantage": "☠", "fear": "☠", "phobia": "☠",
	"item": "◆", "object": "◆",
	"location": "📍", "map": "📍", "pin": "📍",
	"time": "⌛", "year": "⌛", "date": "⌛", "calendar": "⌛",
}

const defaultGlyph = "•"

// Glyph maps an icon keyword to a display glyph. An empty keyword uses
// fallback, and an unknown one the default glyph.
func Glyph(icon, fallback string) string {
	key := strings.ToLower(strings.TrimSpace(icon))
	if key == "" {
		key = fallback
	}
	if g, ok := glyphs[key]; ok {
		return g
	}
	return defaultGlyph
}
