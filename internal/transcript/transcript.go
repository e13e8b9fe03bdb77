// Package transcript exports a finished or in-progress game as text or PDF
package transcript

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/rpg-oracle/internal/entities"
	"github.com/KirkDiggler/rpg-oracle/internal/errors"
	"github.com/KirkDiggler/rpg-oracle/internal/orchestrators/game"
)

// Formats accepted by Write
const (
	FormatText = "text"
	FormatPDF  = "pdf"
)

// Write renders snap in format
func Write(w io.Writer, format string, snap *game.Snapshot) error {
	switch strings.ToLower(format) {
	case FormatText, "txt":
		return WriteText(w, snap)
	case FormatPDF:
		return WritePDF(w, snap)
	default:
		return errors.InvalidArgumentf("unknown transcript format %q", format)
	}
}

// labels falls back to English for any label the game did not localize
func labels(c *entities.Character) entities.UILabels {
	l := c.Labels
	def := func(v *string, fallback string) {
		if strings.TrimSpace(*v) == "" {
			*v = fallback
		}
	}
	def(&l.Stability, "Stability")
	def(&l.Traits, "Traits")
	def(&l.Advantages, "Advantages")
	def(&l.Disadvantages, "Disadvantages")
	def(&l.Inventory, "Inventory")
	def(&l.Setting, "Setting")
	def(&l.Location, "Location")
	def(&l.Year, "Year")
	return l
}

// WriteText renders snap as plain text. Player actions are prefixed "> ".
func WriteText(w io.Writer, snap *game.Snapshot) error {
	if snap == nil || snap.Character == nil {
		return errors.FailedPrecondition("no game to export")
	}

	c := snap.Character
	l := labels(c)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s, %s\n", c.Name, c.Archetype)
	fmt.Fprintf(&sb, "%s: %s, %s: %s\n", l.Location, c.Settings.Location, l.Year, c.Settings.Year)
	fmt.Fprintf(&sb, "%s: %d/%d\n\n", l.Stability, c.Stability, c.MaxStability)

	if c.Background != "" {
		fmt.Fprintf(&sb, "%s\n\n", c.Background)
	}

	writeTraits(&sb, l.Advantages, c.Advantages, entities.IconAdvantage)
	writeTraits(&sb, l.Disadvantages, c.Disadvantages, entities.IconDisadvantage)

	fmt.Fprintf(&sb, "%s:\n", l.Inventory)
	for _, item := range c.Inventory {
		fmt.Fprintf(&sb, "  %s %s\n", entities.Glyph(item.Icon, entities.IconItem), item.Text)
	}
	sb.WriteString("\n")

	for _, seg := range snap.Log {
		if seg.IsPlayerChoice {
			fmt.Fprintf(&sb, "> %s\n\n", seg.Text)
			continue
		}
		fmt.Fprintf(&sb, "%s\n\n", strings.TrimLeft(seg.Text, "\n"))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTraits(sb *strings.Builder, heading string, traits []entities.Trait, fallback string) {
	fmt.Fprintf(sb, "%s:\n", heading)
	for _, t := range traits {
		fmt.Fprintf(sb, "  %s %s\n", entities.Glyph(t.Icon, fallback), t.Text)
	}
	sb.WriteString("\n")
}
