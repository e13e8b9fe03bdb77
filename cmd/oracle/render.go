package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/KirkDiggler/rpg-oracle/internal/entities"
	"github.com/KirkDiggler/rpg-oracle/internal/orchestrators/game"
)

// renderer prints each snapshot's news: segments not yet shown, the
// character sheet once, stage changes and the current choices.
type renderer struct {
	out io.Writer

	mu          sync.Mutex
	lastSegment int64
	sheetShown  bool
	stage       entities.Stage
	retrying    bool
}

func newRenderer(out io.Writer) *renderer {
	return &renderer{out: out}
}

// Render is a game.Config OnChange listener
func (r *renderer) Render(snap *game.Snapshot) {
	if snap == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder

	if snap.Character != nil && !r.sheetShown {
		writeSheet(&sb, snap.Character)
		r.sheetShown = true
	}

	for _, seg := range snap.Log {
		if seg.ID <= r.lastSegment {
			continue
		}
		r.lastSegment = seg.ID
		if seg.IsPlayerChoice {
			continue
		}
		fmt.Fprintf(&sb, "\n%s\n", strings.TrimLeft(seg.Text, "\n"))
	}

	if snap.IsRetrying && !r.retrying {
		sb.WriteString("\n(The Oracle falters and reaches out again...)\n")
	}
	r.retrying = snap.IsRetrying

	if snap.Stage != r.stage {
		switch snap.Stage {
		case entities.StagePlaying:
			c := snap.Character
			fmt.Fprintf(&sb, "\n[%s %d/%d]\n", stabilityLabel(c), c.Stability, c.MaxStability)
			for i, choice := range snap.Choices {
				fmt.Fprintf(&sb, "  %d. %s\n", i+1, choice.Text)
			}
			if len(snap.Choices) == 0 {
				sb.WriteString("  (describe what you do)\n")
			}
		case entities.StageGameOver:
			if snap.FinalImage == nil {
				sb.WriteString("\nThe story is over.\n")
			}
		case entities.StageError:
			fmt.Fprintf(&sb, "\n%s\n", snap.ErrorMessage)
		}
		r.stage = snap.Stage
	} else if snap.Stage == entities.StageGameOver && snap.FinalImage != nil {
		sb.WriteString("\nA last portrait has been taken of you.\n")
	}

	_, _ = io.WriteString(r.out, sb.String())
}

func stabilityLabel(c *entities.Character) string {
	if c.Labels.Stability != "" {
		return c.Labels.Stability
	}
	return "Stability"
}

func writeSheet(sb *strings.Builder, c *entities.Character) {
	fmt.Fprintf(sb, "\n== %s ==\n%s\n", c.Name, c.Archetype)
	fmt.Fprintf(sb, "%s, %s\n\n%s\n\n", c.Settings.Location, c.Settings.Year, c.Background)

	for _, t := range c.Advantages {
		fmt.Fprintf(sb, "  %s %s\n", entities.Glyph(t.Icon, entities.IconAdvantage), t.Text)
	}
	for _, t := range c.Disadvantages {
		fmt.Fprintf(sb, "  %s %s\n", entities.Glyph(t.Icon, entities.IconDisadvantage), t.Text)
	}
	for _, item := range c.Inventory {
		fmt.Fprintf(sb, "  %s %s\n", entities.Glyph(item.Icon, entities.IconItem), item.Text)
	}
}
