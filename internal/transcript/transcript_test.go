package transcript_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-oracle/internal/entities"
	"github.com/KirkDiggler/rpg-oracle/internal/errors"
	"github.com/KirkDiggler/rpg-oracle/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-oracle/internal/testutils"
	"github.com/KirkDiggler/rpg-oracle/internal/transcript"
)

func finishedGame(portrait *entities.Image) *game.Snapshot {
	c := entities.NewCharacter(testutils.CharacterSheet(), testutils.Labels(), portrait)
	c.Stability = 0

	return &game.Snapshot{
		Stage:     entities.StageGameOver,
		Character: c,
		Log: []entities.StorySegment{
			{ID: 1, Text: "Rain hammers the archive windows."},
			{ID: 2, Text: "I open the drawer.", IsPlayerChoice: true},
			{ID: 3, Text: "A photograph of you, dated tomorrow.\n\n*Cold sweat*"},
			{ID: 4, Text: "\n--- " + game.ShatteredText + " ---"},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, transcript.WriteText(&buf, finishedGame(nil)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Marek Nowak, The Insomniac Archivist\n"))
	assert.Contains(t, out, "Location: Warsaw, Year: 1985")
	assert.Contains(t, out, "Stability: 0/10")
	assert.Contains(t, out, "  📖 Photographic memory\n")
	assert.Contains(t, out, "  ☠ Fear of mirrors\n")
	assert.Contains(t, out, "  🔑 Brass key\n")
	assert.Contains(t, out, "> I open the drawer.\n")
	assert.Contains(t, out, "*Cold sweat*")
	assert.Contains(t, out, "--- "+game.ShatteredText+" ---")

	drawer := strings.Index(out, "> I open the drawer.")
	photo := strings.Index(out, "A photograph of you")
	assert.Less(t, drawer, photo)
}

func TestWriteText_LocalizedLabels(t *testing.T) {
	snap := finishedGame(nil)
	snap.Character.Labels = entities.UILabels{Stability: "Stabilność", Inventory: "Ekwipunek"}

	var buf bytes.Buffer
	require.NoError(t, transcript.WriteText(&buf, snap))

	assert.Contains(t, buf.String(), "Stabilność: 0/10")
	assert.Contains(t, buf.String(), "Ekwipunek:\n")
	assert.Contains(t, buf.String(), "Advantages:\n")
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, transcript.WritePDF(&buf, finishedGame(nil)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWritePDF_WithPortrait(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: 10, B: uint8(y * 30), A: 255})
		}
	}
	var pngBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, img))

	var without, with bytes.Buffer
	require.NoError(t, transcript.WritePDF(&without, finishedGame(nil)))
	require.NoError(t, transcript.WritePDF(&with, finishedGame(&entities.Image{MIMEType: "image/png", Data: pngBuf.Bytes()})))

	assert.Greater(t, with.Len(), without.Len())
}

func TestWritePDF_UndecodablePortraitIsSkipped(t *testing.T) {
	var buf bytes.Buffer
	err := transcript.WritePDF(&buf, finishedGame(&entities.Image{MIMEType: "image/jpeg", Data: []byte("not a jpeg")}))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := transcript.Write(&buf, "docx", finishedGame(nil))
	assert.True(t, errors.IsInvalidArgument(err))

	require.NoError(t, transcript.Write(&buf, "TEXT", finishedGame(nil)))
	assert.NotEmpty(t, buf.String())
}

func TestWrite_NoGame(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, errors.IsFailedPrecondition(transcript.WriteText(&buf, nil)))
	assert.True(t, errors.IsFailedPrecondition(transcript.WritePDF(&buf, &game.Snapshot{})))
}
