package transcript

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/rpg-oracle/internal/entities"
	"github.com/KirkDiggler/rpg-oracle/internal/errors"
	"github.com/KirkDiggler/rpg-oracle/internal/orchestrators/game"
)

const (
	portraitSize = 60.0
	lineHeight   = 5.5
)

var pdfImageTypes = map[string]string{
	"image/jpeg": "JPG",
	"image/jpg":  "JPG",
	"image/png":  "PNG",
	"image/gif":  "GIF",
}

// WritePDF renders snap as an A4 PDF with the portrait, the character sheet,
// and the story. Text outside cp1252 is replaced.
func WritePDF(w io.Writer, snap *game.Snapshot) error {
	if snap == nil || snap.Character == nil {
		return errors.FailedPrecondition("no game to export")
	}

	c := snap.Character
	l := labels(c)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(c.Name, true)
	pdf.SetCreator("rpg-oracle", true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Times", "B", 20)
	pdf.CellFormat(0, 10, tr(c.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Times", "I", 13)
	pdf.CellFormat(0, 7, tr(c.Archetype), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	addImage(pdf, "portrait", c.Portrait)
	if snap.FinalImage != nil {
		addImage(pdf, "final", snap.FinalImage)
	}

	pdf.SetFont("Times", "", 11)
	pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("%s: %s    %s: %s    %s: %d/%d",
		l.Location, c.Settings.Location, l.Year, c.Settings.Year, l.Stability, c.Stability, c.MaxStability)), "", "L", false)
	pdf.Ln(2)

	if c.Background != "" {
		pdf.MultiCell(0, lineHeight, tr(c.Background), "", "L", false)
		pdf.Ln(2)
	}

	section := func(heading string, lines []string) {
		pdf.SetFont("Times", "B", 12)
		pdf.CellFormat(0, 7, tr(heading), "", 1, "L", false, 0, "")
		pdf.SetFont("Times", "", 11)
		for _, line := range lines {
			pdf.MultiCell(0, lineHeight, tr("- "+line), "", "L", false)
		}
		pdf.Ln(2)
	}
	section(l.Advantages, traitTexts(c.Advantages))
	section(l.Disadvantages, traitTexts(c.Disadvantages))
	section(l.Inventory, itemTexts(c.Inventory))

	pdf.Ln(4)
	for _, seg := range snap.Log {
		text := strings.TrimLeft(seg.Text, "\n")
		if seg.IsPlayerChoice {
			pdf.SetFont("Times", "I", 11)
			text = "> " + text
		} else {
			pdf.SetFont("Times", "", 11)
		}
		pdf.MultiCell(0, lineHeight, tr(text), "", "L", false)
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return errors.Wrap(err, "failed to render pdf")
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// addImage places img on the page, skipping it when it cannot be decoded
func addImage(pdf *gofpdf.Fpdf, name string, img *entities.Image) {
	if img == nil || len(img.Data) == 0 {
		return
	}

	imageType, ok := pdfImageTypes[strings.ToLower(img.MIMEType)]
	if !ok {
		log.Warn().Str("mime_type", img.MIMEType).Msg("skipping image of unsupported type")
		return
	}

	opts := gofpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
	if pdf.Err() {
		log.Warn().Err(pdf.Error()).Str("image", name).Msg("skipping undecodable image")
		pdf.ClearError()
		return
	}

	pdf.ImageOptions(name, pdf.GetX(), pdf.GetY(), portraitSize, 0, true, opts, 0, "")
	pdf.Ln(3)
}

func traitTexts(traits []entities.Trait) []string {
	out := make([]string, len(traits))
	for i, t := range traits {
		out[i] = t.Text
	}
	return out
}

func itemTexts(items []entities.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Text
	}
	return out
}
