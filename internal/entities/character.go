package entities

import (
	"encoding/base64"
	"fmt"
)

// MaxStability is the stability ceiling every character is created with
const MaxStability = 10

// Trait is an advantage or disadvantage on the character sheet
type Trait struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// Item is something the character carries
type Item struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// Image is a binary image payload with its MIME type
type Image struct {
	MIMEType string
	Data     []byte
}

// DataURI renders the image as a data URI
func (i *Image) DataURI() string {
	if i == nil {
		return ""
	}
	return fmt.Sprintf("data:%s;base64,%s", i.MIMEType, base64.StdEncoding.EncodeToString(i.Data))
}

// UILabels are the interface strings localized once per game
type UILabels struct {
	Stability      string `json:"stability"`
	Traits         string `json:"traits"`
	Advantages     string `json:"advantages"`
	Disadvantages  string `json:"disadvantages"`
	Inventory      string `json:"inventory"`
	Setting        string `json:"setting"`
	Location       string `json:"location"`
	Year           string `json:"year"`
	TypeYourAction string `json:"typeYourAction"`
}

// UILabelKeys lists the keys a label payload must contain
var UILabelKeys = []string{
	"stability", "traits", "advantages", "disadvantages", "inventory",
	"setting", "location", "year", "typeYourAction",
}

// GameSettings holds the location and year the generator settled on
type GameSettings struct {
	Location string `json:"location"`
	Year     string `json:"year"`
}

// CharacterSheet is the payload of the character generation call
type CharacterSheet struct {
	Name           string  `json:"name"`
	Archetype      string  `json:"archetype"`
	Background     string  `json:"background"`
	Advantages     []Trait `json:"advantages"`
	Disadvantages  []Trait `json:"disadvantages"`
	Inventory      []Item  `json:"inventory"`
	PortraitPrompt string  `json:"portraitPrompt"`
	Location       string  `json:"location"`
	Year           string  `json:"year"`
}

// CharacterSheetKeys lists the keys a character payload must contain
var CharacterSheetKeys = []string{
	"name", "archetype", "background", "advantages", "disadvantages",
	"inventory", "portraitPrompt", "location", "year",
}

// Character is the player's entity for one game
type Character struct {
	Name           string
	Archetype      string
	Background     string
	Portrait       *Image
	PortraitPrompt string
	Advantages     []Trait
	Disadvantages  []Trait
	Inventory      []Item
	Stability      int
	MaxStability   int
	Labels         UILabels
	Settings       GameSettings
}

// NewCharacter assembles a character at full stability from its generated parts
func NewCharacter(sheet *CharacterSheet, labels *UILabels, portrait *Image) *Character {
	c := &Character{
		Name:           sheet.Name,
		Archetype:      sheet.Archetype,
		Background:     sheet.Background,
		Portrait:       portrait,
		PortraitPrompt: sheet.PortraitPrompt,
		Advantages:     append([]Trait(nil), sheet.Advantages...),
		Disadvantages:  append([]Trait(nil), sheet.Disadvantages...),
		Inventory:      append([]Item(nil), sheet.Inventory...),
		Stability:      MaxStability,
		MaxStability:   MaxStability,
		Settings: GameSettings{
			Location: sheet.Location,
			Year:     sheet.Year,
		},
	}
	if labels != nil {
		c.Labels = *labels
	}
	return c
}

// ClampStability returns current+delta bounded to [0, max]
func ClampStability(current, delta, max int) int {
	next := current + delta
	if next < 0 {
		return 0
	}
	if next > max {
		return max
	}
	return next
}

// ApplyStabilityDelta moves stability by delta, clamped, and returns the result
func (c *Character) ApplyStabilityDelta(delta int) int {
	c.Stability = ClampStability(c.Stability, delta, c.MaxStability)
	return c.Stability
}

// Clone returns a copy that shares nothing mutable with c.
// Portrait bytes are never written after creation and are shared.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.Advantages = append([]Trait(nil), c.Advantages...)
	out.Disadvantages = append([]Trait(nil), c.Disadvantages...)
	out.Inventory = append([]Item(nil), c.Inventory...)
	return &out
}
