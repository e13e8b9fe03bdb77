package testutils

import (
	"github.com/KirkDiggler/rpg-oracle/internal/entities"
)

// TestCharacterName is the name on the default sheet fixture
const TestCharacterName = "Marek Nowak"

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

// CharacterSheet returns a generated sheet with English trait texts
func CharacterSheet() *entities.CharacterSheet {
	return &entities.CharacterSheet{
		Name:       TestCharacterName,
		Archetype:  "The Insomniac Archivist",
		Background: "Marek catalogues records nobody requests, in a building that should have been demolished.",
		Advantages: []entities.Trait{
			{Text: "Photographic memory", Icon: "book"},
			{Text: "Night owl", Icon: "time"},
		},
		Disadvantages: []entities.Trait{
			{Text: "Fear of mirrors", Icon: "fear"},
		},
		Inventory: []entities.Item{
			{Text: "Brass key", Icon: "key"},
			{Text: "Cassette recorder", Icon: "item"},
		},
		PortraitPrompt: "A gaunt archivist under sodium light, photorealistic noir portrait.",
		Location:       "Warsaw",
		Year:           "1985",
	}
}

// Labels returns English UI labels
func Labels() *entities.UILabels {
	return &entities.UILabels{
		Stability:      "Stability",
		Traits:         "Traits",
		Advantages:     "Advantages",
		Disadvantages:  "Disadvantages",
		Inventory:      "Inventory",
		Setting:        "Setting",
		Location:       "Location",
		Year:           "Year",
		TypeYourAction: "Type your action...",
	}
}

// Portrait returns a tiny JPEG-tagged image
func Portrait() *entities.Image {
	return &entities.Image{MIMEType: "image/jpeg", Data: []byte{0xFF, 0xD8, 0xFF, 0xD9}}
}

// Turn returns a non-terminal turn with three choices and the given
// stability change
func Turn(story string, stabilityChange int) *entities.TurnResponse {
	return &entities.TurnResponse{
		StoryText: story,
		Choices: []entities.Choice{
			{ID: 1, Text: "I stay where I am."},
			{ID: 2, Text: "I follow the sound."},
			{ID: 3, Text: "I leave now."},
		},
		CharacterUpdate: entities.CharacterUpdate{StabilityChange: stabilityChange},
	}
}
