package gemini

import "github.com/KirkDiggler/rpg-oracle/internal/entities"

// CreateCharacterInput is the input for CreateCharacter
type CreateCharacterInput struct {
	Options entities.GameOptions
}

// CreateCharacterOutput is the assembled result of character creation.
// Trait and item texts are in the game language when a translation ran.
type CreateCharacterOutput struct {
	Sheet    *entities.CharacterSheet
	Labels   *entities.UILabels
	Settings entities.GameSettings
	// Translated is false for English games and when the translation was
	// rejected for returning the wrong number of strings.
	Translated bool
}
