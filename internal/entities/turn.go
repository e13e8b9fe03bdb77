package entities

// CharacterUpdate is the change a turn asks for. Zero and nil mean no change.
type CharacterUpdate struct {
	StabilityChange int     `json:"stabilityChange"`
	NewItem         *string `json:"newItem"`
	RemoveItem      *string `json:"removeItem"`
	StatusEffect    *string `json:"statusEffect"`
}

// TurnResponse is one structured narrative turn from the Oracle
type TurnResponse struct {
	StoryText           string          `json:"storyText"`
	Choices             []Choice        `json:"choices"`
	CharacterUpdate     CharacterUpdate `json:"characterUpdate"`
	IsGameOver          bool            `json:"isGameOver"`
	GameOverText        *string         `json:"gameOverText"`
	FinalPortraitPrompt *string         `json:"finalPortraitPrompt,omitempty"`
}

// TurnResponseKeys lists the gjson paths every turn must contain. The
// characterUpdate fields may be null but not absent. gameOverText and
// finalPortraitPrompt are tolerated when absent.
var TurnResponseKeys = []string{
	"storyText", "choices", "characterUpdate", "isGameOver",
	"characterUpdate.stabilityChange",
	"characterUpdate.newItem",
	"characterUpdate.removeItem",
	"characterUpdate.statusEffect",
}

// ItemTranslations is the payload of the item translation call
type ItemTranslations struct {
	Translations []string `json:"translations"`
}

// StringValue dereferences s, returning "" for nil
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
