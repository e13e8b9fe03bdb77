package gemini

import "github.com/google/generative-ai-go/genai"

// TurnSchema is the response schema every narrative turn must follow
func TurnSchema() *genai.Schema {
	nullableString := func(description string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: description, Nullable: true}
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"storyText": {
				Type: genai.TypeString,
				Description: "A detailed, atmospheric narrative in the second person ('You see...', 'You feel...'). " +
					"Describe the scene, events and sensations. Separate distinct moments into paragraphs with newline characters. " +
					"It should be evocative and unsettling.",
			},
			"choices": {
				Type: genai.TypeArray,
				Description: "2 to 4 distinct choices for the player, each phrased in the first person as the character's intent, " +
					"for example 'I will inspect the strange symbol on the wall.'",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"id":   {Type: genai.TypeInteger},
						"text": {Type: genai.TypeString},
					},
					Required: []string{"id", "text"},
				},
			},
			"characterUpdate": {
				Type:        genai.TypeObject,
				Description: "Updates to the player's character sheet. Use 0 if no change.",
				Properties: map[string]*genai.Schema{
					"stabilityChange": {
						Type:        genai.TypeInteger,
						Description: "Change in the character's Stability. Can be positive or negative.",
					},
					"newItem":      nullableString("A new item added to the character's inventory, if any. Null otherwise."),
					"removeItem":   nullableString("An item removed from the character's inventory, if any. Null otherwise."),
					"statusEffect": nullableString("A new short-term status effect or observation for the player. Null otherwise."),
				},
				Required: []string{"stabilityChange", "newItem", "removeItem", "statusEffect"},
			},
			"isGameOver": {
				Type:        genai.TypeBoolean,
				Description: "True if the story has reached a definitive end, good or bad.",
			},
			"gameOverText": nullableString("If isGameOver is true, the final outcome. Null otherwise."),
			"finalPortraitPrompt": nullableString(
				"If isGameOver is true, a detailed prompt for an image editor to modify the existing portrait to reflect " +
					"the character's final state and surroundings. Safe for work, no sensitive or violent terms. " +
					"E.g. 'Make the man's eyes look hollow and add rain dripping down his face.' Null otherwise."),
		},
		Required: []string{"storyText", "choices", "characterUpdate", "isGameOver", "gameOverText", "finalPortraitPrompt"},
	}
}
