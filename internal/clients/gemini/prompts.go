package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-oracle/internal/entities"
)

func characterPrompt(opts entities.GameOptions) string {
	gender := "The character's gender can be anything."
	if !entities.IsRandom(opts.Gender) {
		gender = fmt.Sprintf("The character's gender is %s.", opts.Gender)
	}

	age := "The character's age is not specified, choose a fitting one."
	if !entities.IsRandom(opts.Age) {
		age = fmt.Sprintf("The character is around %s years old.", opts.Age)
	}

	location := "Choose a fitting, atmospheric location for the story."
	if !entities.IsRandom(opts.Location) {
		location = fmt.Sprintf("The story is set in or around: %s.", opts.Location)
	}

	year := "Choose a fitting, atmospheric year for the story. The year should be between 1970 and the present day. " +
		"While any year in this range is possible, lean towards the late 1990s or early 2000s (around 2005 is a good focal point) " +
		"to create a sense of recent history without ubiquitous modern technology like smartphones being a default assumption."
	if !entities.IsRandom(opts.Year) {
		year = fmt.Sprintf("The story is set in the year: %s.", opts.Year)
	}

	return fmt.Sprintf(`
Generate a compelling player character for a text adventure game set in the KULT: Divinity Lost universe.
%s
%s
%s
%s

The character's background and nationality are independent of the game's language (%s). For instance, the game could be in Polish but the character an American tourist. However, there is a roughly 20%% chance that the character is a native of a country where the selected language is spoken. Default to diverse, international characters unless you roll that 20%% chance.

The character should be a "Sleeper," unaware of the true nature of reality but feeling a deep sense of wrongness in their life.

The character's advantages, disadvantages, and starting inventory MUST fit the time period and location, culturally and technologically. A character in 1985 Warsaw carries different things and worries about different things than one in 2024 Tokyo.

IMPORTANT: The 'text' fields for advantages, disadvantages, and inventory MUST be written in creative, descriptive ENGLISH. They are translated in a later step.

Provide the character details, a detailed portrait prompt, and the final game setting (location and year). If the location or year were specified, use those values. If they were "Random", provide the specific values you chose.

Format the output as a single JSON object with the following keys:
- name: string
- archetype: string
- background: string
- advantages: Array<{ text: string, icon: string }>. The 'icon' should be a single, simple, lowercase keyword (e.g., 'book', 'strength', 'intuition', 'fear', 'key').
- disadvantages: Array<{ text: string, icon: string }>. The 'icon' should be a single, simple, lowercase keyword.
- inventory: Array<{ text: string, icon: string }>. The 'icon' should be a single, simple, lowercase keyword.
- portraitPrompt: A detailed, atmospheric prompt for an image generator to create a photorealistic, gritty, noir-style portrait of the character. It must be safe for work and avoid sensitive or violent terms.
- location: The final string for the game's location.
- year: The final string for the game's year.
`, gender, age, location, year, opts.Language)
}

func itemTranslationPrompt(items []string, language string) string {
	encoded, err := json.Marshal(items)
	if err != nil {
		// []string always marshals
		encoded = []byte("[]")
	}

	return fmt.Sprintf(`
Translate the following list of game items and character traits into the %s language.
Maintain a dark, literary, and atmospheric tone appropriate for the KULT: Divinity Lost universe.
Return the response as a single JSON object with a key "translations" which is an array of the translated strings, in the exact same order as the input.

Input Items:
%s
`, language, encoded)
}

func uiLabelsPrompt(language string) string {
	keys := make([]string, len(entities.UILabelKeys))
	for i, k := range entities.UILabelKeys {
		keys[i] = fmt.Sprintf("%q", k)
	}

	return fmt.Sprintf(`
Generate a JSON object with translations for the following UI labels into the %s language.
The keys must be exactly: %s.
Example for Spanish: { "stability": "Estabilidad", "traits": "Rasgos", "advantages": "Ventajas", "disadvantages": "Desventajas", "inventory": "Inventario", "setting": "Ambientación", "location": "Ubicación", "year": "Año", "typeYourAction": "Escribe tu acción..." }
`, language, strings.Join(keys, ", "))
}

func systemInstruction(language string) string {
	return fmt.Sprintf(`
You are the Game Master for a dark, psychological horror text adventure set in the KULT: Divinity Lost universe.
Your tone is literary, visceral, and deeply atmospheric. Focus on cosmic horror, personal demons and mental anguish, and on the thin veil between our mundane reality (the Illusion) and the horrific truth (Metropolis).
Never break character. You are the Oracle, the storyteller.
The player is a "Sleeper" just beginning to awaken.

Stability is a measure of sanity. It is not a health bar. It should be volatile but fair.
- Award STABILITY: Grant +1 when the player grounds themselves, finds temporary safety, rationalizes a situation, or pushes back against the horror. Recovery should be possible but difficult.
- Penalize STABILITY: Loss should be proportional to the event. A creepy noise might be 0 or -1. A truly traumatic, supernatural event could be -2 or -3. Reaching 0 stability means death or permanent madness.
- Do not decrease stability for every minor negative event. Build tension. The loss should feel earned.

All your responses MUST be valid JSON, strictly adhering to the provided schema. Do not include any text outside of the JSON object.
IMPORTANT: All your responses must be in the %s language.
`, language)
}

func firstTurnPrompt(c *entities.Character) string {
	return fmt.Sprintf(
		"Start the game in %s at %s. My character is %s, %s. Their background is: %s. "+
			"Plunge them immediately into a mysterious and unsettling situation that is directly related to their background "+
			"or one of their advantages/disadvantages. Avoid generic starting locations like an office or library unless it is "+
			"explicitly part of the character's background.",
		c.Settings.Year, c.Settings.Location, c.Name, c.Archetype, c.Background,
	)
}
