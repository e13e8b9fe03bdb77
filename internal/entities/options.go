package entities

import "strings"

// Random asks the generator to pick a value itself
const Random = "Random"

// DefaultLanguage is used when no language was chosen
const DefaultLanguage = "English"

// GameOptions are the player's choices on the start screen
type GameOptions struct {
	Language string
	Location string
	Year     string
	Gender   string
	Age      string
}

// IsRandom reports whether v is empty or the Random sentinel
func IsRandom(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, Random)
}

// Normalize trims every field and replaces empty ones with Random
func (o GameOptions) Normalize() GameOptions {
	norm := func(v string) string {
		if IsRandom(v) {
			return Random
		}
		return strings.TrimSpace(v)
	}
	return GameOptions{
		Language: strings.TrimSpace(o.Language),
		Location: norm(o.Location),
		Year:     norm(o.Year),
		Gender:   norm(o.Gender),
		Age:      norm(o.Age),
	}
}
