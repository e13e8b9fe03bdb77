package game

import (
	"github.com/KirkDiggler/rpg-oracle/internal/clients/gemini"
	"github.com/KirkDiggler/rpg-oracle/internal/entities"
)

// StartGameInput defines the request for starting a game
type StartGameInput struct {
	Options entities.GameOptions
}

// StartGameOutput defines the response for starting a game
type StartGameOutput struct {
	Snapshot *Snapshot
}

// SubmitChoiceInput defines the request for playing one turn. Text is either
// a choice's text or a free-form action.
type SubmitChoiceInput struct {
	Text string
}

// SubmitChoiceOutput defines the response for playing one turn
type SubmitChoiceOutput struct {
	// Accepted is false when the call was ignored because no turn could be
	// taken: the game was not in play, or the text was blank.
	Accepted bool
	Snapshot *Snapshot
}

// Session is the per-game context threaded through every turn
type Session struct {
	ID   string
	Chat gemini.ChatSession
}

// InventorySignal records a newItem/removeItem a turn asked for. These are
// not applied to the character's inventory.
type InventorySignal struct {
	Turn       int
	NewItem    string
	RemoveItem string
}

// Snapshot is a copy of the game state safe to read without the lock
type Snapshot struct {
	Stage            entities.Stage
	Character        *entities.Character
	Log              []entities.StorySegment
	Choices          []entities.Choice
	ErrorMessage     string
	IsRetrying       bool
	FinalImage       *entities.Image
	SessionID        string
	Turns            int
	PendingInventory []InventorySignal
}

// LatestNarration returns the newest Oracle-authored segment text, which is
// what a narrator would read aloud.
func (s *Snapshot) LatestNarration() string {
	if s == nil {
		return ""
	}
	for i := len(s.Log) - 1; i >= 0; i-- {
		if !s.Log[i].IsPlayerChoice {
			return s.Log[i].Text
		}
	}
	return ""
}
