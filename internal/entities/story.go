package entities

// Stage is where the game is in its lifecycle
type Stage string

// Stages
const (
	StageStart    Stage = "start"
	StageLoading  Stage = "loading"
	StagePlaying  Stage = "playing"
	StageGameOver Stage = "gameover"
	StageError    Stage = "error"
)

// StorySegment is one entry of the transcript
type StorySegment struct {
	ID             int64  `json:"id"`
	Text           string `json:"text"`
	IsPlayerChoice bool   `json:"isPlayerChoice,omitempty"`
}

// Choice is an option offered for the current turn only
type Choice struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}
