// Package game implements the Oracle's game state machine
package game

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/rpg-oracle/internal/clients/gemini"
	"github.com/KirkDiggler/rpg-oracle/internal/entities"
	"github.com/KirkDiggler/rpg-oracle/internal/errors"
	"github.com/KirkDiggler/rpg-oracle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-oracle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-oracle/internal/retry"
)

const (
	// SeveredPrefix starts every user-facing error message
	SeveredPrefix = "The connection to the Oracle has been severed."

	// ShatteredText closes a game that ended by running out of stability
	ShatteredText = "Your mind shatters. The Illusion collapses around you into a vortex of screaming madness. You are lost."
)

// Service defines the game operations
type Service interface {
	// StartGame creates the character and plays the opening scene
	// Returns errors.FailedPrecondition unless the game is at the start stage
	// Returns errors.InvalidArgument for unusable options
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// SubmitChoice plays one turn. It is ignored (Accepted false, nil error)
	// unless a game is in play.
	SubmitChoice(ctx context.Context, input *SubmitChoiceInput) (*SubmitChoiceOutput, error)

	// Snapshot returns a copy of the current state
	Snapshot() *Snapshot
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	Client      gemini.Client
	IDGenerator idgen.Generator

	// Segments issues story segment IDs. Defaults to one on the wall clock.
	Segments *idgen.SegmentSequence

	Retry retry.Config

	// OnChange, when set, receives a snapshot after every state transition.
	// It is called outside the lock and must not block for long.
	OnChange func(*Snapshot)
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	client   gemini.Client
	idGen    idgen.Generator
	segments *idgen.SegmentSequence
	retry    retry.Config
	onChange func(*Snapshot)

	mu         sync.Mutex
	stage      entities.Stage
	character  *entities.Character
	session    *Session
	log        []entities.StorySegment
	choices    []entities.Choice
	errMessage string
	retrying   bool
	finalImage *entities.Image
	turns      int
	pending    []InventorySignal
}

// NewOrchestrator creates a new game orchestrator at the start stage
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	segments := cfg.Segments
	if segments == nil {
		segments = idgen.NewSegmentSequence(clock.New())
	}

	return &orchestrator{
		client:   cfg.Client,
		idGen:    cfg.IDGenerator,
		segments: segments,
		retry:    cfg.Retry,
		onChange: cfg.OnChange,
		stage:    entities.StageStart,
	}, nil
}

// creation is everything StartGame assembles before touching state
type creation struct {
	character *entities.Character
	chat      gemini.ChatSession
	turn      *entities.TurnResponse
}

func (o *orchestrator) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	opts := input.Options.Normalize()

	o.mu.Lock()
	if o.stage != entities.StageStart {
		stage := o.stage
		o.mu.Unlock()
		return nil, errors.FailedPreconditionf("cannot start a game from stage %s", stage)
	}
	if opts.Language == "" {
		o.mu.Unlock()
		return nil, errors.InvalidArgument("language is required")
	}
	o.stage = entities.StageLoading
	o.errMessage = ""
	o.retrying = false
	o.commitLocked()

	log.Info().
		Str("language", opts.Language).
		Str("location", opts.Location).
		Str("year", opts.Year).
		Msg("starting game")

	created, err := retry.Do(ctx, o.retry, func(ctx context.Context) (*creation, error) {
		return o.create(ctx, opts)
	}, o.onRetry("start game"))
	if err != nil {
		o.fail(err, "game initialization")
		return nil, err
	}

	o.mu.Lock()
	o.character = created.character
	o.session = &Session{ID: o.idGen.Generate(), Chat: created.chat}
	o.log = []entities.StorySegment{{ID: o.segments.Next(), Text: created.turn.StoryText}}
	o.choices = append([]entities.Choice(nil), created.turn.Choices...)
	o.turns = 0
	o.stage = entities.StagePlaying
	o.retrying = false
	snap := o.commitLocked()

	log.Info().
		Str("session_id", snap.SessionID).
		Str("character", snap.Character.Name).
		Msg("game started")

	return &StartGameOutput{Snapshot: snap}, nil
}

// create runs the full creation flow. Any failure discards everything.
func (o *orchestrator) create(ctx context.Context, opts entities.GameOptions) (*creation, error) {
	out, err := o.client.CreateCharacter(ctx, &gemini.CreateCharacterInput{Options: opts})
	if err != nil {
		return nil, err
	}

	portrait, err := o.client.GeneratePortrait(ctx, out.Sheet.PortraitPrompt)
	if err != nil {
		return nil, err
	}

	character := entities.NewCharacter(out.Sheet, out.Labels, portrait)
	character.Settings = out.Settings

	chat, err := o.client.StartChat(ctx, opts.Language)
	if err != nil {
		return nil, err
	}

	turn, err := o.client.FirstTurn(ctx, chat, character)
	if err != nil {
		return nil, err
	}

	return &creation{character: character, chat: chat, turn: turn}, nil
}

func (o *orchestrator) SubmitChoice(ctx context.Context, input *SubmitChoiceInput) (*SubmitChoiceOutput, error) {
	text := ""
	if input != nil {
		text = strings.TrimSpace(input.Text)
	}

	o.mu.Lock()
	if o.stage != entities.StagePlaying || o.session == nil || text == "" {
		snap := o.snapshotLocked()
		o.mu.Unlock()
		return &SubmitChoiceOutput{Accepted: false, Snapshot: snap}, nil
	}

	o.stage = entities.StageLoading
	o.log = append(o.log, entities.StorySegment{ID: o.segments.Next(), Text: text, IsPlayerChoice: true})
	o.choices = nil
	o.retrying = false
	pre := o.character.Stability
	chat := o.session.Chat
	o.commitLocked()

	turn, err := retry.Do(ctx, o.retry, func(ctx context.Context) (*entities.TurnResponse, error) {
		return o.client.ContinueTurn(ctx, chat, text)
	}, o.onRetry("submit choice"))
	if err != nil {
		o.fail(err, "story progression")
		return nil, err
	}

	o.mu.Lock()
	o.turns++
	o.retrying = false

	// the delta applies to the stability seen when the turn was submitted
	o.character.Stability = pre
	final := o.character.ApplyStabilityDelta(turn.CharacterUpdate.StabilityChange)

	narration := turn.StoryText
	if effect := entities.StringValue(turn.CharacterUpdate.StatusEffect); effect != "" {
		narration += fmt.Sprintf("\n\n*%s*", effect)
	}
	o.log = append(o.log, entities.StorySegment{ID: o.segments.Next(), Text: narration})

	newItem := entities.StringValue(turn.CharacterUpdate.NewItem)
	removeItem := entities.StringValue(turn.CharacterUpdate.RemoveItem)
	if newItem != "" || removeItem != "" {
		o.pending = append(o.pending, InventorySignal{Turn: o.turns, NewItem: newItem, RemoveItem: removeItem})
	}

	gameOver := turn.IsGameOver || final == 0
	var (
		editPrompt string
		portrait   *entities.Image
	)

	if gameOver {
		ending := ShatteredText
		if turn.IsGameOver {
			if t := strings.TrimSpace(entities.StringValue(turn.GameOverText)); t != "" {
				ending = t
			}
		}
		o.log = append(o.log, entities.StorySegment{ID: o.segments.Next(), Text: fmt.Sprintf("\n--- %s ---", ending)})
		o.choices = nil
		o.stage = entities.StageGameOver
		editPrompt = strings.TrimSpace(entities.StringValue(turn.FinalPortraitPrompt))
		portrait = o.character.Portrait
	} else {
		o.choices = append([]entities.Choice(nil), turn.Choices...)
		o.stage = entities.StagePlaying
	}
	sessionID := o.session.ID
	snap := o.commitLocked()

	log.Info().
		Str("session_id", sessionID).
		Int("turn", snap.Turns).
		Int("stability", final).
		Str("stage", string(snap.Stage)).
		Msg("turn resolved")

	if gameOver && editPrompt != "" && portrait != nil {
		if img := o.finalPortrait(ctx, portrait, editPrompt); img != nil {
			snap = o.setFinalImage(img)
		}
	}

	return &SubmitChoiceOutput{Accepted: true, Snapshot: snap}, nil
}

// finalPortrait makes one edit attempt. Failure only costs the image.
func (o *orchestrator) finalPortrait(ctx context.Context, portrait *entities.Image, prompt string) *entities.Image {
	img, err := o.client.EditPortrait(ctx, portrait, prompt)
	if err != nil {
		log.Warn().Err(err).Msg("final portrait edit failed")
		return nil
	}
	return img
}

func (o *orchestrator) setFinalImage(img *entities.Image) *Snapshot {
	o.mu.Lock()
	o.finalImage = img
	return o.commitLocked()
}

func (o *orchestrator) onRetry(operation string) retry.NotifyFunc {
	return func(attempt int, err error, delay time.Duration) {
		log.Warn().
			Err(err).
			Str("operation", operation).
			Int("attempt", attempt).
			Dur("delay", delay).
			Msg("the Oracle is slow to answer")

		o.mu.Lock()
		if o.retrying {
			o.mu.Unlock()
			return
		}
		o.retrying = true
		o.commitLocked()
	}
}

func (o *orchestrator) fail(err error, operation string) {
	log.Error().Err(err).Str("operation", operation).Msg("the Oracle is unreachable")

	o.mu.Lock()
	o.stage = entities.StageError
	o.errMessage = fmt.Sprintf("%s %s", SeveredPrefix, errors.GetMessage(err))
	o.retrying = false
	o.choices = nil
	o.commitLocked()
}

func (o *orchestrator) Snapshot() *Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

// commitLocked snapshots the state, releases the lock, and notifies the
// listener. The caller must hold o.mu.
func (o *orchestrator) commitLocked() *Snapshot {
	snap := o.snapshotLocked()
	o.mu.Unlock()

	if o.onChange != nil {
		o.onChange(snap)
	}
	return snap
}

func (o *orchestrator) snapshotLocked() *Snapshot {
	snap := &Snapshot{
		Stage:            o.stage,
		Character:        o.character.Clone(),
		Log:              append([]entities.StorySegment(nil), o.log...),
		Choices:          append([]entities.Choice(nil), o.choices...),
		ErrorMessage:     o.errMessage,
		IsRetrying:       o.retrying,
		FinalImage:       o.finalImage,
		Turns:            o.turns,
		PendingInventory: append([]InventorySignal(nil), o.pending...),
	}
	if o.session != nil {
		snap.SessionID = o.session.ID
	}
	return snap
}
