package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-oracle/internal/clients/gemini"
	geminimock "github.com/KirkDiggler/rpg-oracle/internal/clients/gemini/mock"
	"github.com/KirkDiggler/rpg-oracle/internal/entities"
	"github.com/KirkDiggler/rpg-oracle/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-oracle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-oracle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-oracle/internal/retry"
	"github.com/KirkDiggler/rpg-oracle/internal/testutils"
	"github.com/KirkDiggler/rpg-oracle/internal/testutils/mocks"
)

type PlayTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *geminimock.MockClient
	chat       *geminimock.MockChatSession
	out        *bytes.Buffer
	service    game.Service
	opts       entities.GameOptions
}

func TestPlaySuite(t *testing.T) {
	suite.Run(t, new(PlayTestSuite))
}

func (s *PlayTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = geminimock.NewMockClient(s.ctrl)
	s.chat = geminimock.NewMockChatSession(s.ctrl)
	s.out = &bytes.Buffer{}
	s.opts = entities.GameOptions{Language: "English"}

	service, err := game.NewOrchestrator(&game.Config{
		Client:      s.mockClient,
		IDGenerator: idgen.NewSequential("session"),
		Segments:    idgen.NewSegmentSequence(clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))),
		Retry:       retry.Config{MaxAttempts: 1, InitialDelay: time.Millisecond},
		OnChange:    newRenderer(s.out).Render,
	})
	s.Require().NoError(err)
	s.service = service

	sheet := testutils.CharacterSheet()
	mocks.ExpectCreation(s.mockClient, s.chat, s.opts,
		&gemini.CreateCharacterOutput{
			Sheet:    sheet,
			Labels:   testutils.Labels(),
			Settings: entities.GameSettings{Location: sheet.Location, Year: sheet.Year},
		},
		testutils.Portrait(),
		testutils.Turn("The archive lights flicker.", 0),
	)
}

func (s *PlayTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PlayTestSuite) TestPlay_NumberPicksChoiceUntilGameOver() {
	ending := testutils.Turn("The floor gives way.", -2)
	ending.Choices = nil
	ending.IsGameOver = true
	ending.GameOverText = testutils.Ptr("You wake up.")
	mocks.ExpectTurn(s.mockClient, s.chat, "I follow the sound.", ending)

	err := play(context.Background(), s.service, s.opts, strings.NewReader("2\n"), s.out)
	s.Require().NoError(err)

	out := s.out.String()
	s.Contains(out, "== "+testutils.TestCharacterName+" ==")
	s.Contains(out, "🔑 Brass key")
	s.Contains(out, "The archive lights flicker.")
	s.Contains(out, "  2. I follow the sound.")
	s.Contains(out, "[Stability 10/10]")
	s.Contains(out, "The floor gives way.")
	s.Contains(out, "--- You wake up. ---")
	s.Equal(1, strings.Count(out, "The archive lights flicker."))
	s.Equal(entities.StageGameOver, s.service.Snapshot().Stage)
}

func (s *PlayTestSuite) TestPlay_FreeTextAndQuit() {
	mocks.ExpectTurn(s.mockClient, s.chat, "I light a match.", testutils.Turn("Shadows recoil.", -1))

	err := play(context.Background(), s.service, s.opts, strings.NewReader("I light a match.\n\n/quit\n"), s.out)
	s.Require().NoError(err)

	snap := s.service.Snapshot()
	s.Equal(entities.StagePlaying, snap.Stage)
	s.Equal(9, snap.Character.Stability)
	s.Len(snap.Log, 3)
	s.Contains(s.out.String(), "[Stability 9/10]")
}

func (s *PlayTestSuite) TestPlay_InputEnds() {
	err := play(context.Background(), s.service, s.opts, strings.NewReader(""), s.out)
	s.Require().NoError(err)
	s.Equal(entities.StagePlaying, s.service.Snapshot().Stage)
}

func (s *PlayTestSuite) TestPlay_NoChoicesPromptsForFreeText() {
	bare := testutils.Turn("Silence.", 0)
	bare.Choices = nil
	mocks.ExpectTurn(s.mockClient, s.chat, "I listen.", bare)

	err := play(context.Background(), s.service, s.opts, strings.NewReader("I listen.\n/quit\n"), s.out)
	s.Require().NoError(err)

	s.Contains(s.out.String(), "(describe what you do)")
	s.Len(s.service.Snapshot().Log, 3)
}

func TestResolveInput(t *testing.T) {
	choices := testutils.Turn("", 0).Choices

	testCases := []struct {
		name string
		line string
		want string
		quit bool
	}{
		{name: "first choice", line: "1", want: "I stay where I am."},
		{name: "padded number", line: "  3 ", want: "I leave now."},
		{name: "out of range number", line: "7", want: "7"},
		{name: "free text", line: "I scream.", want: "I scream."},
		{name: "blank", line: "   ", want: ""},
		{name: "quit", line: "/QUIT", quit: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, quit := resolveInput(tc.line, choices)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.quit, quit)
		})
	}
}
