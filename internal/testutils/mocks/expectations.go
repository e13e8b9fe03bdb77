// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-oracle/internal/clients/gemini"
	geminimock "github.com/KirkDiggler/rpg-oracle/internal/clients/gemini/mock"
	"github.com/KirkDiggler/rpg-oracle/internal/entities"
)

// ExpectCreation sets up one successful pass of the creation flow: the
// character, its portrait, the chat, and the opening turn, in that order.
func ExpectCreation(
	mockClient *geminimock.MockClient, chat gemini.ChatSession,
	opts entities.GameOptions, out *gemini.CreateCharacterOutput,
	portrait *entities.Image, first *entities.TurnResponse,
) {
	gomock.InOrder(
		mockClient.EXPECT().
			CreateCharacter(gomock.Any(), &gemini.CreateCharacterInput{Options: opts.Normalize()}).
			Return(out, nil),
		mockClient.EXPECT().
			GeneratePortrait(gomock.Any(), out.Sheet.PortraitPrompt).
			Return(portrait, nil),
		mockClient.EXPECT().
			StartChat(gomock.Any(), opts.Normalize().Language).
			Return(chat, nil),
		mockClient.EXPECT().
			FirstTurn(gomock.Any(), chat, gomock.Any()).
			Return(first, nil),
	)
}

// ExpectTurn sets up one ContinueTurn call for text
func ExpectTurn(
	mockClient *geminimock.MockClient, chat gemini.ChatSession,
	text string, turn *entities.TurnResponse,
) *gomock.Call {
	return mockClient.EXPECT().
		ContinueTurn(gomock.Any(), chat, text).
		Return(turn, nil)
}
