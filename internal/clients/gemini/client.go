// Package gemini is the generation client for the Oracle: character sheets,
// portraits, and the narrative chat, all backed by Gemini models.
package gemini

//go:generate mockgen -destination=mock/mock_client.go -package=geminimock github.com/KirkDiggler/rpg-oracle/internal/clients/gemini Client,ChatSession

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-oracle/internal/entities"
	"github.com/KirkDiggler/rpg-oracle/internal/errors"
	"github.com/KirkDiggler/rpg-oracle/internal/repositories/labels"
)

const (
	defaultPortraitMIME = "image/jpeg"
	defaultEditMIME     = "image/png"
)

// Model is the single-shot generation surface of a Gemini model
type Model interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// ChatSession is a conversation that keeps its own history.
// *genai.ChatSession satisfies it.
type ChatSession interface {
	SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// ChatStarter opens chat sessions on the narrative model
type ChatStarter interface {
	StartChat(ctx context.Context, systemInstruction string, schema *genai.Schema) (ChatSession, error)
}

// Client defines the generation operations the game needs
type Client interface {
	// CreateCharacter generates the sheet and UI labels concurrently, then
	// translates trait and item texts when the language is not English.
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)

	// GeneratePortrait renders one image for prompt
	// Returns errors.ImageGenerationFailed when no image comes back
	GeneratePortrait(ctx context.Context, prompt string) (*entities.Image, error)

	// EditPortrait modifies image according to prompt
	// Returns errors.ImageEditFailed when no image comes back
	EditPortrait(ctx context.Context, image *entities.Image, prompt string) (*entities.Image, error)

	// StartChat opens a narrative session that answers in language
	StartChat(ctx context.Context, language string) (ChatSession, error)

	// FirstTurn sends the scene-setting prompt for character
	FirstTurn(ctx context.Context, chat ChatSession, character *entities.Character) (*entities.TurnResponse, error)

	// ContinueTurn sends the player's action
	ContinueTurn(ctx context.Context, chat ChatSession, text string) (*entities.TurnResponse, error)
}

// Config holds the SDK seams the client calls through
type Config struct {
	TextModel  Model
	ImageModel Model
	EditModel  Model
	Chats      ChatStarter

	// Labels is optional. When set, UI labels are read from and written to it.
	Labels labels.Repository
}

// Validate validates the config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.TextModel == nil {
		vb.RequiredField("TextModel")
	}
	if c.ImageModel == nil {
		vb.RequiredField("ImageModel")
	}
	if c.EditModel == nil {
		vb.RequiredField("EditModel")
	}
	if c.Chats == nil {
		vb.RequiredField("Chats")
	}

	return vb.Build()
}

type client struct {
	text   Model
	image  Model
	edit   Model
	chats  ChatStarter
	labels labels.Repository
}

// New creates a generation client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &client{
		text:   cfg.TextModel,
		image:  cfg.ImageModel,
		edit:   cfg.EditModel,
		chats:  cfg.Chats,
		labels: cfg.Labels,
	}, nil
}

func (c *client) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	opts := input.Options.Normalize()
	if opts.Language == "" {
		return nil, errors.InvalidArgument("language is required")
	}

	var (
		sheet    *entities.CharacterSheet
		uiLabels *entities.UILabels
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sheet, err = c.generateSheet(gctx, opts)
		return err
	})
	g.Go(func() error {
		var err error
		uiLabels, err = c.uiLabels(gctx, opts.Language)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	translated := false
	if !IsEnglish(opts.Language) {
		var err error
		translated, err = c.translateSheet(ctx, sheet, opts.Language)
		if err != nil {
			return nil, err
		}
	}

	return &CreateCharacterOutput{
		Sheet:  sheet,
		Labels: uiLabels,
		Settings: entities.GameSettings{
			Location: sheet.Location,
			Year:     sheet.Year,
		},
		Translated: translated,
	}, nil
}

func (c *client) generateSheet(ctx context.Context, opts entities.GameOptions) (*entities.CharacterSheet, error) {
	raw, err := c.generateText(ctx, characterPrompt(opts), "failed to generate character")
	if err != nil {
		return nil, err
	}

	return Decode[entities.CharacterSheet](raw, entities.CharacterSheetKeys...)
}

func (c *client) uiLabels(ctx context.Context, lang string) (*entities.UILabels, error) {
	if c.labels != nil {
		out, err := c.labels.Get(ctx, &labels.GetInput{Language: lang})
		switch {
		case err == nil:
			log.Debug().Str("language", lang).Msg("ui labels served from cache")
			return out.Labels, nil
		case !errors.IsNotFound(err):
			log.Warn().Err(err).Str("language", lang).Msg("label cache read failed")
		}
	}

	raw, err := c.generateText(ctx, uiLabelsPrompt(lang), "failed to generate ui labels")
	if err != nil {
		return nil, err
	}

	uiLabels, err := Decode[entities.UILabels](raw, entities.UILabelKeys...)
	if err != nil {
		return nil, err
	}

	if c.labels != nil {
		if _, err := c.labels.Put(ctx, &labels.PutInput{Language: lang, Labels: uiLabels}); err != nil {
			log.Warn().Err(err).Str("language", lang).Msg("label cache write failed")
		}
	}

	return uiLabels, nil
}

// translateSheet rewrites trait and item texts in place. A translation with
// the wrong number of strings is logged and ignored.
func (c *client) translateSheet(ctx context.Context, sheet *entities.CharacterSheet, lang string) (bool, error) {
	texts := flattenTexts(sheet)
	if len(texts) == 0 {
		return false, nil
	}

	raw, err := c.generateText(ctx, itemTranslationPrompt(texts, lang), "failed to translate items")
	if err != nil {
		return false, err
	}

	out, err := Decode[entities.ItemTranslations](raw, "translations")
	if err != nil {
		return false, err
	}

	if len(out.Translations) != len(texts) {
		mismatch := errors.TranslationMismatchf("expected %d translations, got %d", len(texts), len(out.Translations))
		log.Warn().
			Err(mismatch).
			Str("language", lang).
			Msg("keeping untranslated traits and items")
		return false, nil
	}

	scatterTexts(sheet, out.Translations)
	return true, nil
}

func flattenTexts(sheet *entities.CharacterSheet) []string {
	texts := make([]string, 0, len(sheet.Advantages)+len(sheet.Disadvantages)+len(sheet.Inventory))
	for _, a := range sheet.Advantages {
		texts = append(texts, a.Text)
	}
	for _, d := range sheet.Disadvantages {
		texts = append(texts, d.Text)
	}
	for _, i := range sheet.Inventory {
		texts = append(texts, i.Text)
	}
	return texts
}

func scatterTexts(sheet *entities.CharacterSheet, texts []string) {
	idx := 0
	for i := range sheet.Advantages {
		sheet.Advantages[i].Text = texts[idx]
		idx++
	}
	for i := range sheet.Disadvantages {
		sheet.Disadvantages[i].Text = texts[idx]
		idx++
	}
	for i := range sheet.Inventory {
		sheet.Inventory[i].Text = texts[idx]
		idx++
	}
}

// IsEnglish reports whether lang names English, either as a word or as a
// BCP 47 tag such as "en-GB".
func IsEnglish(lang string) bool {
	lang = strings.TrimSpace(lang)
	if strings.EqualFold(lang, "english") {
		return true
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return false
	}

	base, _ := tag.Base()
	return base.String() == "en"
}

func (c *client) generateText(ctx context.Context, prompt, errMsg string) (string, error) {
	resp, err := c.text.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.FromTransportError(err, errMsg)
	}
	return responseText(resp)
}

func (c *client) GeneratePortrait(ctx context.Context, prompt string) (*entities.Image, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, errors.InvalidArgument("portrait prompt is required")
	}

	resp, err := c.image.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, errors.FromTransportError(err, "failed to generate portrait")
	}

	blob, ok := firstBlob(resp)
	if !ok {
		return nil, errors.ImageGenerationFailed("image generation failed, no images returned")
	}

	return toImage(blob, defaultPortraitMIME), nil
}

func (c *client) EditPortrait(ctx context.Context, image *entities.Image, prompt string) (*entities.Image, error) {
	if image == nil || len(image.Data) == 0 {
		return nil, errors.InvalidArgument("image is required")
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, errors.InvalidArgument("edit prompt is required")
	}

	mime := image.MIMEType
	if mime == "" {
		mime = defaultPortraitMIME
	}

	resp, err := c.edit.GenerateContent(ctx,
		genai.Blob{MIMEType: mime, Data: image.Data},
		genai.Text(prompt),
	)
	if err != nil {
		return nil, errors.FromTransportError(err, "failed to edit portrait")
	}

	blob, ok := firstBlob(resp)
	if !ok {
		return nil, errors.ImageEditFailed("image editing failed, no image data returned")
	}

	return toImage(blob, defaultEditMIME), nil
}

func toImage(blob genai.Blob, fallbackMIME string) *entities.Image {
	mime := blob.MIMEType
	if mime == "" {
		mime = fallbackMIME
	}
	return &entities.Image{MIMEType: mime, Data: blob.Data}
}

func (c *client) StartChat(ctx context.Context, lang string) (ChatSession, error) {
	if strings.TrimSpace(lang) == "" {
		return nil, errors.InvalidArgument("language is required")
	}

	chat, err := c.chats.StartChat(ctx, systemInstruction(lang), TurnSchema())
	if err != nil {
		return nil, errors.FromTransportError(err, "failed to start chat")
	}
	return chat, nil
}

func (c *client) FirstTurn(ctx context.Context, chat ChatSession, character *entities.Character) (*entities.TurnResponse, error) {
	if character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	return c.send(ctx, chat, firstTurnPrompt(character))
}

func (c *client) ContinueTurn(ctx context.Context, chat ChatSession, text string) (*entities.TurnResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.InvalidArgument("action text is required")
	}
	return c.send(ctx, chat, text)
}

func (c *client) send(ctx context.Context, chat ChatSession, text string) (*entities.TurnResponse, error) {
	if chat == nil {
		return nil, errors.FailedPrecondition("no active chat session")
	}

	resp, err := chat.SendMessage(ctx, genai.Text(text))
	if err != nil {
		return nil, errors.FromTransportError(err, "the Oracle did not answer")
	}

	raw, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	return Decode[entities.TurnResponse](raw, entities.TurnResponseKeys...)
}
