package gemini

import (
	"context"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/KirkDiggler/rpg-oracle/internal/errors"
	"github.com/KirkDiggler/rpg-oracle/internal/repositories/labels"
)

const jsonMIME = "application/json"

// SDKConfig names the models behind each seam
type SDKConfig struct {
	APIKey     string
	TextModel  string
	ImageModel string
	EditModel  string
	Labels     labels.Repository
}

// Validate validates the config
func (c *SDKConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("APIKey", c.APIKey, vb)
	errors.ValidateRequired("TextModel", c.TextModel, vb)
	errors.ValidateRequired("ImageModel", c.ImageModel, vb)
	errors.ValidateRequired("EditModel", c.EditModel, vb)
	return vb.Build()
}

// NewFromSDK builds a Client on the Gemini SDK. The returned func closes the
// underlying connection.
func NewFromSDK(ctx context.Context, cfg *SDKConfig) (Client, func() error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	sdk, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, nil, errors.FromTransportError(err, "failed to create gemini client")
	}

	text := sdk.GenerativeModel(cfg.TextModel)
	text.ResponseMIMEType = jsonMIME

	image := sdk.GenerativeModel(cfg.ImageModel)
	image.SetCandidateCount(1)

	edit := sdk.GenerativeModel(cfg.EditModel)

	c, err := New(&Config{
		TextModel:  text,
		ImageModel: image,
		EditModel:  edit,
		Chats:      &sdkChats{sdk: sdk, model: cfg.TextModel},
		Labels:     cfg.Labels,
	})
	if err != nil {
		_ = sdk.Close()
		return nil, nil, err
	}

	return c, sdk.Close, nil
}

type sdkChats struct {
	sdk   *genai.Client
	model string
}

func (s *sdkChats) StartChat(_ context.Context, instruction string, schema *genai.Schema) (ChatSession, error) {
	m := s.sdk.GenerativeModel(s.model)
	m.SystemInstruction = genai.NewUserContent(genai.Text(instruction))
	m.ResponseMIMEType = jsonMIME
	m.ResponseSchema = schema
	return m.StartChat(), nil
}
