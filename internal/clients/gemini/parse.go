package gemini

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-oracle/internal/errors"
)

// MalformedMessage is the player-facing message for any unusable payload
const MalformedMessage = "received malformed data from the Oracle"

var (
	leadingFence  = regexp.MustCompile("^```(?:json|JSON)?[ \t]*\r?\n?")
	trailingFence = regexp.MustCompile("\r?\n?```$")
)

// StripFences removes a leading ```json (or bare ```) fence and a trailing
// ``` fence. Text without fences is returned trimmed.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = leadingFence.ReplaceAllString(s, "")
	s = trailingFence.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Decode strips fences from raw and decodes it into a new T. Every path in
// required must be present. On any failure the result is nil and the error
// is a MalformedResponse.
func Decode[T any](raw string, required ...string) (*T, error) {
	body := StripFences(raw)

	if !gjson.Valid(body) {
		return nil, errors.MalformedResponse(MalformedMessage).
			WithMeta("reason", "invalid json")
	}

	parsed := gjson.Parse(body)
	if !parsed.IsObject() {
		return nil, errors.MalformedResponse(MalformedMessage).
			WithMeta("reason", "not an object")
	}

	for _, path := range required {
		if !parsed.Get(path).Exists() {
			return nil, errors.MalformedResponse(MalformedMessage).
				WithMeta("missing_key", path)
		}
	}

	out := new(T)
	if err := json.Unmarshal([]byte(body), out); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeMalformedResponse, MalformedMessage)
	}

	return out, nil
}

// responseText concatenates the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.MalformedResponse(MalformedMessage).
			WithMeta("reason", "no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}

	if sb.Len() == 0 {
		return "", errors.MalformedResponse(MalformedMessage).
			WithMeta("reason", "no text")
	}

	return sb.String(), nil
}

// firstBlob returns the first inline image in the first candidate
func firstBlob(resp *genai.GenerateContentResponse) (genai.Blob, bool) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return genai.Blob{}, false
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		switch b := part.(type) {
		case genai.Blob:
			if len(b.Data) > 0 {
				return b, true
			}
		case *genai.Blob:
			if b != nil && len(b.Data) > 0 {
				return *b, true
			}
		}
	}

	return genai.Blob{}, false
}
