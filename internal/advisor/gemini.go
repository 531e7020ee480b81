package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rotisserie/eris"
	"google.golang.org/api/option"
)

// TextGenerator produces free-form text for a prompt. The Gemini client
// implements it; tests inject a stub. A nil generator means the client was
// never configured and the tips block falls back immediately.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient builds the text-generation client with the fixed
// creativity and output-length settings used for tips.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, eris.Wrap(err, "failed to create Gemini client")
	}

	model := client.GenerativeModel("gemini-2.5-flash-lite")
	model.SetTemperature(0.85)
	model.SetMaxOutputTokens(600)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (g *GeminiClient) Close() {
	g.client.Close()
}

// Generate issues one blocking generation call. Empty responses are an error
// so the caller's fallback handling stays uniform.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", eris.Wrap(err, "failed to generate content")
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", eris.New("no content generated")
	}

	text := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if text == "" {
		return "", eris.New("empty content generated")
	}
	return text, nil
}
