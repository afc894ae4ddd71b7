package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// generateGemini issues a single Gemini request for the prompt.
func (s *implSummarizer) generateGemini(ctx context.Context, prompt string) (Result, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return Result{}, fmt.Errorf("create client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return Result{}, fmt.Errorf("generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Result{}, errors.New("empty response from Gemini")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	if text.Len() == 0 {
		return Result{}, errors.New("empty response from Gemini")
	}

	res := Result{
		Text:  strings.TrimSpace(text.String()),
		Model: s.model,
	}
	if um := resp.UsageMetadata; um != nil {
		res.InputTokens = int(um.PromptTokenCount)
		res.OutputTokens = int(um.CandidatesTokenCount)
	}
	return res, nil
}
