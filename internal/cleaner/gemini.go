package cleaner

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Clean sends the transcript and the rendered rule contract to Gemini.
// One attempt per file: any transport or response problem is returned to
// the caller, which falls back to local assembly.
func (c *implCleaner) Clean(ctx context.Context, transcriptText, primarySpeaker string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := BuildPrompt(c.rules, primarySpeaker, transcriptText)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	c.logger.Debug(ctx, "Requesting remote cleanup for speaker %s (%d bytes)", primarySpeaker, len(transcriptText))

	result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	// A blank answer must not displace the deterministic fallback.
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("blank response from Gemini")
	}

	return text, nil
}
