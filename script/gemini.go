package script

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"creator-compass/internal/models"
	"creator-compass/shared/config"
)

// GeminiGenerator backs the Generator interface with the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, cfg *config.ScriptConfig) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: cfg.Model}, nil
}

func (g *GeminiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	responseText := result.Text()
	if responseText == "" {
		return "", fmt.Errorf("empty response from model %s", g.model)
	}
	return responseText, nil
}

func (g *GeminiGenerator) SuggestPaths(ctx context.Context, notes string) ([]models.ScriptSuggestion, error) {
	prompt := fmt.Sprintf(`You are a YouTube script strategist. Given the creator's brainstorm notes,
propose exactly 3 creative paths for a video script.

BRAINSTORM NOTES:
%s

Respond with a JSON array in this exact shape:
[
  {
    "title": "short name of the approach",
    "description": "one sentence on why it works",
    "predicted_engagement": number (0-100),
    "outline": {
      "title": "working video title",
      "sections": [
        {
          "title": "section name",
          "content": "one line describing the section",
          "metrics": {"engagement": number, "emotional_impact": number, "clarity": number}
        }
      ]
    }
  }
]

Each outline must have exactly 5 sections. All metric values are 0-100.`, notes)

	response, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	startIdx := strings.Index(response, "[")
	endIdx := strings.LastIndex(response, "]")
	if startIdx == -1 || endIdx == -1 || endIdx < startIdx {
		return nil, fmt.Errorf("no JSON array found in response: %s", response)
	}

	var suggestions []models.ScriptSuggestion
	if err := json.Unmarshal([]byte(response[startIdx:endIdx+1]), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal suggestions: %w", err)
	}
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("model returned no suggestions")
	}
	return suggestions, nil
}

func (g *GeminiGenerator) ComposeScript(ctx context.Context, topic string, outline models.ScriptOutline) (string, []string, error) {
	var sections strings.Builder
	for _, section := range outline.Sections {
		fmt.Fprintf(&sections, "- %s: %s\n", section.Title, section.Content)
	}

	prompt := fmt.Sprintf(`Write a complete YouTube video script about %q titled %q.

Follow this outline exactly, one part per section:
%s
Open with a hook, close with a like-and-subscribe call to action, and write
spoken-word prose throughout. Respond with the script text only.`, topic, outline.Title, sections.String())

	script, err := g.generate(ctx, prompt)
	if err != nil {
		return "", nil, err
	}
	return script, topicKeywords(topic), nil
}

func (g *GeminiGenerator) ImproveSection(ctx context.Context, section models.ScriptSection) (models.ScriptSection, error) {
	prompt := fmt.Sprintf(`Rewrite this YouTube script outline section to add emotional hooks and clearer examples.
Keep it to 1-2 sentences. Respond with the rewritten section content only.

SECTION: %s
CONTENT: %s`, section.Title, section.Content)

	content, err := g.generate(ctx, prompt)
	if err != nil {
		return models.ScriptSection{}, err
	}

	improved := enhanceSection(section)
	improved.Content = strings.TrimSpace(content)
	return improved, nil
}

func (g *GeminiGenerator) ImproveScript(ctx context.Context, current string) (string, error) {
	prompt := fmt.Sprintf(`Improve this YouTube script: add more engaging hooks and concrete examples
while keeping the structure and length similar. Respond with the improved script only.

SCRIPT:
%s`, current)

	improved, err := g.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(improved), nil
}
