package script

import (
	"context"
	"fmt"
	"strings"
	"time"

	"creator-compass/internal/models"
)

// Style is a selectable tone for generated scripts.
type Style struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var Styles = []Style{
	{ID: "viral", Name: "🔥 Viral Hook", Description: "MrBeast-style attention-grabbing intro"},
	{ID: "educational", Name: "📚 Educational", Description: "Ali Abdaal-style structured breakdown"},
	{ID: "motivational", Name: "💡 Motivational", Description: "Inspirational storytelling"},
	{ID: "podcast", Name: "🎙️ Podcast-Style", Description: "Casual & conversational"},
}

// Generator produces script content. TemplateGenerator is deterministic;
// GeminiGenerator backs the same interface with a language model.
type Generator interface {
	SuggestPaths(ctx context.Context, notes string) ([]models.ScriptSuggestion, error)
	ComposeScript(ctx context.Context, topic string, outline models.ScriptOutline) (string, []string, error)
	ImproveSection(ctx context.Context, section models.ScriptSection) (models.ScriptSection, error)
	ImproveScript(ctx context.Context, current string) (string, error)
}

// TemplateGenerator builds scripts from canned creative paths and a fixed
// composition template. The delay simulates processing time so the UI can
// show progress; set it to zero in tests.
type TemplateGenerator struct {
	delay time.Duration
}

func NewTemplateGenerator(delay time.Duration) *TemplateGenerator {
	return &TemplateGenerator{delay: delay}
}

func (g *TemplateGenerator) wait(ctx context.Context) error {
	if g.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (g *TemplateGenerator) SuggestPaths(ctx context.Context, notes string) ([]models.ScriptSuggestion, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	return suggestionTemplates(), nil
}

func (g *TemplateGenerator) ComposeScript(ctx context.Context, topic string, outline models.ScriptOutline) (string, []string, error) {
	if err := g.wait(ctx); err != nil {
		return "", nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Welcome to this comprehensive guide on %s!\n\n", topic)
	b.WriteString("🎯 Today's Focus:\n")
	for _, section := range outline.Sections {
		fmt.Fprintf(&b, "• %s\n", section.Title)
	}
	b.WriteString("\nLet's dive in...\n")
	for _, section := range outline.Sections {
		fmt.Fprintf(&b, "\n## %s\n%s\n", section.Title, section.Content)
		if section.Metrics != nil {
			fmt.Fprintf(&b, "\n[Engagement Score: %d%%]\n", section.Metrics.Engagement)
		}
	}
	b.WriteString("\n🔔 Don't forget to like and subscribe for more content like this!")

	return b.String(), topicKeywords(topic), nil
}

func (g *TemplateGenerator) ImproveSection(ctx context.Context, section models.ScriptSection) (models.ScriptSection, error) {
	if err := g.wait(ctx); err != nil {
		return models.ScriptSection{}, err
	}
	return enhanceSection(section), nil
}

func (g *TemplateGenerator) ImproveScript(ctx context.Context, current string) (string, error) {
	if err := g.wait(ctx); err != nil {
		return "", err
	}
	return current + "\n\n[AI Enhancement: Added more engaging hooks and examples]", nil
}

// enhanceSection returns a copy of the section with enriched content and
// bumped metrics. The input is never mutated.
func enhanceSection(section models.ScriptSection) models.ScriptSection {
	improved := section
	improved.Content = section.Content + "\n[AI Enhanced: Added emotional hooks and clearer examples]"
	if section.Metrics != nil {
		improved.Metrics = &models.SectionMetrics{
			Engagement:      minInt(section.Metrics.Engagement+5, 100),
			EmotionalImpact: minInt(section.Metrics.EmotionalImpact+4, 100),
			Clarity:         minInt(section.Metrics.Clarity+3, 100),
		}
	}
	return improved
}

func topicKeywords(topic string) []string {
	return []string{
		"beginners guide",
		strings.ToLower(topic) + " tutorial",
		"how to",
		"tips and tricks",
		"step by step",
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// suggestionTemplates returns fresh copies of the canned creative paths so
// callers can mutate metrics without affecting later calls.
func suggestionTemplates() []models.ScriptSuggestion {
	return []models.ScriptSuggestion{
		{
			Title:               "Hook-Driven Narrative",
			Description:         "Start with a powerful statistic or surprising fact to immediately grab attention",
			PredictedEngagement: 92,
			Outline: models.ScriptOutline{
				Title: "The Ultimate Guide to [Topic]",
				Sections: []models.ScriptSection{
					{Title: "Opening Hook", Content: "Start with the surprising statistic about [Topic]", Metrics: &models.SectionMetrics{Engagement: 95, EmotionalImpact: 88, Clarity: 90}},
					{Title: "Problem Statement", Content: "Outline the common challenges", Metrics: &models.SectionMetrics{Engagement: 85, EmotionalImpact: 82, Clarity: 88}},
					{Title: "Solution Overview", Content: "Preview the key solutions", Metrics: &models.SectionMetrics{Engagement: 88, EmotionalImpact: 85, Clarity: 92}},
					{Title: "Detailed Steps", Content: "Break down each solution", Metrics: &models.SectionMetrics{Engagement: 82, EmotionalImpact: 78, Clarity: 94}},
					{Title: "Call to Action", Content: "Encourage implementation", Metrics: &models.SectionMetrics{Engagement: 90, EmotionalImpact: 86, Clarity: 89}},
				},
			},
		},
		{
			Title:               "Story-Based Approach",
			Description:         "Frame the content through a personal journey or case study",
			PredictedEngagement: 88,
			Outline: models.ScriptOutline{
				Title: "How I Mastered [Topic]",
				Sections: []models.ScriptSection{
					{Title: "Personal Story", Content: "Share relevant experience", Metrics: &models.SectionMetrics{Engagement: 92, EmotionalImpact: 94, Clarity: 88}},
					{Title: "Key Lessons", Content: "Main insights gained", Metrics: &models.SectionMetrics{Engagement: 86, EmotionalImpact: 84, Clarity: 90}},
					{Title: "Implementation", Content: "How to apply the lessons", Metrics: &models.SectionMetrics{Engagement: 84, EmotionalImpact: 82, Clarity: 92}},
					{Title: "Results & Impact", Content: "Showcase outcomes", Metrics: &models.SectionMetrics{Engagement: 88, EmotionalImpact: 86, Clarity: 89}},
					{Title: "Viewer Takeaways", Content: "Action steps for audience", Metrics: &models.SectionMetrics{Engagement: 90, EmotionalImpact: 88, Clarity: 91}},
				},
			},
		},
		{
			Title:               "Educational Deep-Dive",
			Description:         "Structured, comprehensive breakdown of the topic",
			PredictedEngagement: 86,
			Outline: models.ScriptOutline{
				Title: "[Topic] Explained Simply",
				Sections: []models.ScriptSection{
					{Title: "Concept Overview", Content: "Basic explanation", Metrics: &models.SectionMetrics{Engagement: 84, EmotionalImpact: 78, Clarity: 95}},
					{Title: "Core Principles", Content: "Fundamental concepts", Metrics: &models.SectionMetrics{Engagement: 82, EmotionalImpact: 76, Clarity: 94}},
					{Title: "Practical Examples", Content: "Real-world applications", Metrics: &models.SectionMetrics{Engagement: 88, EmotionalImpact: 84, Clarity: 92}},
					{Title: "Common Pitfalls", Content: "What to avoid", Metrics: &models.SectionMetrics{Engagement: 86, EmotionalImpact: 82, Clarity: 90}},
					{Title: "Next Steps", Content: "Learning resources", Metrics: &models.SectionMetrics{Engagement: 85, EmotionalImpact: 80, Clarity: 93}},
				},
			},
		},
	}
}
