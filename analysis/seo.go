package analysis

import (
	"fmt"
	"math/rand"
	"strings"

	"creator-compass/internal/models"
)

var tagTrends = [...]string{"up", "down", "stable"}

const maxTagRecommendations = 5

// AnalyzeSEO builds the full SEO recommendation bundle for one video. The
// rng drives the synthetic tag-performance ratings; callers inject a seeded
// source so outputs can be reproduced.
func AnalyzeSEO(rec *models.VideoRecord, rng *rand.Rand) models.SEOAnalysis {
	var titleTips []string
	switch {
	case len(rec.Title) < 20:
		titleTips = append(titleTips, "Make title longer (20-60 characters recommended)")
	case len(rec.Title) > 60:
		titleTips = append(titleTips, "Consider shortening title (20-60 characters recommended)")
	}
	if len(rec.Tags) > 0 && !strings.Contains(strings.ToLower(rec.Title), strings.ToLower(rec.Tags[0])) {
		titleTips = append(titleTips, "Include primary keyword in title")
	}

	var descTips []string
	if len(rec.Description) < 100 {
		descTips = append(descTips, "Add more detailed description (minimum 100 characters)")
	}
	if !strings.Contains(rec.Description, "http") {
		descTips = append(descTips, "Include relevant links in description")
	}

	keywords := KeywordSuggestions(rec.Title, rec.Description)

	tagRecs := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		tagRecs = append(tagRecs, fmt.Sprintf("Add %q as a tag", kw))
	}
	if len(tagRecs) > maxTagRecommendations {
		tagRecs = tagRecs[:maxTagRecommendations]
	}

	perf := make([]models.TagPerformance, 0, len(keywords))
	for _, kw := range keywords {
		perf = append(perf, models.TagPerformance{
			Tag:   kw,
			Score: rng.Intn(40) + 60,
			Trend: tagTrends[rng.Intn(len(tagTrends))],
		})
	}

	var primary string
	if len(keywords) > 0 {
		primary = keywords[0]
	}

	return models.SEOAnalysis{
		Score:                   SEOScore(rec.Title, rec.Description),
		TitleOptimization:       titleTips,
		DescriptionOptimization: descTips,
		TagRecommendations:      tagRecs,
		TagPerformance:          perf,
		OptimizedTitle:          OptimizedTitle(rec.Title, primary),
		OptimizedDescription:    OptimizedDescription(rec.Description, keywords),
	}
}

// OptimizedTitle prefixes the primary keyword when the title lacks it.
func OptimizedTitle(title, primaryKeyword string) string {
	if primaryKeyword == "" {
		return title
	}
	if !strings.Contains(strings.ToLower(title), strings.ToLower(primaryKeyword)) {
		return primaryKeyword + " - " + title
	}
	return title
}

// OptimizedDescription appends a keyword block and a subscribe call-to-action
// when the description lacks them. The two appends are independent.
func OptimizedDescription(description string, keywords []string) string {
	out := description

	if !strings.Contains(out, "Keywords:") {
		top := keywords
		if len(top) > 5 {
			top = top[:5]
		}
		out += "\n\nKeywords: " + strings.Join(top, ", ")
	}

	if !strings.Contains(strings.ToLower(out), "subscribe") {
		out += "\n\n🔔 Subscribe for more content like this!"
	}

	return out
}
