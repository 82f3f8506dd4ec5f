package analysis

import (
	"fmt"
	"strings"

	"creator-compass/internal/models"
)

// Words too common to be useful keywords.
var stopWords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true,
	"on": true, "at": true, "to": true, "for": true,
}

const maxKeywordSuggestions = 10

// Strengths lists what a video already does well. Checks run in a fixed
// order and each contributes one fixed finding.
func Strengths(rec *models.VideoRecord) []string {
	var out []string
	if l := len(rec.Title); l >= 20 && l <= 60 {
		out = append(out, "Optimal title length for CTR")
	}
	if len(rec.Description) > 100 {
		out = append(out, "Detailed description improves SEO")
	}
	if rec.ViewCount > 0 && float64(rec.LikeCount)/float64(rec.ViewCount) > 0.05 {
		out = append(out, "High engagement rate")
	}
	if len(rec.Tags) > 10 {
		out = append(out, "Well-optimized tags")
	}
	return out
}

// Opportunities lists the complementary improvement suggestions. The checks
// are independent; all of them can co-occur.
func Opportunities(rec *models.VideoRecord) []string {
	var out []string
	if len(rec.Title) < 20 {
		out = append(out, "Consider a longer, more descriptive title")
	}
	if len(rec.Description) < 100 {
		out = append(out, "Add more detail to video description")
	}
	if len(rec.Tags) < 10 {
		out = append(out, "Add more relevant tags")
	}
	if !strings.Contains(rec.Description, "http") {
		out = append(out, "Include relevant links in description")
	}
	return out
}

// PerformanceFactors reports the three fixed performance drivers: title
// length, thumbnail quality and engagement ratio.
func PerformanceFactors(rec *models.VideoRecord) []models.PerformanceFactor {
	factors := make([]models.PerformanceFactor, 0, 3)

	titleImpact, titleDesc := "low", "Title length could be optimized"
	if l := len(rec.Title); l >= 20 && l <= 60 {
		titleImpact, titleDesc = "high", "Optimal title length for CTR"
	}
	factors = append(factors, models.PerformanceFactor{
		Factor:      "Title Length",
		Impact:      titleImpact,
		Description: titleDesc,
	})

	thumbImpact, thumbDesc := "medium", "Could benefit from higher resolution thumbnail"
	if rec.HDThumbnail {
		thumbImpact, thumbDesc = "high", "High-quality thumbnail available"
	}
	factors = append(factors, models.PerformanceFactor{
		Factor:      "Thumbnail Quality",
		Impact:      thumbImpact,
		Description: thumbDesc,
	})

	var ratio float64
	if rec.ViewCount > 0 {
		ratio = float64(rec.LikeCount) / float64(rec.ViewCount)
	}
	ratioImpact := "low"
	if ratio > 0.05 {
		ratioImpact = "high"
	} else if ratio > 0.02 {
		ratioImpact = "medium"
	}
	factors = append(factors, models.PerformanceFactor{
		Factor:      "Engagement Ratio",
		Impact:      ratioImpact,
		Description: fmt.Sprintf("%.1f%% engagement rate", ratio*100),
	})

	return factors
}

// KeywordSuggestions extracts candidate tags from the title and description:
// de-duplicated single words longer than 3 characters, then adjacent word
// pairs where neither word is a stop word, capped at 10 total in discovery
// order.
func KeywordSuggestions(title, description string) []string {
	words := strings.Fields(strings.ToLower(title + " " + description))

	seen := make(map[string]bool)
	var singles []string
	for _, w := range words {
		if len(w) > 3 && !stopWords[w] && !seen[w] {
			seen[w] = true
			singles = append(singles, w)
		}
	}

	var compounds []string
	for i := 0; i+1 < len(words); i++ {
		if !stopWords[words[i]] && !stopWords[words[i+1]] {
			compounds = append(compounds, words[i]+" "+words[i+1])
		}
	}

	out := append(singles, compounds...)
	if len(out) > maxKeywordSuggestions {
		out = out[:maxKeywordSuggestions]
	}
	return out
}
