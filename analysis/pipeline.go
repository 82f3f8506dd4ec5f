package analysis

import (
	"math/rand"

	"creator-compass/internal/models"
)

// Analyze runs the full insight pipeline for one video record.
func Analyze(rec *models.VideoRecord, rng *rand.Rand) models.VideoInsights {
	return models.VideoInsights{
		Strengths:          Strengths(rec),
		Opportunities:      Opportunities(rec),
		Engagement:         EngagementScore(rec.LikeCount, rec.CommentCount, rec.ViewCount),
		Quality:            QualityScore(rec.LikeCount, rec.ViewCount),
		SEO:                SEOScore(rec.Title, rec.Description),
		KeywordSuggestions: KeywordSuggestions(rec.Title, rec.Description),
		PerformanceFactors: PerformanceFactors(rec),
		SEOAnalysis:        AnalyzeSEO(rec, rng),
	}
}

// Result assembles the complete dashboard row for one record.
func Result(rec *models.VideoRecord, rng *rand.Rand) models.VideoResult {
	insights := Analyze(rec, rng)
	return models.VideoResult{
		ID:              rec.ID,
		Title:           rec.Title,
		Channel:         rec.ChannelTitle,
		Thumbnail:       rec.Thumbnail,
		Description:     rec.Description,
		Metrics:         Metrics(rec),
		Score:           CompositeScore(rec.ViewCount, rec.LikeCount, rec.CommentCount),
		Insights:        insights,
		EngagementLevel: EngagementLevel(insights.Engagement),
	}
}
