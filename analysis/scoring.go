package analysis

import (
	"math"
	"strings"
)

// CompositeScore blends reach and engagement into a bounded 0-10 rating.
// Videos with no views score 0.
func CompositeScore(views, likes, comments int64) float64 {
	if views <= 0 {
		return 0
	}
	viewScore := math.Log10(float64(views)) * 1.5
	engagement := float64(likes+comments) / float64(views) * 1000
	return clampFloat((viewScore+engagement)/2, 0, 10)
}

// EngagementScore rates likes+comments relative to views on a 0-100 scale.
func EngagementScore(likes, comments, views int64) float64 {
	if views <= 0 {
		return 0
	}
	return clampFloat(float64(likes+comments)/float64(views)*10000, 0, 100)
}

// QualityScore rates the like ratio on a 0-100 scale.
func QualityScore(likes, views int64) float64 {
	if views <= 0 {
		return 0
	}
	return clampFloat(float64(likes)/float64(views)*1000, 0, 100)
}

// SEOScore rates how well title and description are optimized. Base 70,
// plus bonuses for title length in [20,60], a separator in the title, a
// description over 100 characters, a link, and word overlap between title
// and description (2 points per matching title word over 3 characters, at
// most 5 matches).
func SEOScore(title, description string) int {
	score := 70

	if l := len(title); l >= 20 && l <= 60 {
		score += 10
	}
	if strings.ContainsAny(title, "|-") {
		score += 5
	}

	if len(description) > 100 {
		score += 10
	}
	if strings.Contains(description, "http") {
		score += 5
	}

	descWords := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(description)) {
		descWords[w] = true
	}
	matches := 0
	for _, w := range strings.Fields(strings.ToLower(title)) {
		if len(w) > 3 && descWords[w] {
			matches++
		}
	}
	if matches > 5 {
		matches = 5
	}
	score += matches * 2

	if score > 100 {
		score = 100
	}
	return score
}

// EngagementLevel buckets an engagement score: >=80 high, >=50 medium,
// otherwise low.
func EngagementLevel(engagement float64) string {
	switch {
	case engagement >= 80:
		return "high"
	case engagement >= 50:
		return "medium"
	default:
		return "low"
	}
}
