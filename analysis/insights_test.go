package analysis

import (
	"strings"
	"testing"

	"creator-compass/internal/models"
)

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func TestStrengths(t *testing.T) {
	t.Run("all strengths present", func(t *testing.T) {
		rec := &models.VideoRecord{
			Title:       "A Perfectly Sized Video Title Here",
			Description: strings.Repeat("detailed description text ", 5),
			ViewCount:   1000,
			LikeCount:   100,
			Tags:        make([]string, 11),
		}
		got := Strengths(rec)
		want := []string{
			"Optimal title length for CTR",
			"Detailed description improves SEO",
			"High engagement rate",
			"Well-optimized tags",
		}
		if len(got) != len(want) {
			t.Fatalf("Strengths = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Strengths[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("weak video has none", func(t *testing.T) {
		rec := &models.VideoRecord{Title: "Hi", Description: "Short"}
		if got := Strengths(rec); len(got) != 0 {
			t.Errorf("Strengths = %v, want empty", got)
		}
	})

	t.Run("zero views never counts as engaged", func(t *testing.T) {
		rec := &models.VideoRecord{Title: "Hi", LikeCount: 100}
		if containsString(Strengths(rec), "High engagement rate") {
			t.Error("zero-view video reported high engagement")
		}
	})
}

func TestOpportunities(t *testing.T) {
	t.Run("weak video gets all suggestions", func(t *testing.T) {
		rec := &models.VideoRecord{Title: "Hi", Description: "Short"}
		got := Opportunities(rec)
		want := []string{
			"Consider a longer, more descriptive title",
			"Add more detail to video description",
			"Add more relevant tags",
			"Include relevant links in description",
		}
		if len(got) != len(want) {
			t.Fatalf("Opportunities = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Opportunities[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("well-optimized video gets none", func(t *testing.T) {
		rec := &models.VideoRecord{
			Title:       "A Perfectly Sized Video Title Here",
			Description: strings.Repeat("text ", 25) + "https://example.com",
			Tags:        make([]string, 12),
		}
		if got := Opportunities(rec); len(got) != 0 {
			t.Errorf("Opportunities = %v, want empty", got)
		}
	})
}

func TestPerformanceFactors(t *testing.T) {
	tests := []struct {
		name        string
		rec         *models.VideoRecord
		titleImpact string
		thumbImpact string
		ratioImpact string
	}{
		{
			name: "strong video",
			rec: &models.VideoRecord{
				Title:       "A Perfectly Sized Video Title Here",
				HDThumbnail: true,
				ViewCount:   1000,
				LikeCount:   100,
			},
			titleImpact: "high",
			thumbImpact: "high",
			ratioImpact: "high",
		},
		{
			name: "middling video",
			rec: &models.VideoRecord{
				Title:     "Hi",
				ViewCount: 1000,
				LikeCount: 30,
			},
			titleImpact: "low",
			thumbImpact: "medium",
			ratioImpact: "medium",
		},
		{
			name:        "weak video",
			rec:         &models.VideoRecord{Title: "Hi"},
			titleImpact: "low",
			thumbImpact: "medium",
			ratioImpact: "low",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factors := PerformanceFactors(tt.rec)
			if len(factors) != 3 {
				t.Fatalf("got %d factors, want 3", len(factors))
			}
			if factors[0].Factor != "Title Length" || factors[0].Impact != tt.titleImpact {
				t.Errorf("title factor = %+v, want impact %q", factors[0], tt.titleImpact)
			}
			if factors[1].Factor != "Thumbnail Quality" || factors[1].Impact != tt.thumbImpact {
				t.Errorf("thumbnail factor = %+v, want impact %q", factors[1], tt.thumbImpact)
			}
			if factors[2].Factor != "Engagement Ratio" || factors[2].Impact != tt.ratioImpact {
				t.Errorf("engagement factor = %+v, want impact %q", factors[2], tt.ratioImpact)
			}
		})
	}

	t.Run("ratio description formatting", func(t *testing.T) {
		rec := &models.VideoRecord{ViewCount: 1000, LikeCount: 100}
		factors := PerformanceFactors(rec)
		if factors[2].Description != "10.0% engagement rate" {
			t.Errorf("ratio description = %q, want %q", factors[2].Description, "10.0% engagement rate")
		}
	})
}

func TestKeywordSuggestions(t *testing.T) {
	t.Run("singles skip short and stop words", func(t *testing.T) {
		got := KeywordSuggestions("the best golang tip", "")
		if containsString(got, "the") {
			t.Error("stop word leaked into suggestions")
		}
		if !containsString(got, "best") {
			t.Errorf("expected %q in %v", "best", got)
		}
		if containsString(got, "tip") {
			t.Error("3-letter-or-shorter word should be skipped as a single")
		}
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		got := KeywordSuggestions("golang golang", "")
		count := 0
		for _, kw := range got {
			if kw == "golang" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("single %q appeared %d times in %v", "golang", count, got)
		}
	})

	t.Run("compounds skip stop word neighbors", func(t *testing.T) {
		got := KeywordSuggestions("golang for beginners", "")
		if containsString(got, "golang for") || containsString(got, "for beginners") {
			t.Errorf("stop word compound leaked into %v", got)
		}
	})

	t.Run("capped at ten", func(t *testing.T) {
		title := "alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima"
		got := KeywordSuggestions(title, "")
		if len(got) != 10 {
			t.Errorf("got %d suggestions, want 10", len(got))
		}
	})
}
