package analysis

import (
	"strings"
	"testing"

	"creator-compass/internal/models"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		name     string
		count    int64
		expected string
	}{
		{"zero", 0, "0"},
		{"below thousand", 999, "999"},
		{"exactly thousand", 1000, "1.0K"},
		{"thousands", 12300, "12.3K"},
		{"just below million", 999999, "1000.0K"},
		{"exactly million", 1000000, "1.0M"},
		{"millions", 1532000, "1.5M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCount(tt.count); got != tt.expected {
				t.Errorf("FormatCount(%d) = %q, want %q", tt.count, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{"hours minutes seconds", "PT1H2M3S", "1:02:03"},
		{"minutes only", "PT5M", "5:00"},
		{"seconds only", "PT45S", "0:45"},
		{"minutes and seconds", "PT12M7S", "12:07"},
		{"hours only", "PT2H", "2:00:00"},
		{"bare prefix", "PT", "0:00"},
		{"malformed", "not-a-duration", "0:00"},
		{"empty", "", "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.token); got != tt.expected {
				t.Errorf("FormatDuration(%q) = %q, want %q", tt.token, got, tt.expected)
			}
		})
	}
}

func TestEstimateRetention(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{"short video capped at 90", "PT30S", "90.0%"},
		{"ten minutes", "PT10M", "90.0%"},
		{"twenty minutes", "PT20M", "80.0%"},
		{"very long video floored at 60", "PT2H", "60.0%"},
		{"malformed", "garbage", "0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateRetention(tt.token); got != tt.expected {
				t.Errorf("EstimateRetention(%q) = %q, want %q", tt.token, got, tt.expected)
			}
		})
	}
}

func TestEstimateCTR(t *testing.T) {
	tests := []struct {
		name     string
		likes    int64
		views    int64
		expected string
	}{
		{"typical ratio", 50, 1000, "5.0%"},
		{"capped at thirty", 500, 1000, "30.0%"},
		{"zero views", 50, 0, "0.0%"},
		{"zero likes", 0, 1000, "0.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateCTR(tt.likes, tt.views); got != tt.expected {
				t.Errorf("EstimateCTR(%d, %d) = %q, want %q", tt.likes, tt.views, got, tt.expected)
			}
		})
	}
}

func TestMetricsBundle(t *testing.T) {
	rec := &models.VideoRecord{
		Duration:     "PT10M30S",
		ViewCount:    1000000,
		LikeCount:    50000,
		CommentCount: 2000,
	}

	metrics := Metrics(rec)

	if metrics.Views != "1.0M" {
		t.Errorf("Views = %q, want %q", metrics.Views, "1.0M")
	}
	if metrics.Duration != "10:30" {
		t.Errorf("Duration = %q, want %q", metrics.Duration, "10:30")
	}
	if metrics.Likes != "50.0K" {
		t.Errorf("Likes = %q, want %q", metrics.Likes, "50.0K")
	}
	if metrics.Comments != "2.0K" {
		t.Errorf("Comments = %q, want %q", metrics.Comments, "2.0K")
	}
	if !strings.HasSuffix(metrics.Retention, "%") {
		t.Errorf("Retention = %q, want percentage", metrics.Retention)
	}
	if metrics.CTR != "5.0%" {
		t.Errorf("CTR = %q, want %q", metrics.CTR, "5.0%")
	}
}
