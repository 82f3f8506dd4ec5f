package analysis

import (
	"fmt"
	"regexp"
	"strconv"

	"creator-compass/internal/models"
)

// Matches ISO 8601 duration tokens as YouTube emits them, e.g. "PT1H2M3S",
// "PT45S", "PT2M".
var durationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// FormatCount renders a raw count the way the dashboard displays it:
// 1,532,000 -> "1.5M", 12,300 -> "12.3K", 999 -> "999".
func FormatCount(n int64) string {
	switch {
	case n >= 1000000:
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	case n >= 1000:
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// parseDurationParts splits a duration token into its components. ok is
// false for anything that doesn't carry the PT prefix.
func parseDurationParts(token string) (hours, minutes, seconds int, ok bool) {
	m := durationRe.FindStringSubmatch(token)
	if m == nil {
		return 0, 0, 0, false
	}
	hours, _ = strconv.Atoi(m[1])
	minutes, _ = strconv.Atoi(m[2])
	seconds, _ = strconv.Atoi(m[3])
	return hours, minutes, seconds, true
}

// FormatDuration renders a duration token as "H:MM:SS" or "M:SS". Missing
// minutes default to 0, seconds are zero-padded. Malformed input yields
// "0:00".
func FormatDuration(token string) string {
	h, m, s, ok := parseDurationParts(token)
	if !ok {
		return "0:00"
	}
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// EstimateRetention approximates audience retention from video length:
// shorter videos retain better. Always within [60%, 90%]; unparsable
// durations yield "0%".
func EstimateRetention(token string) string {
	h, m, s, ok := parseDurationParts(token)
	if !ok {
		return "0%"
	}
	totalSeconds := h*3600 + m*60 + s
	retention := clampFloat(100-float64(totalSeconds)/60, 60, 90)
	return fmt.Sprintf("%.1f%%", retention)
}

// EstimateCTR approximates click-through rate from the like ratio, capped at
// 30%.
func EstimateCTR(likes, views int64) string {
	if views <= 0 {
		return "0.0%"
	}
	ctr := clampFloat(float64(likes)/float64(views)*100, 0, 30)
	return fmt.Sprintf("%.1f%%", ctr)
}

// Metrics derives the display metric bundle for one record.
func Metrics(rec *models.VideoRecord) models.VideoMetrics {
	return models.VideoMetrics{
		Views:     FormatCount(rec.ViewCount),
		Duration:  FormatDuration(rec.Duration),
		Retention: EstimateRetention(rec.Duration),
		CTR:       EstimateCTR(rec.LikeCount, rec.ViewCount),
		Likes:     FormatCount(rec.LikeCount),
		Comments:  FormatCount(rec.CommentCount),
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
