package models

// VideoRecord is the raw metadata fetched from the video-data provider for a
// single video. It is immutable once fetched; everything the dashboard shows
// is derived from it.
type VideoRecord struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	ChannelTitle string   `json:"channel_title"`
	Description  string   `json:"description"`
	Thumbnail    string   `json:"thumbnail"`
	HDThumbnail  bool     `json:"hd_thumbnail"`
	Tags         []string `json:"tags"`
	Duration     string   `json:"duration"` // ISO 8601 token, e.g. "PT12M34S"
	ViewCount    int64    `json:"view_count"`
	LikeCount    int64    `json:"like_count"`
	CommentCount int64    `json:"comment_count"`
}

// VideoMetrics holds the display-oriented strings derived once per record.
type VideoMetrics struct {
	Views     string `json:"views"`
	Duration  string `json:"duration"`
	Retention string `json:"retention"`
	CTR       string `json:"ctr"`
	Likes     string `json:"likes"`
	Comments  string `json:"comments"`
}

// PerformanceFactor names one driver of a video's performance with its
// impact tier (high, medium or low).
type PerformanceFactor struct {
	Factor      string `json:"factor"`
	Impact      string `json:"impact"`
	Description string `json:"description"`
}

// TagPerformance is the synthetic popularity rating attached to a suggested
// keyword. Trend is one of up, down or stable.
type TagPerformance struct {
	Tag   string `json:"tag"`
	Score int    `json:"score"`
	Trend string `json:"trend"`
}

// SEOAnalysis bundles the SEO recommendations for one video.
type SEOAnalysis struct {
	Score                   int              `json:"score"`
	TitleOptimization       []string         `json:"title_optimization"`
	DescriptionOptimization []string         `json:"description_optimization"`
	TagRecommendations      []string         `json:"tag_recommendations"`
	TagPerformance          []TagPerformance `json:"tag_performance"`
	OptimizedTitle          string           `json:"optimized_title"`
	OptimizedDescription    string           `json:"optimized_description"`
}

// VideoInsights is the analytical bundle derived for one video. Engagement,
// Quality and SEO are 0-100 scores.
type VideoInsights struct {
	Strengths          []string            `json:"strengths"`
	Opportunities      []string            `json:"opportunities"`
	Engagement         float64             `json:"engagement"`
	Quality            float64             `json:"quality"`
	SEO                int                 `json:"seo"`
	KeywordSuggestions []string            `json:"keyword_suggestions"`
	PerformanceFactors []PerformanceFactor `json:"performance_factors"`
	SEOAnalysis        SEOAnalysis         `json:"seo_analysis"`
}

// VideoResult is the unit the search orchestrator produces and the dashboard
// consumes. Score is the composite 0-10 rating; EngagementLevel buckets the
// engagement score into low, medium or high.
type VideoResult struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Channel         string        `json:"channel"`
	Thumbnail       string        `json:"thumbnail"`
	Description     string        `json:"description"`
	Metrics         VideoMetrics  `json:"metrics"`
	Score           float64       `json:"score"`
	Insights        VideoInsights `json:"insights"`
	EngagementLevel string        `json:"engagement_level"`
}
