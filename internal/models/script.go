package models

import "time"

// SectionMetrics are the per-section quality estimates, each 0-100.
type SectionMetrics struct {
	Engagement      int `json:"engagement"`
	EmotionalImpact int `json:"emotional_impact"`
	Clarity         int `json:"clarity"`
}

// ScriptSection is one block of a script outline. Metrics is optional on
// suggestion templates; the workflow fills in defaults when it is absent.
type ScriptSection struct {
	Title   string          `json:"title"`
	Content string          `json:"content"`
	Metrics *SectionMetrics `json:"metrics,omitempty"`
}

// ScriptOutline is a titled, ordered sequence of sections.
type ScriptOutline struct {
	Title    string          `json:"title"`
	Sections []ScriptSection `json:"sections"`
}

// ScriptSuggestion is one proposed approach for a script, produced from
// brainstorm notes.
type ScriptSuggestion struct {
	Title               string        `json:"title"`
	Description         string        `json:"description"`
	PredictedEngagement int           `json:"predicted_engagement"`
	Outline             ScriptOutline `json:"outline"`
}

// ScriptMetrics are the aggregate quality estimates for a generated script,
// each 0-100.
type ScriptMetrics struct {
	Engagement  int `json:"engagement"`
	Retention   int `json:"retention"`
	Readability int `json:"readability"`
}

// ScriptVersion is an immutable snapshot taken every time a script is
// generated. Version history is kept most-recent-first.
type ScriptVersion struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Timestamp time.Time     `json:"timestamp"`
	Style     string        `json:"style"`
	Metrics   ScriptMetrics `json:"metrics"`
}
