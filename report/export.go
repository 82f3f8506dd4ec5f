package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"creator-compass/internal/models"
)

// Data is everything the rendered report needs.
type Data struct {
	Query       string
	GeneratedAt time.Time
	Results     []models.VideoResult
}

// Exporter renders analyzed search results as a standalone HTML report.
type Exporter struct {
	tmpl *template.Template
}

func NewExporter() (*Exporter, error) {
	tmpl := template.New("report").Funcs(template.FuncMap{
		"score": func(s float64) string { return fmt.Sprintf("%.1f", s) },
	})

	tmpl, err := tmpl.Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}
	return &Exporter{tmpl: tmpl}, nil
}

func (e *Exporter) Render(data *Data) (string, error) {
	if data == nil {
		return "", fmt.Errorf("report data cannot be nil")
	}

	var buf bytes.Buffer
	if err := e.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Competitor Analysis - {{.Query}}</title>
<style>
  body { font-family: -apple-system, Helvetica, Arial, sans-serif; background: #0f1117; color: #e5e7eb; margin: 0; padding: 24px; }
  h1 { font-size: 22px; }
  .meta { color: #9ca3af; font-size: 13px; margin-bottom: 24px; }
  .video { background: #1a1d27; border-radius: 8px; padding: 16px; margin-bottom: 16px; }
  .video h2 { font-size: 16px; margin: 0 0 4px; }
  .channel { color: #9ca3af; font-size: 13px; }
  .metrics { margin-top: 8px; font-size: 13px; }
  .metrics span { margin-right: 16px; }
  .badge { display: inline-block; padding: 2px 8px; border-radius: 10px; font-size: 12px; }
  .badge.high { background: #14532d; color: #86efac; }
  .badge.medium { background: #78350f; color: #fcd34d; }
  .badge.low { background: #7f1d1d; color: #fca5a5; }
  ul { margin: 8px 0; padding-left: 20px; font-size: 13px; }
</style>
</head>
<body>
<h1>Competitor Analysis Report</h1>
<div class="meta">Query: <strong>{{.Query}}</strong> · Generated {{.GeneratedAt.Format "Jan 2, 2006 15:04"}} · {{len .Results}} videos</div>
{{range .Results}}
<div class="video">
  <h2>{{.Title}}</h2>
  <div class="channel">{{.Channel}}</div>
  <div class="metrics">
    <span>👁 {{.Metrics.Views}} views</span>
    <span>⏱ {{.Metrics.Duration}}</span>
    <span>👍 {{.Metrics.Likes}} likes</span>
    <span>💬 {{.Metrics.Comments}} comments</span>
    <span>Score: {{score .Score}}/10</span>
    <span class="badge {{.EngagementLevel}}">{{.EngagementLevel}} engagement</span>
  </div>
  <div class="metrics">
    <span>SEO: {{.Insights.SEO}}/100</span>
    <span>Retention est: {{.Metrics.Retention}}</span>
    <span>CTR est: {{.Metrics.CTR}}</span>
  </div>
  {{if .Insights.Strengths}}<ul>{{range .Insights.Strengths}}<li>✅ {{.}}</li>{{end}}</ul>{{end}}
  {{if .Insights.Opportunities}}<ul>{{range .Insights.Opportunities}}<li>💡 {{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
</body>
</html>
`
