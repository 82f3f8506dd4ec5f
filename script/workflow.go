package script

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"creator-compass/internal/models"
)

// Step is a stage of the script creation flow. Steps unlock in order:
// outline requires a selected path, script requires a generated script.
type Step string

const (
	StepBrainstorm Step = "brainstorm"
	StepOutline    Step = "outline"
	StepScript     Step = "script"
)

var (
	ErrNoSuggestion = errors.New("no creative path selected")
	ErrNoOutline    = errors.New("no outline available yet")
	ErrNoScript     = errors.New("no script generated yet")
	ErrNoSection    = errors.New("section index out of range")
	ErrStepLocked   = errors.New("step is not unlocked yet")
	ErrEmptyNotes   = errors.New("brainstorm notes cannot be empty")
)

// Defaults fill in for suggestions whose sections arrive without metrics.
const (
	defaultEngagement      = 85
	defaultEmotionalImpact = 80
	defaultClarity         = 85
)

// Workflow drives the brainstorm → outline → script state machine. All
// methods are safe for concurrent use; generator calls happen outside the
// lock so a slow model cannot block readers.
type Workflow struct {
	gen Generator
	rng *rand.Rand

	mu          sync.RWMutex
	step        Step
	suggestions []models.ScriptSuggestion
	selected    int
	outline     *models.ScriptOutline
	script      string
	style       string
	keywords    []string
	metrics     models.ScriptMetrics
	versions    []models.ScriptVersion
}

func NewWorkflow(gen Generator, rng *rand.Rand) *Workflow {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Workflow{
		gen:      gen,
		rng:      rng,
		step:     StepBrainstorm,
		selected: -1,
		metrics:  models.ScriptMetrics{Engagement: 85, Retention: 78, Readability: 92},
	}
}

// Analyze turns brainstorm notes into suggested creative paths. Any prior
// path selection is cleared; the step stays at brainstorm until a path is
// chosen.
func (w *Workflow) Analyze(ctx context.Context, notes string) ([]models.ScriptSuggestion, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, ErrEmptyNotes
	}

	suggestions, err := w.gen.SuggestPaths(ctx, notes)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze brainstorm notes: %w", err)
	}

	w.mu.Lock()
	w.suggestions = suggestions
	w.selected = -1
	w.outline = nil
	w.step = StepBrainstorm
	w.mu.Unlock()

	return suggestions, nil
}

// SelectPath picks a suggested path and advances to the outline step.
// Sections missing metrics get the defaults.
func (w *Workflow) SelectPath(index int) (*models.ScriptOutline, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if index < 0 || index >= len(w.suggestions) {
		return nil, ErrNoSuggestion
	}

	chosen := w.suggestions[index].Outline
	outline := models.ScriptOutline{
		Title:    chosen.Title,
		Sections: make([]models.ScriptSection, len(chosen.Sections)),
	}
	for i, section := range chosen.Sections {
		outline.Sections[i] = section
		if section.Metrics == nil {
			outline.Sections[i].Metrics = &models.SectionMetrics{
				Engagement:      defaultEngagement,
				EmotionalImpact: defaultEmotionalImpact,
				Clarity:         defaultClarity,
			}
		} else {
			copied := *section.Metrics
			outline.Sections[i].Metrics = &copied
		}
	}

	w.selected = index
	w.outline = &outline
	w.step = StepOutline
	return w.outlineCopyLocked(), nil
}

// ImproveSection enhances one outline section. The outline is replaced
// wholesale: a failed generator call leaves it untouched.
func (w *Workflow) ImproveSection(ctx context.Context, index int) (*models.ScriptOutline, error) {
	w.mu.RLock()
	if w.outline == nil {
		w.mu.RUnlock()
		return nil, ErrNoOutline
	}
	if index < 0 || index >= len(w.outline.Sections) {
		w.mu.RUnlock()
		return nil, ErrNoSection
	}
	section := w.outline.Sections[index]
	if section.Metrics != nil {
		copied := *section.Metrics
		section.Metrics = &copied
	}
	w.mu.RUnlock()

	improved, err := w.gen.ImproveSection(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("failed to improve section %d: %w", index, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.outline == nil || index >= len(w.outline.Sections) {
		return nil, ErrNoOutline
	}

	next := models.ScriptOutline{
		Title:    w.outline.Title,
		Sections: make([]models.ScriptSection, len(w.outline.Sections)),
	}
	copy(next.Sections, w.outline.Sections)
	next.Sections[index] = improved
	w.outline = &next
	return w.outlineCopyLocked(), nil
}

// GenerateScript composes the full script from the current outline, records
// a new version, and advances to the script step.
func (w *Workflow) GenerateScript(ctx context.Context, topic, style string) (string, error) {
	w.mu.RLock()
	if w.outline == nil {
		w.mu.RUnlock()
		return "", ErrNoOutline
	}
	outline := *w.outline
	w.mu.RUnlock()

	content, keywords, err := w.gen.ComposeScript(ctx, topic, outline)
	if err != nil {
		return "", fmt.Errorf("failed to generate script: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	version := models.ScriptVersion{
		ID:        uuid.New().String(),
		Content:   content,
		Timestamp: time.Now(),
		Style:     style,
		Metrics: models.ScriptMetrics{
			Engagement:  w.rng.Intn(20) + 80,
			Retention:   w.rng.Intn(20) + 75,
			Readability: w.rng.Intn(15) + 85,
		},
	}

	w.script = content
	w.style = style
	w.keywords = keywords
	w.metrics = version.Metrics
	w.versions = append([]models.ScriptVersion{version}, w.versions...)
	w.step = StepScript
	return content, nil
}

// ImproveScript runs an enhancement pass over the current script and bumps
// the overall metrics, clamped at 100.
func (w *Workflow) ImproveScript(ctx context.Context) (string, error) {
	w.mu.RLock()
	if w.script == "" {
		w.mu.RUnlock()
		return "", ErrNoScript
	}
	current := w.script
	w.mu.RUnlock()

	improved, err := w.gen.ImproveScript(ctx, current)
	if err != nil {
		return "", fmt.Errorf("failed to improve script: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.script = improved
	w.metrics = models.ScriptMetrics{
		Engagement:  minInt(w.metrics.Engagement+5, 100),
		Retention:   minInt(w.metrics.Retention+3, 100),
		Readability: minInt(w.metrics.Readability+2, 100),
	}
	return improved, nil
}

// RestoreVersion makes an earlier version the current script again. The
// version history itself is never rewritten.
func (w *Workflow) RestoreVersion(index int) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if index < 0 || index >= len(w.versions) {
		return "", ErrNoScript
	}

	version := w.versions[index]
	w.script = version.Content
	w.style = version.Style
	w.metrics = version.Metrics
	w.step = StepScript
	return version.Content, nil
}

// GoTo moves to a step the user has already unlocked.
func (w *Workflow) GoTo(step Step) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch step {
	case StepBrainstorm:
	case StepOutline:
		if w.outline == nil {
			return ErrStepLocked
		}
	case StepScript:
		if w.script == "" {
			return ErrStepLocked
		}
	default:
		return fmt.Errorf("unknown step %q", step)
	}
	w.step = step
	return nil
}

// Snapshot is a point-in-time copy of the workflow state for API responses.
type Snapshot struct {
	Step        Step                      `json:"step"`
	Suggestions []models.ScriptSuggestion `json:"suggestions"`
	Selected    int                       `json:"selected"`
	Outline     *models.ScriptOutline     `json:"outline,omitempty"`
	Script      string                    `json:"script"`
	Style       string                    `json:"style"`
	Keywords    []string                  `json:"keywords"`
	Metrics     models.ScriptMetrics      `json:"metrics"`
	Versions    []models.ScriptVersion    `json:"versions"`
}

func (w *Workflow) Snapshot() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()

	snap := Snapshot{
		Step:        w.step,
		Suggestions: append([]models.ScriptSuggestion(nil), w.suggestions...),
		Selected:    w.selected,
		Outline:     w.outlineCopyLocked(),
		Script:      w.script,
		Style:       w.style,
		Keywords:    append([]string(nil), w.keywords...),
		Metrics:     w.metrics,
		Versions:    append([]models.ScriptVersion(nil), w.versions...),
	}
	return snap
}

func (w *Workflow) outlineCopyLocked() *models.ScriptOutline {
	if w.outline == nil {
		return nil
	}
	out := models.ScriptOutline{
		Title:    w.outline.Title,
		Sections: make([]models.ScriptSection, len(w.outline.Sections)),
	}
	for i, section := range w.outline.Sections {
		out.Sections[i] = section
		if section.Metrics != nil {
			copied := *section.Metrics
			out.Sections[i].Metrics = &copied
		}
	}
	return &out
}
