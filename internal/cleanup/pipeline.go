package cleanup

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"
)

// Step transforms extracted text before chunking.
type Step interface {
	// Name identifies the step for diagnostics
	Name() string

	// Order determines position in the pipeline (lower runs first)
	Order() int

	// Apply transforms the text
	Apply(text string) string
}

// Pipeline chains cleanup steps in order. Extractors hand over raw text;
// the pipeline output is what gets chunked and embedded.
type Pipeline struct {
	mu     sync.RWMutex
	steps  []Step
	sorted bool
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// DefaultPipeline creates a pipeline with the standard cleanup steps.
func DefaultPipeline() *Pipeline {
	p := NewPipeline()
	p.Add(normalizeNewlines{})
	p.Add(stripControlChars{})
	p.Add(collapseWhitespace{})
	return p
}

// Add adds a step to the pipeline.
// Steps are sorted by Order() before processing.
func (p *Pipeline) Add(step Step) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.steps = append(p.steps, step)
	p.sorted = false
}

// Process applies all steps in order.
func (p *Pipeline) Process(text string) string {
	p.mu.Lock()
	if !p.sorted {
		sort.SliceStable(p.steps, func(i, j int) bool {
			return p.steps[i].Order() < p.steps[j].Order()
		})
		p.sorted = true
	}
	steps := make([]Step, len(p.steps))
	copy(steps, p.steps)
	p.mu.Unlock()

	for _, step := range steps {
		text = step.Apply(text)
	}
	return text
}

// List returns step names in execution order.
func (p *Pipeline) List() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	steps := make([]Step, len(p.steps))
	copy(steps, p.steps)
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Order() < steps[j].Order()
	})

	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name()
	}
	return names
}

// normalizeNewlines rewrites Windows and old-Mac line endings to \n.
type normalizeNewlines struct{}

func (normalizeNewlines) Name() string { return "normalize_newlines" }
func (normalizeNewlines) Order() int   { return 10 }

func (normalizeNewlines) Apply(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// stripControlChars removes non-printing characters that PDF extraction
// tends to leave behind. Newlines and tabs survive.
type stripControlChars struct{}

func (stripControlChars) Name() string { return "strip_control_chars" }
func (stripControlChars) Order() int   { return 20 }

func (stripControlChars) Apply(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) || r == '�' {
			return -1
		}
		return r
	}, text)
}

var (
	spaceRuns = regexp.MustCompile(`[ \t]+`)
	blankRuns = regexp.MustCompile(`\n{3,}`)
)

// collapseWhitespace squeezes runs of spaces and excess blank lines so
// chunk boundaries land on real content.
type collapseWhitespace struct{}

func (collapseWhitespace) Name() string { return "collapse_whitespace" }
func (collapseWhitespace) Order() int   { return 30 }

func (collapseWhitespace) Apply(text string) string {
	text = spaceRuns.ReplaceAllString(text, " ")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
