package completion

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Hint returns the inline hint describing not-yet-typed arguments, or the
// empty string when nothing remains to hint. The given line must already be
// cut at the cursor position.
//
// The hint slot index is tokenCount-2 whether or not the line ends in
// whitespace: an in-progress argument token already consumes its slot. When
// the line does not end in whitespace a single leading space is prepended so
// the hint renders after the in-progress token instead of overlapping it.
func (e *Engine) Hint(line string) string {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return ""
	}

	specs, ok := e.args[argKey{service: parts[0], command: parts[1]}]
	if !ok {
		return ""
	}

	alreadyTyped := len(parts) - 2
	if alreadyTyped >= len(specs) {
		return ""
	}

	labels := make([]string, 0, len(specs)-alreadyTyped)
	for _, spec := range specs[alreadyTyped:] {
		labels = append(labels, "<"+spec.Label()+">")
	}

	hint := strings.Join(labels, " ")
	if !endsInSpace(line) {
		hint = " " + hint
	}
	return hint
}

// hintStyle renders hints as faint text so they read as a suggestion rather
// than typed input.
var hintStyle = lipgloss.NewStyle().Faint(true)

// HintPainter implements the readline.Painter interface, appending the
// current hint after the typed line. Hints only render while the cursor sits
// at the end of the line; mid-line edits paint the line untouched.
type HintPainter struct {
	engine *Engine
}

// NewHintPainter creates a painter backed by the given engine.
func NewHintPainter(engine *Engine) *HintPainter {
	return &HintPainter{engine: engine}
}

// Paint implements readline.Painter.
func (p *HintPainter) Paint(line []rune, pos int) []rune {
	if pos != len(line) {
		return line
	}
	hint := p.engine.Hint(string(line))
	if hint == "" {
		return line
	}
	return append(line, []rune(hintStyle.Render(hint))...)
}
