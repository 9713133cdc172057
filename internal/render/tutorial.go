package render

import (
	"strings"

	"github.com/vovakirdan/wanderer/internal/core"
)

// TutorialStep is one page of the tutorial overlay.
type TutorialStep struct {
	Title string
	Body  string
}

// TutorialSteps is the tutorial shown to new players.
var TutorialSteps = []TutorialStep{
	{"Welcome!", "You are a wanderer in a vast world. Survive and explore."},
	{"Movement", "Use WASD to move. Use the arrow keys to turn and tilt the camera."},
	{"Resources", "Walk up to herbs, trees, rocks and bushes and press E to gather them."},
	{"Survival", "Watch your health and hunger. Press F to eat food, or C to build a campfire and cook."},
	{"Crafting", "Press X to craft an axe from 3 wood and 2 stone. Trees and rocks need an axe."},
}

// Tutorial tracks progress through TutorialSteps.
type Tutorial struct {
	step int
	done bool
}

// NewTutorial returns a tutorial at its first step.
func NewTutorial() *Tutorial {
	return &Tutorial{}
}

// Step returns the current step index.
func (t *Tutorial) Step() int { return t.step }

// Current returns the current step.
func (t *Tutorial) Current() TutorialStep { return TutorialSteps[t.step] }

// Done reports whether the tutorial was finished or skipped.
func (t *Tutorial) Done() bool { return t.done }

// Next advances one step; advancing past the last step finishes it.
func (t *Tutorial) Next() {
	if t.done {
		return
	}
	if t.step == len(TutorialSteps)-1 {
		t.done = true
		return
	}
	t.step++
}

// Prev goes back one step.
func (t *Tutorial) Prev() {
	if t.step > 0 {
		t.step--
	}
}

// Skip finishes the tutorial immediately.
func (t *Tutorial) Skip() {
	t.done = true
}

// TutorialOverlay draws the current tutorial step as a centred box.
func TutorialOverlay(s *core.Screen, t *Tutorial) {
	if t.Done() {
		return
	}
	step := t.Current()
	w := core.Clamp(s.Width()-4, 20, 56)
	lines := wrap(step.Body, w-4)

	h := len(lines) + 6
	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	s.DrawRect(box, ' ')
	s.DrawBox(box)

	s.DrawTextColor(box.X+2, box.Y+1, step.Title, core.ColorBrightYellow)
	for i, line := range lines {
		s.DrawText(box.X+2, box.Y+3+i, line)
	}
	footer := progressDots(t.step, len(TutorialSteps)) + "  enter: next  left: back  esc: skip"
	s.DrawTextColor(box.X+2, box.Bottom()-2, footer, core.ColorGray)
}

func progressDots(step, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i == step {
			b.WriteRune('o')
		} else {
			b.WriteRune('.')
		}
	}
	return b.String()
}

// wrap splits text into lines no wider than width, breaking on spaces.
func wrap(text string, width int) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
