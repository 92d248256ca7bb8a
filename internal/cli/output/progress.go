package output

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// ProgressBar renders a single-line bar for multi-step CLI operations,
// counted in whole items such as runs fetched for an export.
type ProgressBar struct {
	w     io.Writer
	title string
	unit  string
	width int

	mu      sync.Mutex
	total   int
	current int
}

// NewProgressBar creates a progress bar. unit names the counted items
// ("runs", "models") and appears after the counts.
func NewProgressBar(w io.Writer, title, unit string) *ProgressBar {
	return &ProgressBar{
		w:     w,
		title: title,
		unit:  unit,
		width: 40,
	}
}

// SetTotal sets the expected item count. A total of zero or less keeps
// the bar in indefinite mode, showing only the running count.
func (p *ProgressBar) SetTotal(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.total = total
}

// Increment marks one item done and redraws.
func (p *ProgressBar) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current++
	p.render()
}

// Finish snaps the bar to 100% and moves to the next line.
func (p *ProgressBar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.total > 0 {
		p.current = p.total
	}
	p.render()
	fmt.Fprintln(p.w)
}

func (p *ProgressBar) render() {
	if p.total <= 0 {
		fmt.Fprintf(p.w, "\r%s %d %s", p.title, p.current, p.unit)
		return
	}

	frac := float64(p.current) / float64(p.total)
	if frac > 1 {
		frac = 1
	}

	filled := int(float64(p.width) * frac)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", p.width-filled)

	fmt.Fprintf(p.w, "\r%s [%s] %3.0f%% (%d/%d %s)",
		p.title, bar, frac*100, p.current, p.total, p.unit)
}
