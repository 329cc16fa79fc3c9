package ui

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

const barWidth = 30

// ProgressBar renders a fixed-width bar on stderr for batch runs. Increment
// is safe to call from multiple workers.
type ProgressBar struct {
	mu     sync.Mutex
	total  int
	done   int
	failed int
	label  string
}

// NewProgressBar creates a bar for total units.
func NewProgressBar(label string, total int) *ProgressBar {
	return &ProgressBar{label: label, total: total}
}

// Increment marks one unit finished and redraws the bar.
func (p *ProgressBar) Increment(failed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done++
	if failed {
		p.failed++
	}
	p.draw()
}

// Finish redraws one last time and moves to the next line.
func (p *ProgressBar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.draw()
	fmt.Fprintln(os.Stderr)
}

// SetTotal sets the unit count once it is known.
func (p *ProgressBar) SetTotal(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.total = total
}

func (p *ProgressBar) draw() {
	if p.total <= 0 {
		// Total not known yet, show a plain counter.
		fmt.Fprintf(os.Stderr, "\r\033[K%s %d done", p.label, p.done)
		if p.failed > 0 {
			fmt.Fprintf(os.Stderr, " (%d failed)", p.failed)
		}
		return
	}

	filled := p.done * barWidth / p.total
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	fmt.Fprintf(os.Stderr, "\r\033[K%s [%s] %d/%d", p.label, bar, p.done, p.total)
	if p.failed > 0 {
		fmt.Fprintf(os.Stderr, " (%d failed)", p.failed)
	}
}
