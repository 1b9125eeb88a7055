package utils

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 40

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(13)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	todoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("27"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

// ProgressBar reports simulation steps on a single redrawn terminal line
type ProgressBar struct {
	out   io.Writer
	total int
	pos   int
	start time.Time
	now   func() time.Time
}

// NewProgressBar creates a bar for total steps writing to out
func NewProgressBar(out io.Writer, total int) *ProgressBar {
	return &ProgressBar{out: out, total: total, start: time.Now(), now: time.Now}
}

// SetPosition moves the bar to pos and redraws it
func (p *ProgressBar) SetPosition(pos int) {
	p.pos = min(max(pos, 0), p.total)
	fmt.Fprint(p.out, "\r"+p.Line())
}

// Finish completes the bar and prints msg on its own line
func (p *ProgressBar) Finish(msg string) {
	p.SetPosition(p.total)
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, headerStyle.Render(msg))
}

// Line renders the bar: elapsed time, the bar itself, position and ETA
func (p *ProgressBar) Line() string {
	elapsed := p.now().Sub(p.start)

	filled := barWidth
	if p.total > 0 {
		filled = p.pos * barWidth / p.total
	}
	bar := strings.Repeat("#", filled)
	if filled < barWidth {
		bar += ">" + strings.Repeat("-", barWidth-filled-1)
	}

	return fmt.Sprintf("Simulation steps: [%s] [%s%s] %7d/%-7d (%s)",
		formatElapsed(elapsed),
		doneStyle.Render(bar[:filled]),
		todoStyle.Render(bar[filled:]),
		p.pos, p.total,
		p.eta(elapsed),
	)
}

func (p *ProgressBar) eta(elapsed time.Duration) string {
	if p.pos == 0 || p.pos >= p.total {
		return "0s"
	}
	remaining := time.Duration(float64(elapsed) / float64(p.pos) * float64(p.total-p.pos))
	return remaining.Round(time.Second).String()
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	return fmt.Sprintf("%02d:%02d:%02d", h, m, d/time.Second)
}
