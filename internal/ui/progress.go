// Package ui draws terminal progress for batch runs.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

// ProgressBar is a single-line terminal progress bar.
type ProgressBar struct {
	Total      int
	Current    int
	Prefix     string
	Suffix     string
	Width      int
	FillChar   string
	EmptyChar  string
	StartTime  time.Time
	LastUpdate time.Time
}

// NewProgressBar creates a progress bar with total steps.
func NewProgressBar(total int, prefix string, suffix string) *ProgressBar {
	return &ProgressBar{
		Total:      total,
		Current:    0,
		Prefix:     prefix,
		Suffix:     suffix,
		Width:      30,
		FillChar:   "█",
		EmptyChar:  "░",
		StartTime:  time.Now(),
		LastUpdate: time.Now(),
	}
}

// Update sets the current progress and redraws.
func (p *ProgressBar) Update(current int, suffix string) {
	if current < 0 {
		return
	}
	if current > p.Total {
		current = p.Total
	}

	p.Current = current
	if suffix != "" {
		p.Suffix = suffix
	}

	p.LastUpdate = time.Now()
	p.draw()
}

// Increment advances the progress by one step.
func (p *ProgressBar) Increment(suffix string) {
	p.Update(p.Current+1, suffix)
}

// Complete fills the bar and terminates the line.
func (p *ProgressBar) Complete(suffix string) {
	p.Update(p.Total, suffix)
	fmt.Println()
}

func (p *ProgressBar) draw() {
	percent := float64(p.Current) / float64(p.Total)
	filled := int(percent * float64(p.Width))
	if filled > p.Width {
		filled = p.Width
	}

	bar := strings.Repeat(p.FillChar, filled) + strings.Repeat(p.EmptyChar, p.Width-filled)

	elapsed := time.Since(p.StartTime)
	var remaining time.Duration
	if p.Current > 0 {
		remaining = time.Duration(float64(elapsed) / percent * (1 - percent))
	}

	progressLine := fmt.Sprintf("\r%s [%s] %3.0f%% | %d/%d | %s<%s | %s",
		p.Prefix, bar, percent*100, p.Current, p.Total,
		formatDuration(elapsed), formatDuration(remaining), p.Suffix)

	fmt.Print(color.CyanString(progressLine))
}

// formatDuration renders a duration as MM:SS.
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// String returns a plain, color-free rendering of the bar.
func (p *ProgressBar) String() string {
	percent := float64(p.Current) / float64(p.Total) * 100
	filled := int(float64(p.Current) / float64(p.Total) * float64(p.Width))
	if filled > p.Width {
		filled = p.Width
	}
	bar := "[" + strings.Repeat(p.FillChar, filled) + strings.Repeat(p.EmptyChar, p.Width-filled) + "]"

	return fmt.Sprintf("%s %s %3.0f%% | %d/%d", p.Prefix, bar, percent, p.Current, p.Total)
}
