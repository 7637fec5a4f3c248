package ui

import (
	"github.com/charmbracelet/lipgloss"
)

type role int

const (
	heading role = iota
	success
	failure
	notice
	hint
)

const spotifyGreen = lipgloss.Color("#1DB954")

var palette = map[role]lipgloss.Style{
	heading: lipgloss.NewStyle().Bold(true).Underline(true),
	success: lipgloss.NewStyle().Bold(true).Foreground(spotifyGreen),
	failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E22134")),
	notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F59B23")),
	hint:    lipgloss.NewStyle().Faint(true).Italic(true),
}

func render(r role, s string) string {
	return palette[r].Render(s)
}

// Title renders a section heading such as the playlist menu header.
func Title(s string) string { return render(heading, s) }

// OK renders a completed action.
func OK(s string) string { return render(success, s) }

// Err renders a rejected answer.
func Err(s string) string { return render(failure, s) }

// Warn renders a run that ended without moving anything.
func Warn(s string) string { return render(notice, s) }

// Help renders secondary instructions.
func Help(s string) string { return render(hint, s) }
