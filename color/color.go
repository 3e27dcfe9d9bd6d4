// Package color holds the ANSI colours of plain CLI output. They follow the
// user's terminal theme, unlike the truecolor palette of the TUI.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")

	HiRed    = New("9")
	HiPurple = New("13")
)

// Cream is the text colour drawn on top of Red in error titles.
var Cream = New("230")
