// Package color is the ANSI palette used by CLI output and the TUI.
package color

import "github.com/charmbracelet/lipgloss"

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
	White  = New("7")
	Black  = New("8")
)

var (
	HiRed    = New("9")
	HiYellow = New("11")
	HiBlack  = New("16")
)

// Brand colors.
var (
	Accent = New("#7d56f4")
	Orange = New("#ffb703")
	Gray   = New("#808080")
)
