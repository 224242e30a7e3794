// Package style holds small lipgloss render helpers shared by the CLI and TUI.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/clipdeck/clipdeck/color"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored is a style with the given foreground and background.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer painting its input with c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Truncate returns a renderer that wraps its input at width max.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().Width(max).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Title renders a screen heading.
var Title = func(s string) string {
	return Colored(color.New("230"), color.Accent).Padding(0, 1).Render(s)
}

// ErrorTitle renders the heading of the error screen.
var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

// Tag returns a renderer for small padded badges such as "Watched".
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}
