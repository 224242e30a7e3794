// Package ui has small Bubble Tea components shared by clipdeck's screens.
package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NotificationTTL is how long a notice stays on screen.
const NotificationTTL = 3 * time.Second

// Notification asks the notifier to show Text.
type Notification struct {
	Text    string
	IsError bool
}

type clearNotification struct {
	id int
}

// Notify returns a command that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg { return Notification{Text: text} }
}

// NotifyError is Notify rendered as an error.
func NotifyError(text string) tea.Cmd {
	return func() tea.Msg { return Notification{Text: text, IsError: true} }
}

var (
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Notifier shows one notice at a time, appended to the last line of a view.
type Notifier struct {
	current Notification
	id      int
}

func (n *Notifier) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Notification:
		n.id++
		n.current = msg
		id := n.id
		return tea.Tick(NotificationTTL, func(time.Time) tea.Msg {
			return clearNotification{id: id}
		})
	case clearNotification:
		// A newer notice has its own timer.
		if msg.id == n.id {
			n.current = Notification{}
		}
	}

	return nil
}

// Current is the visible notice text, or "".
func (n *Notifier) Current() string {
	return n.current.Text
}

func (n *Notifier) View(content string) string {
	if n.current.Text == "" {
		return content
	}

	text := noticeStyle.Render(n.current.Text)
	if n.current.IsError {
		text = errorStyle.Render(n.current.Text)
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + text
	return strings.Join(lines, "\n")
}

// Matches reports whether msg is a key press bound to any of bindings.
func Matches(msg tea.Msg, bindings ...key.Binding) bool {
	k, ok := msg.(tea.KeyMsg)
	return ok && key.Matches(k, bindings...)
}
