package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/clipdeck/clipdeck/color"
	"github.com/clipdeck/clipdeck/constant"
	"github.com/clipdeck/clipdeck/icon"
	"github.com/clipdeck/clipdeck/player"
	"github.com/clipdeck/clipdeck/style"
	"github.com/spf13/cobra"
)

func completionPlayers(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{player.NameMPV, player.NameIINA}, cobra.ShellCompDirectiveNoFileComp
}

// checkPlayer exits with install instructions when the named player can't be launched.
func checkPlayer(name string) {
	if player.Available(name) {
		return
	}

	fmt.Println(missingDependency(player.Executable(name)))
	os.Exit(1)
}

func installHint(dep string) string {
	switch runtime.GOOS {
	case constant.Darwin:
		if dep == player.Executable(player.NameIINA) {
			return "brew install --cask iina"
		}
		return "brew install " + dep
	case constant.Linux:
		return "sudo apt install " + dep
	case constant.Windows:
		return "scoop install " + dep
	default:
		return ""
	}
}

func missingDependency(dep string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep)

	suggestion := ""
	if hint := installHint(dep); hint != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(color.Accent).Bold(true).Render(hint))
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, title, "\n", body, suggestion))
}
