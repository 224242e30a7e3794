package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/clipdeck/clipdeck/color"
	"github.com/clipdeck/clipdeck/history"
	"github.com/clipdeck/clipdeck/style"
	"github.com/clipdeck/clipdeck/util"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Print the history as JSON")
	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show played videos, most recent first",
	Run: func(cmd *cobra.Command, args []string) {
		saved, err := history.Get()
		handleErr(err)

		entries := lo.Values(saved)
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].PlayedAt.After(entries[j].PlayedAt)
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(entries))
			return
		}

		if len(entries) == 0 {
			cmd.Println(style.Faint("No history yet"))
			return
		}

		cmd.Println(style.Faint(util.Quantify(len(entries), "video", "videos") + " played"))
		for _, e := range entries {
			cmd.Printf(
				"%s %s %s %s\n",
				style.Fg(color.Accent)(fmt.Sprintf("#%d", e.VideoID)),
				style.Bold(e.Title),
				style.Fg(color.Yellow)(fmt.Sprintf("%.0f%%", e.WatchedPercentage)),
				style.Faint(humanize.RelTime(e.PlayedAt, timeNow(), "ago", "from now")+" • "+e.Service),
			)
		}
	},
}
