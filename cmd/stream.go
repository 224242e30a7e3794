package cmd

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/clipdeck/clipdeck/color"
	"github.com/clipdeck/clipdeck/history"
	"github.com/clipdeck/clipdeck/icon"
	"github.com/clipdeck/clipdeck/key"
	"github.com/clipdeck/clipdeck/log"
	"github.com/clipdeck/clipdeck/open"
	"github.com/clipdeck/clipdeck/player"
	"github.com/clipdeck/clipdeck/style"
	"github.com/clipdeck/clipdeck/video"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid video id %q", arg)
	}

	return id, nil
}

func init() {
	rootCmd.AddCommand(streamCmd)
	streamCmd.SetOut(os.Stdout)
}

var streamCmd = &cobra.Command{
	Use:     "stream [id]",
	Short:   "Print the stream URL of a video",
	Args:    cobra.ExactArgs(1),
	Example: "  mpv $(clipdeck stream 42)",
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		handleErr(err)

		cmd.Println(newService().StreamURL(id))
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolP("open", "o", false, "Open the stream URL with the system handler instead of a player")
}

var playCmd = &cobra.Command{
	Use:   "play [id]",
	Short: "Stream a video with mpv or IINA",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		handleErr(err)

		service := newService()
		target := service.StreamURL(id)

		if lo.Must(cmd.Flags().GetBool("open")) {
			handleErr(open.Run(target))
			return
		}

		name := viper.GetString(key.Player)
		checkPlayer(name)

		// the title is only cosmetic, so a failed lookup is not fatal
		v := &video.Video{ID: id, Title: "Video " + args[0]}
		if videos, err := service.List(cmd.Context()); err != nil {
			log.Warnf("looking up video %d: %v", id, err)
		} else if found, ok := lo.Find(videos, func(candidate video.Video) bool { return candidate.ID == id }); ok {
			v = &found
		}

		p, err := player.New(name)
		handleErr(err)
		handleErr(p.Play(target, v.Title))

		var (
			mu      sync.Mutex
			watched float64
		)

		fmt.Printf("%s %s\n", style.Fg(color.Orange)(icon.Get(icon.Play)), style.Bold(v.Title))
		p.Track(func(percent float64) {
			mu.Lock()
			watched = max(watched, percent)
			mu.Unlock()
			fmt.Printf("\r%s", style.Faint(fmt.Sprintf("%.0f%% watched", percent)))
		})

		select {
		case <-p.Wait():
		case <-cmd.Context().Done():
		}
		_ = p.Close()
		fmt.Println()

		mu.Lock()
		defer mu.Unlock()

		if _, ok := p.(*player.IINA); ok {
			watched = 100
		}

		if viper.GetBool(key.HistorySaveOnPlay) {
			handleErr(history.Save(service.Base(), v, watched))
		}
	},
}
