package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/clipdeck/clipdeck/color"
	"github.com/clipdeck/clipdeck/icon"
	"github.com/clipdeck/clipdeck/style"
	"github.com/clipdeck/clipdeck/tui"
	"github.com/clipdeck/clipdeck/util"
	"github.com/clipdeck/clipdeck/video"
	"github.com/invopop/jsonschema"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var timeNow = time.Now

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("json", "j", false, "Print the videos as JSON")
	listCmd.Flags().StringP("filter", "f", "", "Only show videos whose title fuzzy-matches the query")
	listCmd.Flags().BoolP("urls", "u", false, "Show the stream URL of each video")
	listCmd.Flags().Bool("schema", false, "Print the JSON schema of the --json output and exit")

	listCmd.SetOut(os.Stdout)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the videos available on the service",
	Aliases: []string{"ls"},
	Example: "  clipdeck list --filter holiday\n  clipdeck list --json | jq '.[].title'",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(videoSchema()))
			return
		}

		var (
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			filter = lo.Must(cmd.Flags().GetString("filter"))
			urls   = lo.Must(cmd.Flags().GetBool("urls"))
		)

		service := newService()

		erase := func() {}
		if !asJson && util.IsTerminal() {
			erase = util.PrintErasable(icon.Get(icon.Progress) + " Fetching videos...")
		}
		videos, err := service.List(cmd.Context())
		erase()
		handleErr(err)

		videos = filterVideos(videos, filter)

		if asJson {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(videos))
			return
		}

		if len(videos) == 0 {
			cmd.Println(style.Faint(tui.EmptyMessage))
			return
		}

		for i, v := range videos {
			cmd.Printf("%s %s\n", style.Fg(color.Accent)("#"+v.IDString()), style.Bold(v.Title))
			cmd.Println(style.Faint(describe(&v)))

			if urls {
				cmd.Println(style.Fg(color.Blue)(service.StreamURL(v.ID)))
			}

			if i < len(videos)-1 {
				cmd.Println()
			}
		}
	},
}

// filterVideos keeps server order and drops videos whose title doesn't fuzzy-match query.
func filterVideos(videos []video.Video, query string) []video.Video {
	if query == "" {
		return videos
	}

	return lo.Filter(videos, func(v video.Video, _ int) bool {
		return fuzzy.MatchFold(query, v.Title)
	})
}

func describe(v *video.Video) string {
	line := v.HumanSize()
	if v.UploadDate != "" {
		line = fmt.Sprintf("%s • %s", line, v.UploadedAgo(timeNow()))
	}

	if v.Description != "" {
		line = fmt.Sprintf("%s • %s", line, v.Description)
	}

	return line
}

func videoSchema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.DoNotReference = true
	reflector.Namer = func(t reflect.Type) string {
		if t.Name() == "" {
			return ""
		}
		return "clipdeck." + t.Name()
	}

	return reflector.Reflect([]video.Video{})
}
