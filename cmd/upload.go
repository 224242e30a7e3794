package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/clipdeck/clipdeck/color"
	"github.com/clipdeck/clipdeck/icon"
	"github.com/clipdeck/clipdeck/style"
	"github.com/clipdeck/clipdeck/upload"
	"github.com/clipdeck/clipdeck/util"
	"github.com/clipdeck/clipdeck/video"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().StringP("title", "t", "", "Title of the video")
	uploadCmd.Flags().StringP("description", "d", "", "Description of the video")
}

var uploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload a video file to the service",
	Long: `Upload a video file with a title and an optional description.
Missing values are asked for interactively when running in a terminal.`,
	Args:    cobra.MaximumNArgs(1),
	Example: `  clipdeck upload holiday.mp4 --title "Holiday" --description "Beach day"`,
	Run: func(cmd *cobra.Command, args []string) {
		form := &upload.Form{
			Title:       lo.Must(cmd.Flags().GetString("title")),
			Description: lo.Must(cmd.Flags().GetString("description")),
		}

		if len(args) > 0 {
			form.Pick(args[0])
		}

		if util.IsTerminal() {
			handleErr(askMissing(form, cmd.Flags().Changed("description")))
		}

		erase := util.PrintErasable(fmt.Sprintf("%s Uploading %s...", icon.Get(icon.Upload), filepath.Base(form.Path)))
		err := form.Submit(cmd.Context(), newService())
		erase()

		handleErr(err)

		fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), form.Notice())
	},
}

// askMissing prompts for whatever the flags and arguments left empty.
func askMissing(form *upload.Form, descriptionGiven bool) error {
	if form.Path == "" {
		var path string
		err := survey.AskOne(&survey.Input{
			Message: "Video file",
			Suggest: func(toComplete string) []string {
				matches, _ := filepath.Glob(toComplete + "*")
				return matches
			},
		}, &path, survey.WithValidator(survey.Required))
		if err != nil {
			return err
		}
		form.Pick(path)
	}

	if form.Title == "" {
		err := survey.AskOne(&survey.Input{
			Message: "Title",
			Default: util.FileStem(form.Path),
		}, &form.Title, survey.WithValidator(survey.Required), survey.WithValidator(survey.MaxLength(video.MaxTitleLength)))
		if err != nil {
			return err
		}
	}

	if form.Description == "" && !descriptionGiven {
		err := survey.AskOne(&survey.Input{
			Message: "Description (optional)",
		}, &form.Description, survey.WithValidator(survey.MaxLength(video.MaxDescriptionLength)))
		if err != nil {
			return err
		}
	}

	return nil
}
