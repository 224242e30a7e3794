package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/clipdeck/clipdeck/auth"
	"github.com/clipdeck/clipdeck/color"
	"github.com/clipdeck/clipdeck/icon"
	"github.com/clipdeck/clipdeck/style"
	"github.com/clipdeck/clipdeck/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the token sent to the video service",
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authLoginCmd.Flags().StringP("token", "t", "", "Token to store, prompted for when omitted")
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a bearer token in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		token := lo.Must(cmd.Flags().GetString("token"))

		if token == "" {
			if !util.IsTerminal() {
				handleErr(errors.New("token is required as --token when not running in a terminal"))
			}

			handleErr(survey.AskOne(&survey.Password{
				Message: "Token",
			}, &token, survey.WithValidator(survey.Required)))
		}

		handleErr(auth.SetToken(strings.TrimSpace(token)))
		fmt.Printf("%s token saved\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authLogoutCmd)
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored token",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteToken())
		fmt.Printf("%s token removed\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
	authStatusCmd.SetOut(os.Stdout)
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a token is stored",
	Run: func(cmd *cobra.Command, args []string) {
		token, err := auth.Token()
		handleErr(err)

		if token == "" {
			cmd.Println(style.Faint("not logged in, requests are sent without a token"))
			return
		}

		cmd.Printf("%s logged in with token %s\n", style.Fg(color.Green)(icon.Get(icon.Mark)), maskToken(token))
	},
}

func maskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}

	return strings.Repeat("*", len(token)-4) + token[len(token)-4:]
}
