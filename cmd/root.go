// Package cmd implements the command-line interface for clipdeck.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/clipdeck/clipdeck/api"
	"github.com/clipdeck/clipdeck/auth"
	"github.com/clipdeck/clipdeck/color"
	"github.com/clipdeck/clipdeck/constant"
	"github.com/clipdeck/clipdeck/icon"
	"github.com/clipdeck/clipdeck/key"
	"github.com/clipdeck/clipdeck/log"
	"github.com/clipdeck/clipdeck/network"
	"github.com/clipdeck/clipdeck/style"
	"github.com/clipdeck/clipdeck/tui"
	"github.com/clipdeck/clipdeck/util"
	"github.com/clipdeck/clipdeck/version"
	"github.com/clipdeck/clipdeck/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().BoolP("upload", "u", false, "Open the upload form instead of the video list")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("api", "", "Base URL of the video service")
	lo.Must0(viper.BindPFlag(key.APIURL, rootCmd.PersistentFlags().Lookup("api")))

	rootCmd.PersistentFlags().Int("timeout", 0, "Request timeout in seconds, 0 to wait indefinitely")
	lo.Must0(viper.BindPFlag(key.APITimeout, rootCmd.PersistentFlags().Lookup("timeout")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Record playback progress in the local watch history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnPlay, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.PersistentFlags().StringP("player", "P", "", "Player used for streaming (mpv, iina)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("player", completionPlayers))
	lo.Must0(viper.BindPFlag(key.Player, rootCmd.PersistentFlags().Lookup("player")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// leftover mpv sockets from earlier sessions
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.Clipdeck,
	Short: "Browse, upload and stream videos from a video service",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Accent).Render("    - Browse, upload and stream videos from your terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			Upload: lo.Must(cmd.Flags().GetBool("upload")),
			Player: viper.GetString(key.Player),
		}
		handleErr(tui.Run(cmd.Context(), newService(), &options))
	},
}

// Execute runs the command tree until it finishes or the process is interrupted.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newService is the API client for the configured service, authenticated when a token is stored.
func newService() *api.Client {
	token, err := auth.Token()
	if err != nil {
		log.Warnf("reading token from keyring: %v", err)
	}

	timeout := time.Duration(viper.GetInt(key.APITimeout)) * time.Second

	return api.New(
		viper.GetString(key.APIURL),
		api.WithHTTPClient(network.NewClient(timeout)),
		api.WithToken(token),
		api.WithUserAgent(constant.UserAgent),
	)
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(api.Message(err), " \n"))
		os.Exit(1)
	}
}
