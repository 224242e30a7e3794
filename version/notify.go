package version

import (
	"context"
	"fmt"
	"time"

	"github.com/clipdeck/clipdeck/color"
	"github.com/clipdeck/clipdeck/constant"
	"github.com/clipdeck/clipdeck/icon"
	"github.com/clipdeck/clipdeck/key"
	"github.com/clipdeck/clipdeck/style"
	"github.com/clipdeck/clipdeck/util"
	"github.com/spf13/viper"
)

// Notify prints a banner when a newer release exists. Lookup failures are silent.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	erase := util.PrintErasable(icon.Get(icon.Progress) + " Checking for a new version...")
	latest, err := Latest(ctx)
	erase()

	if err != nil {
		return
	}

	if cmp, err := Compare(latest, constant.Version); err != nil || cmp <= 0 {
		return
	}

	fmt.Printf("\n%s New version is available %s %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(you're on %s)", constant.Version)),
		style.Faint("https://github.com/"+constant.Repository+"/releases/tag/v"+latest),
	)
}
