// Package main is the entry point for the clipdeck CLI.
package main

import (
	"github.com/clipdeck/clipdeck/cmd"
	"github.com/clipdeck/clipdeck/config"
	"github.com/clipdeck/clipdeck/internal/cache"
	"github.com/clipdeck/clipdeck/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go cache.CollectGarbage()

	cmd.Execute()
}
