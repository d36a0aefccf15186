package main

import (
	"os"

	"github.com/muratoffalex/inferhub/cmd/inferhub/app"
)

var (
	version   string
	buildTime string
)

func main() {
	cmd := app.NewInferhubCommand(version, buildTime)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
