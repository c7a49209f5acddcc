package main

import (
	"os"

	"github.com/0xPolygon/obridge"
	"github.com/urfave/cli/v2"
)

func versionCmd(*cli.Context) error {
	obridge.PrintVersion(os.Stdout)
	return nil
}
