package main

import (
	"os"

	"github.com/0xPolygon/obridge"
	"github.com/0xPolygon/obridge/common"
	"github.com/0xPolygon/obridge/config"
	"github.com/0xPolygon/obridge/log"
	"github.com/urfave/cli/v2"
)

const appName = "obridge"

var (
	configFileFlag = cli.StringSliceFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration file(s)",
		Required: true,
	}
	componentsFlag = cli.StringSliceFlag{
		Name:     config.FlagComponents,
		Aliases:  []string{"co"},
		Usage:    "List of components to run",
		Required: false,
		Value: cli.NewStringSlice(common.L1BRIDGE, common.L2BRIDGE, common.STATE_COMMITMENT,
			common.FINALIZER, common.RPC),
	}
	saveConfigFlag = cli.StringFlag{
		Name:     config.FlagSaveConfigPath,
		Aliases:  []string{"s"},
		Usage:    "Save final configuration into to the indicated path (name: obridge_config.toml)",
		Required: false,
	}
	minConfigFlag = cli.BoolFlag{
		Name:     config.FlagMinConfig,
		Aliases:  []string{"m"},
		Usage:    "Only print the vars that depend on the deployment",
		Required: false,
	}
	outputFileFlag = cli.StringFlag{
		Name:     config.FlagOutputFile,
		Aliases:  []string{"o"},
		Usage:    "Write the output to `FILE` instead of stdout",
		Required: false,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Version = obridge.Version
	app.Commands = []*cli.Command{
		{
			Name:    "version",
			Aliases: []string{},
			Usage:   "Application version and build",
			Action:  versionCmd,
		},
		{
			Name:    "run",
			Aliases: []string{},
			Usage:   "Run the bridge node",
			Action:  start,
			Flags:   []cli.Flag{&configFileFlag, &componentsFlag, &saveConfigFlag},
		},
		{
			Name:    "config",
			Aliases: []string{},
			Usage:   "Print the default configuration",
			Action:  configCmd,
			Flags:   []cli.Flag{&minConfigFlag},
		},
		{
			Name:    "config-schema",
			Aliases: []string{},
			Usage:   "Generate the JSON schema of the configuration",
			Action:  configSchemaCmd,
			Flags:   []cli.Flag{&outputFileFlag},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
		os.Exit(1)
	}
}
