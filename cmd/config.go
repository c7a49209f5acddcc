package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/0xPolygon/obridge/config"
	"github.com/invopop/jsonschema"
	"github.com/urfave/cli/v2"
)

func configCmd(cliCtx *cli.Context) error {
	// String buffer to concatenate all the default config vars
	defaultConfig := strings.Builder{}
	defaultConfig.WriteString(config.DefaultMandatoryVars)
	if !cliCtx.Bool(config.FlagMinConfig) {
		defaultConfig.WriteString(config.DefaultVars)
		defaultConfig.WriteString(config.DefaultValues)
	}

	_, err := os.Stdout.WriteString(defaultConfig.String())
	return err
}

func configSchemaCmd(cliCtx *cli.Context) error {
	schema, err := generateConfigSchema()
	if err != nil {
		return err
	}
	out := io.Writer(os.Stdout)
	if path := cliCtx.String(config.FlagOutputFile); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, config.DefaultCreationFilePermissions)
		if err != nil {
			return fmt.Errorf("error opening %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}
	_, err = out.Write(schema)
	return err
}

func generateConfigSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// config keys are the go field names, as in the TOML files
		FieldNameTag:              "mapstructure",
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	schema := r.Reflect(&config.Config{})
	schema.Title = "obridge config file"
	return json.MarshalIndent(schema, "", "\t")
}
