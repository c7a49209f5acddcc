package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/obridge/common"
	"github.com/0xPolygon/obridge/finalizer"
	"github.com/0xPolygon/obridge/l1bridge"
	"github.com/0xPolygon/obridge/l2bridge"
	"github.com/0xPolygon/obridge/log"
	"github.com/0xPolygon/obridge/metrics"
	"github.com/0xPolygon/obridge/proofverifier"
	"github.com/0xPolygon/obridge/relayer"
	"github.com/0xPolygon/obridge/statecommitment"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const (
	// FlagCfg is the flag for cfg.
	FlagCfg = "cfg"
	// FlagComponents is the flag for components.
	FlagComponents = "components"
	// FlagSaveConfigPath is the flag to save the final configuration file
	FlagSaveConfigPath = "save-config-path"
	// FlagMinConfig prints only the vars that depend on the deployment
	FlagMinConfig = "min-config"
	// FlagOutputFile is the flag for the output file
	FlagOutputFile = "output"

	EnvVarPrefix       = "OBRIDGE"
	ConfigType         = "toml"
	SaveConfigFileName = "obridge_config.toml"

	DefaultCreationFilePermissions = os.FileMode(0600)
)

var (
	// ErrInvalidConfig is returned by Validate
	ErrInvalidConfig = errors.New("invalid config")
)

/*
Config represents the configuration of a bridge node.
The file is [TOML format]; JSON files are converted to TOML before they are merged.

[TOML format]: https://en.wikipedia.org/wiki/TOML
*/
type Config struct {
	// Common Config that affects all the services
	Common common.Config
	// Configure Log level for all the services, allow also to store the logs in a file
	Log log.Config
	// L1Bridge is the configuration of the bridge on the settlement domain
	L1Bridge l1bridge.Config
	// L2Bridge is the configuration of the bridge on the execution domain
	L2Bridge l2bridge.Config
	// StateCommitment is the configuration of the batch commitment chain
	StateCommitment statecommitment.Config
	// Relayer is the configuration of the in-process sequencer relay
	Relayer relayer.Config
	// Finalizer is the configuration of the keeper finalizing matured withdrawals and batches
	Finalizer finalizer.Config
	// RPC is the config for the RPC server
	RPC jRPC.Config
	// Metrics is the config for the prometheus endpoint
	Metrics metrics.Config
}

// Load loads the configuration
func Load(ctx *cli.Context) (*Config, error) {
	configFilePath := ctx.StringSlice(FlagCfg)
	filesData, err := readFiles(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading files:  Err:%w", err)
	}
	saveConfigPath := ctx.String(FlagSaveConfigPath)
	return LoadFile(filesData, saveConfigPath)
}

func readFiles(files []string) ([]FileData, error) {
	result := make([]FileData, 0, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %s. Err:%w", file, err)
		}
		fileContent := string(content)
		fileExtension := getFileExtension(file)
		if fileExtension != ConfigType {
			fileContent, err = convertFileToToml(fileContent, fileExtension)
			if err != nil {
				return nil, fmt.Errorf("error converting file: %s from %s to TOML. Err:%w", file, fileExtension, err)
			}
		}
		result = append(result, FileData{Name: file, Content: fileContent})
	}
	return result, nil
}

func getFileExtension(fileName string) string {
	return fileName[strings.LastIndex(fileName, ".")+1:]
}

// LoadFile renders the defaults followed by files and decodes the result
func LoadFile(files []FileData, saveConfigPath string) (*Config, error) {
	fileData := make([]FileData, 0, len(files)+3) //nolint:mnd
	fileData = append(fileData, FileData{Name: "default_mandatory_vars", Content: DefaultMandatoryVars})
	fileData = append(fileData, FileData{Name: "default_vars", Content: DefaultVars})
	fileData = append(fileData, FileData{Name: "default_values", Content: DefaultValues})
	fileData = append(fileData, files...)

	renderedCfg, err := NewConfigRender(fileData, EnvVarPrefix).Render()
	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := filepath.Join(saveConfigPath, SaveConfigFileName)
		err = os.WriteFile(fullPath, []byte(renderedCfg), DefaultCreationFilePermissions)
		if err != nil {
			err = fmt.Errorf("error writing config file: %s. Err: %w", fullPath, err)
			log.Error(err)
			return nil, err
		}
	}
	return LoadFileFromString(renderedCfg, ConfigType)
}

// LoadFileFromString decodes an already rendered config, environment variables prefixed with
// OBRIDGE_ override its values
func LoadFileFromString(configFileData string, configType string) (*Config, error) {
	cfg := &Config{}
	if err := loadString(cfg, configFileData, configType, true, EnvVarPrefix); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadString(cfg *Config, configData string, configType string,
	allowEnvVars bool, envPrefix string) error {
	v := viper.New()
	v.SetConfigType(configType)
	if allowEnvVars {
		replacer := strings.NewReplacer(".", "_")
		v.SetEnvKeyReplacer(replacer)
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
	}
	if err := v.ReadConfig(bytes.NewBufferString(configData)); err != nil {
		return err
	}
	decodeHooks := []viper.DecoderConfigOption{
		// this allows arrays to be decoded from env var separated by ",", example: MY_VAR="value1,value2,value3"
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(), mapstructure.StringToSliceHookFunc(","))),
	}
	return v.Unmarshal(cfg, decodeHooks...)
}

// Validate rejects the values that would only fail once a component is started
func (c *Config) Validate() error {
	switch c.L1Bridge.RegistrationPolicy {
	case "", l1bridge.PolicyOverwrite, l1bridge.PolicyRejectPending:
	default:
		return fmt.Errorf("%w: unknown L1Bridge.RegistrationPolicy %q", ErrInvalidConfig, c.L1Bridge.RegistrationPolicy)
	}
	switch c.StateCommitment.ProofVerifier.FraudProofMode {
	case "", proofverifier.ModeAcceptAll, proofverifier.ModeNonEmpty:
	default:
		return fmt.Errorf("%w: unknown StateCommitment.ProofVerifier.FraudProofMode %q",
			ErrInvalidConfig, c.StateCommitment.ProofVerifier.FraudProofMode)
	}
	if c.Common.L1NetworkID == c.Common.L2NetworkID {
		return fmt.Errorf("%w: L1NetworkID and L2NetworkID must differ", ErrInvalidConfig)
	}
	return nil
}
