package config

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/zksync-community/storage-proofs/aggregator"
	"github.com/zksync-community/storage-proofs/etherman"
	"github.com/zksync-community/storage-proofs/l2client"
	"github.com/zksync-community/storage-proofs/log"
)

const (
	// FlagCfg is the flag for the configuration file.
	FlagCfg = "cfg"
	// FlagNetwork is the flag for the preconfigured network to use.
	FlagNetwork = "network"
)

// Config represents the full configuration of the storage proof provider.
type Config struct {
	Log        log.Config        `mapstructure:"Log"`
	Etherman   etherman.Config   `mapstructure:"Etherman"`
	L2Client   l2client.Config   `mapstructure:"L2Client"`
	Aggregator aggregator.Config `mapstructure:"Aggregator"`
}

// Default parses the default configuration values.
func Default() (*Config, error) {
	var cfg Config
	viper.SetConfigType("toml")
	err := viper.ReadConfig(bytes.NewBuffer([]byte(DefaultValues)))
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load loads the configuration: defaults first, then the optional network
// preset, then the optional config file, then environment variables prefixed
// with STORAGE_PROOFS_.
func Load(ctx *cli.Context) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if network := ctx.String(FlagNetwork); network != "" {
		if err := applyNetwork(network); err != nil {
			return nil, err
		}
	}

	configFilePath := ctx.String(FlagCfg)
	if configFilePath != "" {
		dirName, fileName := filepath.Split(configFilePath)
		fileExtension := strings.TrimPrefix(filepath.Ext(fileName), ".")
		fileNameWithoutExtension := strings.TrimSuffix(fileName, "."+fileExtension)

		viper.AddConfigPath(dirName)
		viper.SetConfigName(fileNameWithoutExtension)
		viper.SetConfigType(fileExtension)
	}
	viper.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)
	viper.SetEnvPrefix("STORAGE_PROOFS")

	if configFilePath != "" {
		if err := viper.MergeInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Infof("config file not found")
			} else {
				log.Infof("error reading config file: %v", err)
				return nil, err
			}
		}
	}

	err = viper.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
