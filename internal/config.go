package internal

import (
	"fmt"

	"github.com/spf13/viper"
)

type TabrelConfig struct {
	AppName string `mapstructure:"app_name"`

	Table struct {
		StrictRename bool `mapstructure:"strict_rename"`
		StrictUpdate bool `mapstructure:"strict_update"`
	} `mapstructure:"table"`

	Demo struct {
		Country  string `mapstructure:"country"`
		RowLimit int    `mapstructure:"row_limit"`
	} `mapstructure:"demo"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

func LoadConfig(path string) (*TabrelConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg TabrelConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
