package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// demoConfig is read from flags, LINEINPUT_* variables and a YAML file,
// in that order of precedence.
type demoConfig struct {
	Width        int    `mapstructure:"width"`
	Text         string `mapstructure:"text"`
	HistoryName  string `mapstructure:"history-name"`
	HistoryFile  string `mapstructure:"history-file"`
	HistoryLimit int    `mapstructure:"history-limit"`
	FromHistory  bool   `mapstructure:"from-history"`
	StripPass    bool   `mapstructure:"strip-password"`
	Keymap       string `mapstructure:"keymap"`
	Password     bool   `mapstructure:"password"`
	Completion   bool   `mapstructure:"completion"`
	LogFile      string `mapstructure:"log-file"`
}

func defaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lineinput")
}

func registerFlags(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	var historyFile string
	if dir := defaultConfigDir(); dir != "" {
		historyFile = filepath.Join(dir, "history.yaml")
	}
	fs.String("config", "", "config file (default $XDG_CONFIG_HOME/lineinput/config.yaml)")
	fs.Int("width", 60, "field width in cells")
	fs.String("text", "", "initial text")
	fs.String("history-name", "demo", "history list name, empty disables history")
	fs.String("history-file", historyFile, "YAML file holding history lists")
	fs.Int("history-limit", 0, "entries kept per list (0 uses the default)")
	fs.Bool("from-history", false, "start with the newest history entry")
	fs.Bool("strip-password", true, "remove user:password@ from stored entries")
	fs.String("keymap", "", "TOML keymap file, reloaded on change")
	fs.Bool("password", false, "mask the input")
	fs.Bool("completion", true, "complete files, commands and variables")
	fs.String("log-file", "", "write diagnostics to this file")
}

func loadConfig(v *viper.Viper, cmd *cobra.Command) (demoConfig, error) {
	var cfg demoConfig

	v.SetEnvPrefix("LINEINPUT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return cfg, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir := defaultConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Width < 8 {
		return cfg, fmt.Errorf("width must be at least 8, got %d", cfg.Width)
	}
	return cfg, nil
}
