// Package config loads filedeck settings with viper: a .filedeck config
// file (yaml implicit) discovered in the working directory or an
// override path, with FILEDECK_-prefixed env vars on top.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the tunables for the panel engine and shell. Values are
// in terminal cells.
type Config struct {
	StateDir       string // layout persistence base path ("" = default)
	StartDir       string // initial directory for the file list ("" = cwd)
	PanelMinWidth  int    // minimum floating panel width
	PanelMinHeight int    // minimum floating panel height
	VisibleMargin  int    // cells of a panel that must stay on screen
	FollowOffsetX  int    // selection anchor to panel offset, columns
	FollowOffsetY  int    // selection anchor to panel offset, rows
}

// Load reads configuration. A missing config file is fine; defaults and
// env vars apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("state_dir", "")
	v.SetDefault("start_dir", "")
	v.SetDefault("panel_min_width", 24)
	v.SetDefault("panel_min_height", 6)
	v.SetDefault("visible_margin", 2)
	v.SetDefault("follow_offset_x", 2)
	v.SetDefault("follow_offset_y", 1)

	v.SetConfigName(".filedeck") // .yaml is implicit
	v.SetEnvPrefix("FILEDECK")
	v.AutomaticEnv()

	if override := os.Getenv("FILEDECK_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		StateDir:       v.GetString("state_dir"),
		StartDir:       v.GetString("start_dir"),
		PanelMinWidth:  v.GetInt("panel_min_width"),
		PanelMinHeight: v.GetInt("panel_min_height"),
		VisibleMargin:  v.GetInt("visible_margin"),
		FollowOffsetX:  v.GetInt("follow_offset_x"),
		FollowOffsetY:  v.GetInt("follow_offset_y"),
	}, nil
}
