package main

import (
	"strings"
	"sync"

	"github.com/handiism/lobbygen/internal/config"
)

// defaultConfigPath is looked up in the working directory when --config
// is not given. A missing file means defaults.
const defaultConfigPath = "lobbygen.toml"

type commandContext struct {
	configFlag string
	rootFlag   string
	verbose    bool
	dryRun     bool

	settingsOnce sync.Once
	settings     *config.Settings
	settingsErr  error
}

func (c *commandContext) configPath() string {
	if path := strings.TrimSpace(c.configFlag); path != "" {
		return path
	}
	return defaultConfigPath
}

// ensureSettings loads the config file once and applies flag overrides.
func (c *commandContext) ensureSettings() (*config.Settings, error) {
	c.settingsOnce.Do(func() {
		settings, err := config.Load(c.configPath())
		if err != nil {
			c.settingsErr = err
			return
		}

		if root := strings.TrimSpace(c.rootFlag); root != "" {
			settings.RootDir = root
		}
		c.settings = settings
	})
	return c.settings, c.settingsErr
}
