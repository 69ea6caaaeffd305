// Package config reads and writes the fetters TOML configuration file and
// resolves the current sprint from it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/fettersdev/fetters/internal/paths"
	"github.com/fettersdev/fetters/internal/sqlite"
	"github.com/fettersdev/fetters/pkg/types"
)

// Configuration keys.
const (
	KeyCurrentSprintName = "current_sprint_name"
)

// Config wraps a viper instance bound to fetters.toml in the config
// directory. The file holds at least current_sprint_name.
type Config struct {
	v    *viper.Viper
	path string
}

// Load reads fetters.toml from configDir, creating the directory and an
// empty config file on first run.
func Load(configDir string) (*Config, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrApplicationDir, err)
	}

	path := filepath.Join(configDir, paths.ConfigFileName)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetDefault(KeyCurrentSprintName, "")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(path); err != nil {
				return nil, fmt.Errorf("%w: %v", types.ErrConfigSerialize, err)
			}
		} else {
			return nil, fmt.Errorf("%w: %v", types.ErrConfigDeserialize, err)
		}
	}

	return &Config{v: v, path: path}, nil
}

// Path returns the location of the config file on disk.
func (c *Config) Path() string {
	return c.path
}

// CurrentSprintName returns the configured current sprint name, or the
// empty string when none is set.
func (c *Config) CurrentSprintName() string {
	return c.v.GetString(KeyCurrentSprintName)
}

// SetCurrentSprintName writes the current sprint name back to the config
// file.
func (c *Config) SetCurrentSprintName(name string) error {
	c.v.Set(KeyCurrentSprintName, name)
	if err := c.v.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("%w: %v", types.ErrConfigSerialize, err)
	}
	return nil
}

// AllSettings returns the full key/value view of the config for display.
func (c *Config) AllSettings() map[string]any {
	return c.v.AllSettings()
}

// ResolveCurrentSprint looks up the configured sprint name and resolves it
// to a sprint row, creating the sprint lazily when it does not exist yet.
// An empty or missing name returns ErrNoSprintSet. This is the only place
// where lazy sprint creation happens.
func (c *Config) ResolveCurrentSprint(sprints *sqlite.SprintStore) (*types.Sprint, error) {
	name := c.CurrentSprintName()
	if name == "" {
		return nil, types.ErrNoSprintSet
	}
	return sprints.GetOrCreateByName(name)
}
