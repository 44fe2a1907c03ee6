// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads llmchess.yaml, the list of players and the default
// match settings.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/zubairmh/llm-chess/pkg/common"
	"github.com/zubairmh/llm-chess/pkg/data"
	"github.com/zubairmh/llm-chess/pkg/internal/util"
	"github.com/zubairmh/llm-chess/pkg/match"
)

//go:embed llmchess.yaml
var BaseConfigFile []byte

// EnvPrefix prefixes the environment variables which override the file,
// e.g. LLMCHESS_MATCH_WHITE.
const EnvPrefix = "LLMCHESS"

var (
	ErrNoPlayer      = errors.New("config: no such player")
	ErrBuiltinPlayer = errors.New("config: built-in players can't be removed")
)

type Config struct {
	// Players maps a player's key, the name used on the command line, to
	// its configuration. Only players from the file are stored here.
	//
	// Keys are model names like gpt-4.1 or MyBot, which viper would fold
	// to lower case and split on dots, so the map is read with yaml.
	Players map[string]match.PlayerConfig `yaml:"players" mapstructure:"-"`

	Match MatchConfig `yaml:"match" mapstructure:"match"`

	path string
}

// MatchConfig holds the defaults of the play command's flags.
type MatchConfig struct {
	White string `yaml:"white" mapstructure:"white"`
	Black string `yaml:"black" mapstructure:"black"`

	ClaimDraws bool `yaml:"claim-draws" mapstructure:"claim-draws"`

	Mute     bool   `yaml:"mute" mapstructure:"mute"`
	Headless bool   `yaml:"headless" mapstructure:"headless"`
	Theme    string `yaml:"theme" mapstructure:"theme"`

	Timing match.Timing `yaml:"timing" mapstructure:"timing"`
}

// Load reads the configuration file at path, creating it from the base
// file if it doesn't exist. An empty path means common.ConfigFile.
func Load(path string) (*Config, error) {
	if path == "" {
		path = common.ConfigFile
	}

	common.TryCreate(path, BaseConfigFile)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Defaults make the keys known to viper, which is what lets the
	// environment override them.
	v.SetDefault("match.white", data.DefaultWhite)
	v.SetDefault("match.black", data.DefaultBlack)
	v.SetDefault("match.claim-draws", false)
	v.SetDefault("match.mute", false)
	v.SetDefault("match.headless", false)
	v.SetDefault("match.theme", "basic")
	v.SetDefault("match.timing.splash", match.DefaultTiming.Splash)
	v.SetDefault("match.timing.pause", match.DefaultTiming.Pause)
	v.SetDefault("match.timing.result", match.DefaultTiming.Result)

	if common.Exists(path) {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	players, err := readPlayers(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	config.Players = players
	if config.Players == nil {
		config.Players = make(map[string]match.PlayerConfig)
	}

	config.path = path
	return &config, nil
}

// readPlayers decodes the players section of the file at path.
func readPlayers(path string) (map[string]match.PlayerConfig, error) {
	if !common.Exists(path) {
		return nil, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var section struct {
		Players map[string]match.PlayerConfig `yaml:"players"`
	}

	if err := yaml.Unmarshal(file, &section); err != nil {
		return nil, err
	}

	return section.Players, nil
}

// Path returns the file the configuration was loaded from.
func (config *Config) Path() string {
	return config.path
}

// Player returns the player with the given key, looking in the file first
// and in the built-in players second.
func (config *Config) Player(key string) (match.PlayerConfig, error) {
	player, found := config.Players[key]
	if !found {
		player, found = data.Players[key]
	}

	if !found {
		return match.PlayerConfig{}, fmt.Errorf("%w: %s", ErrNoPlayer, key)
	}

	if player.Name == "" {
		player.Name = key
	}

	return player, nil
}

// Keys returns the keys of every available player in alphanumeric order.
func (config *Config) Keys() []string {
	seen := make(map[string]bool)

	var keys []string
	for _, players := range []map[string]match.PlayerConfig{data.Players, config.Players} {
		for key := range players {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}

	util.SortAlphanum(keys)
	return keys
}

// IsBuiltin reports whether key names a built-in player.
func IsBuiltin(key string) bool {
	_, found := data.Players[key]
	return found
}

// Add stores the player under key, replacing any player with that key,
// and writes the file.
func (config *Config) Add(key string, player match.PlayerConfig) error {
	if key == "" {
		return errors.New("config: empty player key")
	}

	config.Players[key] = player
	return config.Dump()
}

// Remove deletes the player with the given key from the file.
func (config *Config) Remove(key string) error {
	if _, found := config.Players[key]; !found {
		if IsBuiltin(key) {
			return fmt.Errorf("%w: %s", ErrBuiltinPlayer, key)
		}

		return fmt.Errorf("%w: %s", ErrNoPlayer, key)
	}

	delete(config.Players, key)
	return config.Dump()
}

// Dump writes the configuration back to its file.
func (config *Config) Dump() error {
	file, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(config.path, file, common.FilePermissions)
}
