// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package match

import (
	"context"
	"fmt"
	"time"
)

// Player kinds.
const (
	KindLLM    = "llm"
	KindRandom = "random"
)

// PlayerConfig describes one side of a game.
type PlayerConfig struct {
	Name string `yaml:"name" mapstructure:"name"`
	Kind string `yaml:"kind,omitempty" mapstructure:"kind"`

	// OpenAI-compatible endpoint of the model.
	Model   string `yaml:"model,omitempty" mapstructure:"model"`
	BaseURL string `yaml:"base-url,omitempty" mapstructure:"base-url"`
	APIKey  string `yaml:"api-key,omitempty" mapstructure:"api-key"`

	Temperature float32 `yaml:"temperature,omitempty" mapstructure:"temperature"`
	MaxTokens   int     `yaml:"max-tokens,omitempty" mapstructure:"max-tokens"`

	// Timeout bounds a single move request. Zero waits forever.
	Timeout time.Duration `yaml:"timeout,omitempty" mapstructure:"timeout"`
}

// Player picks moves for one side of a game.
type Player interface {
	// Name is the player's display name.
	Name() string

	// Move returns the player's choice among query.Legal. The returned
	// string is not validated; that is up to the caller.
	Move(ctx context.Context, query *Query) (string, error)
}

// NewPlayer creates the Player described by config.
func NewPlayer(config PlayerConfig) (Player, error) {
	switch config.Kind {
	case KindLLM, "":
		return NewLLMPlayer(config)
	case KindRandom:
		return NewRandomPlayer(config.Name, time.Now().UnixNano()), nil
	default:
		return nil, fmt.Errorf("new player: unknown kind %q", config.Kind)
	}
}
