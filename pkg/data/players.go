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

package data

import "github.com/zubairmh/llm-chess/pkg/match"

// LocalEndpoint is the OpenAI-compatible server the built-in players talk
// to, a local LM Studio instance by default.
const LocalEndpoint = "http://localhost:1234/v1"

// DefaultWhite and DefaultBlack name the built-in players used when neither
// the configuration nor the command line picks a side.
const (
	DefaultWhite = "hermes"
	DefaultBlack = "deepseek"
)

// Players are the players llmchess knows about without any configuration.
// Entries in the configuration file with the same name replace them.
var Players = map[string]match.PlayerConfig{
	"hermes": {
		Name:    "Hermes 3 LLaMA 3.1",
		Kind:    match.KindLLM,
		Model:   "hermes-3-llama-3.1-8b",
		BaseURL: LocalEndpoint,
		APIKey:  "lm-studio",
	},

	"deepseek": {
		Name:    "DeepSeek-R1-Qwen-7B",
		Kind:    match.KindLLM,
		Model:   "deepseek-r1-distill-qwen-7b",
		BaseURL: LocalEndpoint,
		APIKey:  "lm-studio",
	},

	"random": {Name: "Random Mover", Kind: match.KindRandom},
}
