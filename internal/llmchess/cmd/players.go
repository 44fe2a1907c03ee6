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

package cmd

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zubairmh/llm-chess/pkg/config"
	"github.com/zubairmh/llm-chess/pkg/match"
)

// llmchess players
func Players() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Lists the available players",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			listPlayers(cmd.OutOrStdout(), cfg)
			return nil
		},
	}

	cmd.AddCommand(playersList())
	cmd.AddCommand(playersAdd())
	cmd.AddCommand(playersRemove())
	return cmd
}

func playersList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the available players",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			listPlayers(cmd.OutOrStdout(), cfg)
			return nil
		},
	}
}

func listPlayers(w io.Writer, cfg *config.Config) {
	green := color.New(color.FgGreen)
	blue := color.New(color.FgBlue)
	yellow := color.New(color.FgYellow)

	green.Fprintln(w, "Available Players:")
	fmt.Fprintln(w)

	for _, key := range cfg.Keys() {
		player, err := cfg.Player(key)
		if err != nil {
			continue
		}

		what := player.Model
		if player.Kind == match.KindRandom {
			what = "random legal moves"
		}

		fmt.Fprintf(w, "- %-20s %s (%s)", blue.Sprint(key+":"), player.Name, what)
		if key == cfg.Match.White {
			yellow.Fprint(w, " white")
		}
		if key == cfg.Match.Black {
			yellow.Fprint(w, " black")
		}
		if config.IsBuiltin(key) {
			if _, overridden := cfg.Players[key]; !overridden {
				fmt.Fprint(w, " [built-in]")
			}
		}
		fmt.Fprintln(w)
	}
}

func playersAdd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add key",
		Short: "Add a player to the configuration file",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`add stores a player under the given key, which is the name
			used by --white and --black. A player with the same key is
			replaced, which can be used to override a built-in player.`),
		Example: heredoc.Doc(`
			$ llmchess players add qwen --model qwen2.5-7b-instruct
			$ llmchess players add gpt --model gpt-4o-mini --base-url https://api.openai.com/v1 --api-key $OPENAI_API_KEY`),

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()

			var player match.PlayerConfig
			player.Name, _ = flags.GetString("name")
			player.Kind, _ = flags.GetString("kind")
			player.Model, _ = flags.GetString("model")
			player.BaseURL, _ = flags.GetString("base-url")
			player.APIKey, _ = flags.GetString("api-key")
			player.Temperature, _ = flags.GetFloat32("temperature")
			player.MaxTokens, _ = flags.GetInt("max-tokens")
			player.Timeout, _ = flags.GetDuration("timeout")

			if player.Name == "" {
				player.Name = args[0]
			}

			if player.Kind == match.KindLLM && player.Model == "" {
				return fmt.Errorf("players add %s: --model is required", args[0])
			}

			if err := cfg.Add(args[0], player); err != nil {
				return err
			}

			color.New(color.FgGreen).Fprint(cmd.OutOrStdout(), "Added Player: ")
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", args[0], cfg.Path())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("name", "", "Display name (default key)")
	flags.String("kind", match.KindLLM, "Kind of player, llm or random")
	flags.String("model", "", "Model name sent to the endpoint")
	flags.String("base-url", "", "OpenAI-compatible endpoint (default api.openai.com)")
	flags.String("api-key", "", "API key sent to the endpoint")
	flags.Float32("temperature", 0, "Sampling temperature")
	flags.Int("max-tokens", 0, "Maximum tokens in a reply")
	flags.Duration("timeout", 0, "Time limit on a single move")

	return cmd
}

func playersRemove() *cobra.Command {
	return &cobra.Command{
		Use:   "remove key",
		Short: "Remove a player from the configuration file",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if err := cfg.Remove(args[0]); err != nil {
				return err
			}

			color.New(color.FgGreen).Fprint(cmd.OutOrStdout(), "Removed Player: ")
			fmt.Fprintln(cmd.OutOrStdout(), args[0])
			return nil
		},
	}
}
