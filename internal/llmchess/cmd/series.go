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
	"os"
	"os/signal"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zubairmh/llm-chess/pkg/display"
	"github.com/zubairmh/llm-chess/pkg/series"
)

// llmchess series
func Series() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Play game pairs between two players and compare them",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`series plays pairs of games between two players, each pair
			from the same opening with colours swapped, and reports the
			elo difference between them. With --sprt elo0,elo1 the series
			stops as soon as a sequential probability ratio test accepts
			either hypothesis.

			Games are played headless. The series is saved after every
			pair and an interrupted series can be continued with
			llmchess restart series <name>.`),
		Example: heredoc.Doc(`
			$ llmchess series --pairs 10
			$ llmchess series --white hermes --black random --sprt 0,200 --openings book.epd`),

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()

			white, black := cfg.Match.White, cfg.Match.Black
			if flags.Changed("white") {
				white, _ = flags.GetString("white")
			}
			if flags.Changed("black") {
				black, _ = flags.GetString("black")
			}

			var config series.Config
			for i, key := range []string{white, black} {
				if config.Players[i], err = cfg.Player(key); err != nil {
					return err
				}
			}

			config.Name, _ = flags.GetString("name")
			config.Pairs, _ = flags.GetInt("pairs")
			config.Openings.File, _ = flags.GetString("openings")
			config.Openings.Order, _ = flags.GetString("order")
			config.PGNOut, _ = flags.GetString("pgn-out")
			config.ClaimDraws = cfg.Match.ClaimDraws
			if flags.Changed("claim-draws") {
				config.ClaimDraws, _ = flags.GetBool("claim-draws")
			}

			if flags.Changed("sprt") {
				elos, _ := flags.GetFloat64Slice("sprt")
				if len(elos) != 2 {
					return fmt.Errorf("series: --sprt takes two elos, got %d", len(elos))
				}

				config.SPRT = &series.SPRTConfig{Elo0: elos[0], Elo1: elos[1]}
				config.SPRT.Alpha, _ = flags.GetFloat64("alpha")
				config.SPRT.Beta, _ = flags.GetFloat64("beta")
				config.SPRT.Legacy, _ = flags.GetBool("legacy")
			}

			s, err := series.New(config)
			if err != nil {
				return err
			}

			s.View = display.Headless{}
			s.Sounder = display.Mute{}
			s.NewPlayer = display.ThinkingPlayer

			logrus.Infof("Series %s: %s vs %s", s.Name, s.Players[0].Name, s.Players[1].Name)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if err := s.Run(ctx); err != nil {
				logrus.Infof("Series %s stopped, continue it with: llmchess restart series %s", s.Name, s.Name)
				return err
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP("white", "w", "", "Player 1, white in the first game of every pair")
	flags.StringP("black", "b", "", "Player 2")
	flags.String("name", "", "Name of the series (default a random name)")
	flags.Int("pairs", 0, "Number of game pairs, 0 to play until the sprt ends")
	flags.String("openings", "", "FEN or EPD file with one opening per line")
	flags.String("order", "sequential", "Order of the openings, sequential or random")
	flags.String("pgn-out", "", "File to append the game records to")
	flags.Bool("claim-draws", false, "Claim threefold repetition and fifty-move draws")
	flags.Float64Slice("sprt", nil, "Run an sprt with the hypotheses elo0,elo1")
	flags.Float64("alpha", 0.05, "sprt type I error probability")
	flags.Float64("beta", 0.05, "sprt type II error probability")
	flags.Bool("legacy", false, "Use the trinomial sprt model")

	return cmd
}
