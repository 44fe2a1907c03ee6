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
	"errors"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zubairmh/llm-chess/pkg/common"
	"github.com/zubairmh/llm-chess/pkg/config"
	"github.com/zubairmh/llm-chess/pkg/display"
	"github.com/zubairmh/llm-chess/pkg/match"
)

// llmchess play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a single game between two players",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game between two players, by default the
			two models served by a local OpenAI-compatible endpoint. On
			every turn a player is shown the board and the list of legal
			moves, and its answer is constrained to one of those moves.

			The game is shown in a window drawn in the terminal, which can
			be closed with Esc, q or Ctrl-C. With --headless the moves are
			logged instead.

			The game record is written as PGN to --pgn-out, by default
			$XDG_DATA_HOME/llmchess/games/<game-id>.pgn.`),
		Example: heredoc.Doc(`
			$ llmchess play
			$ llmchess play --white random --black deepseek --headless
			$ llmchess play --fen "8/8/8/4k3/8/8/4P3/4K3 w - - 0 1" --claim-draws`),

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			options := playOptionsFrom(cmd, cfg)
			return play(cmd, cfg, options)
		},
	}

	flags := cmd.Flags()
	flags.StringP("white", "w", "", "Player with the white pieces")
	flags.StringP("black", "b", "", "Player with the black pieces")
	flags.String("fen", match.StartFEN, "Starting position")
	flags.Bool("headless", false, "Log the game instead of opening a window")
	flags.Bool("board", false, "Print the board after every move when headless")
	flags.Bool("mute", false, "Don't play sound cues")
	flags.Bool("claim-draws", false, "Claim threefold repetition and fifty-move draws")
	flags.String("theme", "", "Board colour theme, one of basic, wood")
	flags.String("pgn-out", "", "File to append the game record to")
	flags.String("snapshot", "", "SVG file updated with the board after every move")

	return cmd
}

type playOptions struct {
	White, Black string
	FEN          string

	Headless, Board bool
	Mute            bool
	ClaimDraws      bool
	Theme           string

	PGNOut   string
	Snapshot string
}

// playOptionsFrom merges the command line flags over the configuration.
func playOptionsFrom(cmd *cobra.Command, cfg *config.Config) playOptions {
	flags := cmd.Flags()

	options := playOptions{
		White:      cfg.Match.White,
		Black:      cfg.Match.Black,
		Headless:   cfg.Match.Headless,
		Mute:       cfg.Match.Mute,
		ClaimDraws: cfg.Match.ClaimDraws,
		Theme:      cfg.Match.Theme,
	}

	if flags.Changed("white") {
		options.White, _ = flags.GetString("white")
	}

	if flags.Changed("black") {
		options.Black, _ = flags.GetString("black")
	}

	if flags.Changed("headless") {
		options.Headless, _ = flags.GetBool("headless")
	}

	if flags.Changed("mute") {
		options.Mute, _ = flags.GetBool("mute")
	}

	if flags.Changed("claim-draws") {
		options.ClaimDraws, _ = flags.GetBool("claim-draws")
	}

	if flags.Changed("theme") {
		options.Theme, _ = flags.GetString("theme")
	}

	options.FEN, _ = flags.GetString("fen")
	options.Board, _ = flags.GetBool("board")
	options.PGNOut, _ = flags.GetString("pgn-out")
	options.Snapshot, _ = flags.GetString("snapshot")

	return options
}

func play(cmd *cobra.Command, cfg *config.Config, options playOptions) error {
	var players [2]match.Player
	var configs [2]match.PlayerConfig
	for i, key := range []string{options.White, options.Black} {
		var err error
		if configs[i], err = cfg.Player(key); err != nil {
			return err
		}

		if options.Headless {
			players[i], err = display.ThinkingPlayer(configs[i])
		} else {
			players[i], err = match.NewPlayer(configs[i])
		}

		if err != nil {
			return err
		}
	}

	id := uuid.NewString()
	if options.PGNOut == "" {
		options.PGNOut = filepath.Join(common.GamesDirectory, id+".pgn")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var view match.View
	var sounder match.Sounder
	var window *display.Window
	restore := func() {}

	if options.Headless {
		view = display.Headless{Board: options.Board}
		sounder = display.Bell{W: os.Stdout}
	} else {
		theme, err := display.ThemeByName(options.Theme)
		if err != nil {
			return err
		}

		window, err = display.NewWindow("llmchess", theme)
		if err != nil {
			return err
		}

		// The window owns the terminal until it is closed.
		if restore, err = logToFile(); err != nil {
			return err
		}

		window.Start()
		view, sounder = window, window
	}

	if options.Mute {
		sounder = display.Mute{}
	}

	if options.Snapshot != "" {
		view = display.Snapshotter{View: view, Path: options.Snapshot}
	}

	game, err := match.New(&match.Config{
		ID:          id,
		Name:        "llmchess",
		PositionFEN: options.FEN,
		Players:     configs,
		ClaimDraws:  options.ClaimDraws,
		Timing:      cfg.Match.Timing,
	}, players, view, sounder)
	if err != nil {
		if window != nil {
			window.Close()
			restore()
		}

		return err
	}

	result, runErr := game.Run(ctx)

	if window != nil {
		window.Close()
		err := window.Wait()
		restore()
		if err != nil {
			logrus.Error(err)
		}
	}

	if err := game.WritePGN(options.PGNOut, "llmchess"); err != nil {
		logrus.Error(err)
	} else {
		logrus.Infof("Game record written to %s", options.PGNOut)
	}

	logrus.Infof("Game %s: %s %s", id, result.Score, result.Reason)

	var illegal *match.IllegalMoveError
	switch {
	case errors.As(runErr, &illegal), errors.Is(runErr, match.ErrAborted):
		// Already reported by the match.
		logrus.Debug(runErr)
		return nil
	default:
		return runErr
	}
}

// logToFile sends the log to common.LogFile and returns a function which
// restores the previous output.
func logToFile() (func(), error) {
	common.TryMkdir(common.DataDirectory)

	file, err := os.OpenFile(common.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	previous := logrus.StandardLogger().Out
	logrus.SetOutput(file)

	return func() {
		logrus.SetOutput(previous)
		_ = file.Close()
	}, nil
}
