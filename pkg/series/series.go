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

// Package series plays game pairs between two players, colours swapped and
// the same opening in both games of a pair, and measures the strength
// difference between them.
package series

import (
	"context"
	"errors"
	"fmt"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/notnil/chess"
	"github.com/sirupsen/logrus"

	"github.com/zubairmh/llm-chess/pkg/match"
	"github.com/zubairmh/llm-chess/pkg/stats"
)

var ErrNoLimit = errors.New("new series: no pair limit and no sprt")

type Config struct {
	Name string `yaml:"name"`

	// Players[0] is Player 1: results are counted from its point of view.
	Players [2]match.PlayerConfig `yaml:"players"`

	// Pairs is the maximum number of game pairs. Zero plays until the
	// SPRT reaches a verdict.
	Pairs int `yaml:"pairs"`

	Openings OpeningConfig `yaml:"openings"`

	SPRT *SPRTConfig `yaml:"sprt,omitempty"`

	ClaimDraws bool         `yaml:"claim-draws"`
	Timing     match.Timing `yaml:"timing"`

	// PGNOut is the file game records are appended to, if not empty.
	PGNOut string `yaml:"pgn-out,omitempty"`

	State State `yaml:"state"`
}

type OpeningConfig struct {
	File  string `yaml:"file,omitempty"`
	Order string `yaml:"order,omitempty"` // "random" or sequential
}

type SPRTConfig struct {
	Elo0, Elo1  float64 // The null and the alternate elo hypotheses.
	Alpha, Beta float64 // Confidence bounds for Error types I and II.

	// Legacy uses the trinomial model instead of the pentanomial one.
	Legacy bool `yaml:"legacy"`
}

// State is the progress of a series, saved after every pair.
type State struct {
	Pairs int         `yaml:"pairs"`
	Games int         `yaml:"games"`
	WDL   stats.WDL   `yaml:"wdl"`
	Penta stats.Penta `yaml:"penta"`
}

type Series struct {
	Config

	// View and Sounder are shared by every game of the series.
	View    match.View
	Sounder match.Sounder

	// NewPlayer creates the players of every game, match.NewPlayer if nil.
	NewPlayer func(match.PlayerConfig) (match.Player, error)

	openings *match.OpeningBook

	lower, upper float64
}

func New(config Config) (*Series, error) {
	if config.Pairs <= 0 && config.SPRT == nil {
		return nil, ErrNoLimit
	}

	if config.Name == "" {
		config.Name = petname.Generate(2, "-")
	}

	series := Series{
		Config:    config,
		View:      nilView{},
		Sounder:   nilView{},
		NewPlayer: match.NewPlayer,
	}

	if config.Openings.File != "" {
		var err error
		series.openings, err = match.NewBook(config.Openings.File, config.Openings.Order)
		if err != nil {
			return nil, fmt.Errorf("new series: %w", err)
		}

		logrus.Infof("Loaded %d openings from %s", series.openings.Len(), config.Openings.File)
	}

	if config.SPRT != nil {
		if config.SPRT.Alpha == 0 {
			series.Config.SPRT.Alpha = 0.05
		}

		if config.SPRT.Beta == 0 {
			series.Config.SPRT.Beta = 0.05
		}

		series.lower, series.upper = stats.StoppingBounds(series.SPRT.Alpha, series.SPRT.Beta)
	}

	return &series, nil
}

// Run plays pairs until the pair limit is reached or the SPRT reaches a
// verdict. The state is saved after every pair; a series stopped by an
// error can be continued by loading it and calling Run again.
func (series *Series) Run(ctx context.Context) error {
	for !series.Done() {
		opening := series.opening()

		scores, err := series.playPair(ctx, opening)
		if err != nil {
			if saveErr := series.Save(); saveErr != nil {
				logrus.Error(saveErr)
			}

			return err
		}

		series.record(scores)
		if err := series.Save(); err != nil {
			return err
		}

		series.Report()
	}

	if series.SPRT != nil {
		series.Verdict()
	}

	return nil
}

// Done reports whether the series is over.
func (series *Series) Done() bool {
	if series.Pairs > 0 && series.State.Pairs >= series.Pairs {
		return true
	}

	return series.SPRT != nil && series.Judge() != stats.Continue
}

// Judge returns the current state of the SPRT.
func (series *Series) Judge() stats.Verdict {
	return stats.Judge(series.LLR(), series.lower, series.upper)
}

// LLR returns the log-likelihood ratio of the SPRT, 0 without one.
func (series *Series) LLR() float64 {
	if series.SPRT == nil {
		return 0
	}

	if series.SPRT.Legacy {
		return series.State.WDL.SPRT(series.SPRT.Elo0, series.SPRT.Elo1)
	}

	return series.State.Penta.SPRT(series.SPRT.Elo0, series.SPRT.Elo1)
}

func (series *Series) opening() string {
	if series.openings == nil {
		return match.StartFEN
	}

	if series.Openings.Order == "random" {
		series.openings.Next()
	} else {
		series.openings.Seek(series.State.Pairs)
	}

	return series.openings.Current()
}

// playPair plays the two games of a pair from opening and returns their
// scores from Player 1's point of view.
func (series *Series) playPair(ctx context.Context, opening string) ([2]match.Score, error) {
	var scores [2]match.Score

	p1, p2 := 0, 1
	for game := 0; game < 2; game++ {
		number := series.State.Games + game + 1

		score, err := series.playGame(ctx, number, opening, p1, p2)
		if err != nil {
			return scores, err
		}

		// The game's score is White's; Player 1 is Black in the second game.
		if p1 == 1 {
			score = score.Flip()
		}

		scores[game] = score

		// Switch colours.
		p1, p2 = p2, p1
	}

	return scores, nil
}

func (series *Series) playGame(ctx context.Context, number int, opening string, white, black int) (match.Score, error) {
	config := &match.Config{
		ID:          fmt.Sprintf("%s-%d", series.Name, number),
		Name:        series.Name,
		PositionFEN: opening,
		Players:     [2]match.PlayerConfig{series.Players[white], series.Players[black]},
		ClaimDraws:  series.ClaimDraws,
		Timing:      series.Timing,
	}

	var players [2]match.Player
	for i, player := range config.Players {
		var err error
		if players[i], err = series.NewPlayer(player); err != nil {
			return match.Unknown, err
		}
	}

	logrus.Infof(
		"Starting Game #%d: %s vs %s (%s)",
		number, config.Players[0].Name, config.Players[1].Name, opening,
	)

	game, err := match.New(config, players, series.View, series.Sounder)
	if err != nil {
		return match.Unknown, err
	}

	result, err := game.Run(ctx)

	var illegal *match.IllegalMoveError
	switch {
	case errors.As(err, &illegal):
		// A series can't leave a game unscored: the side which played the
		// illegal move loses it.
		result.Score = match.GameLostBy[match.SideIndex(illegal.Side)]
		logrus.Warnf("Game #%d: %s, scored %s", number, err, result.Score)
	case err != nil:
		return match.Unknown, err
	}

	if series.PGNOut != "" {
		if err := game.WritePGN(series.PGNOut, "llmchess series "+series.Name); err != nil {
			logrus.Error(err)
		}
	}

	logrus.Infof(
		"Finished Game #%d: %s vs %s: %s",
		number, config.Players[0].Name, config.Players[1].Name, result.Score,
	)

	return result.Score, nil
}

// record adds a finished pair to the state.
func (series *Series) record(scores [2]match.Score) {
	for _, score := range scores {
		switch score {
		case match.Win:
			series.State.WDL.Wins++
		case match.Draw:
			series.State.WDL.Draws++
		case match.Loss:
			series.State.WDL.Losses++
		}
	}

	pair := match.GetPairResult(scores[0], scores[1])
	series.State.Penta.Add(int(pair))
	series.State.Pairs++

	logrus.Infof("Finished Pair #%d: %s", series.State.Pairs, pair)
	series.State.Games += 2
}

type nilView struct{}

func (nilView) Message(string, time.Duration)   {}
func (nilView) Render(*chess.Game, *chess.Move) {}
func (nilView) Closed() bool                    { return false }
func (nilView) Play(match.Cue)                  {}
