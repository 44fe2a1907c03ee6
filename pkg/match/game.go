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
	"errors"
	"fmt"
	"time"

	"github.com/notnil/chess"
	"github.com/sirupsen/logrus"

	"github.com/zubairmh/llm-chess/pkg/match/games"
)

// ErrAborted is returned by Run when the game was stopped from outside,
// by closing the window or cancelling the context.
var ErrAborted = errors.New("match: game aborted")

// IllegalMoveError is returned by Run when a player answers with a move
// which is not in the legal move list it was given.
type IllegalMoveError struct {
	Player string
	Side   chess.Color
	Move   string
	Legal  []string

	// Err is set when the move was in the list but the move oracle
	// refused it.
	Err error
}

func (err *IllegalMoveError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("match: %s played illegal move %q: %v", err.Player, err.Move, err.Err)
	}

	return fmt.Sprintf("match: %s played illegal move %q", err.Player, err.Move)
}

func (err *IllegalMoveError) Unwrap() error {
	return err.Err
}

// Cue is a sound played on a game event.
type Cue int

const (
	CueMove  Cue = iota // a move which does not give check
	CueCheck            // a move which gives check
	CueEnd              // the game is over
)

// Sounder plays sound cues.
type Sounder interface {
	Play(cue Cue)
}

// View shows a game to the user.
type View interface {
	// Message shows text alone on the screen for the given duration.
	Message(text string, duration time.Duration)

	// Render draws the game's current position. last is nil before the
	// first move.
	Render(game *chess.Game, last *chess.Move)

	// Closed reports whether the user has closed the view.
	Closed() bool
}

// Timing holds the durations of the pauses around a game.
type Timing struct {
	Splash time.Duration `yaml:"splash" mapstructure:"splash"` // game ID screen
	Pause  time.Duration `yaml:"pause" mapstructure:"pause"`   // after the last move
	Result time.Duration `yaml:"result" mapstructure:"result"` // result screen
}

var DefaultTiming = Timing{
	Splash: 3 * time.Second,
	Pause:  5 * time.Second,
	Result: 10 * time.Second,
}

type Config struct {
	// ID identifies the game to the players; Name is the PGN Event.
	ID, Name string

	// PositionFEN is the starting position, StartFEN if empty.
	PositionFEN string

	// Players[0] plays White and Players[1] Black.
	Players [2]PlayerConfig

	// ClaimDraws ends the game as soon as a draw by threefold repetition
	// or the fifty-move rule can be claimed.
	ClaimDraws bool

	Timing Timing
}

// Match is a single game between two players.
type Match struct {
	Config  *Config
	Players [2]Player

	View    View
	Sounder Sounder

	// Game is the position and move history, owned by the rules library.
	Game *chess.Game

	oracle games.Oracle
}

func New(config *Config, players [2]Player, view View, sounder Sounder) (*Match, error) {
	if config.PositionFEN == "" {
		config.PositionFEN = StartFEN
	}

	fen, err := chess.FEN(config.PositionFEN)
	if err != nil {
		return nil, fmt.Errorf("new match: %w", err)
	}

	oracle := games.GetOracle("chess")
	oracle.Initialize(config.PositionFEN)

	return &Match{
		Config:  config,
		Players: players,
		View:    view,
		Sounder: sounder,
		Game:    chess.NewGame(fen, chess.UseNotation(chess.UCINotation{})),
		oracle:  oracle,
	}, nil
}

// Run plays the game until the rules report it over, a player plays an
// illegal move, or the view is closed. It returns the game's result and,
// when the game did not end by the rules, an *IllegalMoveError, ErrAborted,
// or the error of the player which failed.
func (match *Match) Run(ctx context.Context) (Result, error) {
	game := match.Game

	match.View.Message("Game ID: "+match.Config.ID, match.Config.Timing.Splash)

	var stopErr error
	for game.Outcome() == chess.NoOutcome {
		if match.View.Closed() || ctx.Err() != nil {
			return Result{Score: Unknown, Reason: "Game aborted"}, ErrAborted
		}

		query := NewQuery(match.Config.ID, game)
		player := match.Players[SideIndex(query.Turn)]

		logrus.Debugf("%s to move: %d legal moves", ColorName(query.Turn), len(query.Legal))

		mov, err := player.Move(ctx, query)
		if err != nil {
			if ctx.Err() != nil {
				return Result{Score: Unknown, Reason: "Game aborted"}, ErrAborted
			}

			return Result{Score: Unknown, Reason: err.Error()}, err
		}

		var last *chess.Move
		if query.IsLegal(mov) {
			last, err = match.apply(mov)
		}

		if last == nil {
			logrus.Error("Invalid move generated. Terminating game.")
			stopErr = &IllegalMoveError{
				Player: player.Name(),
				Side:   query.Turn,
				Move:   mov,
				Legal:  query.Legal,
				Err:    err,
			}
			break
		}

		logrus.Infof("%s played %s", player.Name(), mov)

		if last.HasTag(chess.Check) {
			match.Sounder.Play(CueCheck)
		} else {
			match.Sounder.Play(CueMove)
		}

		if match.Config.ClaimDraws {
			match.claimDraw()
		}

		match.View.Render(game, last)
	}

	match.Sounder.Play(CueEnd)
	sleep(ctx, match.Config.Timing.Pause)

	result := ResultOf(game)
	logrus.Info(result.Reason)
	match.View.Message(result.Reason, match.Config.Timing.Result)

	return result, stopErr
}

// apply plays the given legal move on the board and on the oracle.
func (match *Match) apply(uci string) (*chess.Move, error) {
	var mov *chess.Move
	for _, valid := range match.Game.ValidMoves() {
		if valid.String() == uci {
			mov = valid
			break
		}
	}

	if mov == nil {
		return nil, fmt.Errorf("match: %s is not a valid move", uci)
	}

	// The oracle referees independently of the board the players see. It
	// disagreeing with the rules library means one of the two is broken.
	if err := match.oracle.MakeMove(uci); err != nil {
		return nil, fmt.Errorf("match: oracle rejected %s: %w", uci, err)
	}

	if err := match.Game.Move(mov); err != nil {
		return nil, err
	}

	return mov, nil
}

// claimDraw ends the game if a draw by threefold repetition or the
// fifty-move rule can be claimed. The oracle is asked first; the rules
// library's own list of eligible draws backs it up.
func (match *Match) claimDraw() {
	if match.Game.Outcome() != chess.NoOutcome {
		return
	}

	var method chess.Method

	switch _, reason := match.oracle.GameResult(); reason {
	case games.ReasonThreefoldRepetition:
		method = chess.ThreefoldRepetition
	case games.ReasonFiftyMoveRule:
		method = chess.FiftyMoveRule
	default:
		for _, eligible := range match.Game.EligibleDraws() {
			if eligible == chess.ThreefoldRepetition || eligible == chess.FiftyMoveRule {
				method = eligible
				break
			}
		}
	}

	if method == chess.NoMethod {
		return
	}

	if err := match.Game.Draw(method); err != nil {
		logrus.WithField("method", method).Warn("draw claim refused: ", err)
	}
}

// SideIndex maps a colour to its index in Config.Players.
func SideIndex(color chess.Color) int {
	if color == chess.Black {
		return 1
	}

	return 0
}

func sleep(ctx context.Context, duration time.Duration) {
	if duration <= 0 {
		return
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
