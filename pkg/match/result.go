package match

import (
	"fmt"

	"github.com/notnil/chess"
)

// PairResult represents the result of a single game pair.
type PairResult int

const (
	WinWin   = PairResult(Win + Win)   // Player 1 Double kills
	WinDraw  = PairResult(Win + Draw)  // Player 1 Wins and Holds
	DrawDraw = PairResult(Draw + Draw) // Win-Loss or Draw-Draw
	DrawLoss = PairResult(Draw + Loss) // Player 2 Wins and Holds
	LossLoss = PairResult(Loss + Loss) // Player 2 Double kills
)

func (pair PairResult) String() string {
	switch pair {
	case WinWin:
		return "win-win"
	case WinDraw:
		return "win-draw"
	case DrawDraw:
		return "draw-draw"
	case DrawLoss:
		return "draw-loss"
	case LossLoss:
		return "loss-loss"
	default:
		return "unknown"
	}
}

// GetPairResult returns the PairResult given the Score of each game in the
// pair from Player 1's point of view. Game 1 should be Player 1 vs 2 and
// Game 2 should be Player 2 vs 1.
func GetPairResult(result1, result2 Score) PairResult {
	return PairResult(result1 + result2)
}

// Score represents the result of a single game from White's point of view.
type Score int

const (
	Win  Score = +1
	Draw Score = 0
	Loss Score = -1

	// Unknown is the score of a game which was stopped before the rules
	// reported an outcome: an illegal move or a closed window.
	Unknown Score = 2
)

// GameLostBy maps the losing side to the game's Score.
var GameLostBy = [2]Score{
	0: Loss,
	1: Win,
}

// Flip returns the score from the other side's point of view.
func (score Score) Flip() Score {
	if score == Unknown {
		return Unknown
	}

	return -score
}

// String returns a string representation of the given Score.
func (score Score) String() string {
	switch score {
	case Win:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Loss:
		return "0-1"
	default:
		return "?-?"
	}
}

// Result is the final state of a game.
type Result struct {
	Score  Score
	Method chess.Method

	// Reason is a human readable description of how the game ended.
	Reason string
}

// ResultOf reads the outcome of the given game from the rules library.
func ResultOf(game *chess.Game) Result {
	result := Result{Score: Unknown, Method: game.Method()}

	switch game.Outcome() {
	case chess.WhiteWon:
		result.Score = Win
	case chess.BlackWon:
		result.Score = Loss
	case chess.Draw:
		result.Score = Draw
	}

	result.Reason = ResultText(game)
	return result
}

// Termination returns the upper snake case name of the given method, the
// way game results are announced.
func Termination(method chess.Method) string {
	switch method {
	case chess.Checkmate:
		return "CHECKMATE"
	case chess.Resignation:
		return "RESIGNATION"
	case chess.DrawOffer:
		return "DRAW_OFFER"
	case chess.Stalemate:
		return "STALEMATE"
	case chess.ThreefoldRepetition:
		return "THREEFOLD_REPETITION"
	case chess.FivefoldRepetition:
		return "FIVEFOLD_REPETITION"
	case chess.FiftyMoveRule:
		return "FIFTY_MOVES"
	case chess.SeventyFiveMoveRule:
		return "SEVENTYFIVE_MOVES"
	case chess.InsufficientMaterial:
		return "INSUFFICIENT_MATERIAL"
	default:
		return "UNKNOWN"
	}
}

// ResultText formats the game's outcome for the end of game screen.
func ResultText(game *chess.Game) string {
	switch game.Outcome() {
	case chess.WhiteWon:
		return fmt.Sprintf("Game Over! White wins by %s", Termination(game.Method()))
	case chess.BlackWon:
		return fmt.Sprintf("Game Over! Black wins by %s", Termination(game.Method()))
	case chess.Draw:
		return fmt.Sprintf("Game Over! Result: %s (Draw)", Termination(game.Method()))
	default:
		return "Game Over! No result detected."
	}
}
