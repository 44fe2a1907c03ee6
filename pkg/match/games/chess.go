package games

import (
	"fmt"
	"strings"

	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/board/move"
	"laptudirm.com/x/mess/pkg/formats/fen"
)

// Reasons reported by ChessOracle.GameResult.
const (
	ReasonCheckmate            = "Checkmate"
	ReasonStalemate            = "Stalemate"
	ReasonFiftyMoveRule        = "50-move Rule"
	ReasonThreefoldRepetition  = "Threefold Repetition"
	ReasonInsufficientMaterial = "Insufficient Material"
)

// IllegalMoveError is returned by MakeMove for a move which is not legal
// in the oracle's position.
type IllegalMoveError struct {
	Move string
	FEN  string
}

func (err *IllegalMoveError) Error() string {
	return fmt.Sprintf("oracle: illegal move %s in %s", err.Move, err.FEN)
}

type ChessOracle struct {
	board *board.Board
	moves []move.Move
}

func (oracle *ChessOracle) Initialize(fenstr string) {
	oracle.board = board.New(board.FEN(fen.FromString(fenstr)))
	oracle.moves = oracle.board.GenerateMoves(false)
}

func (oracle *ChessOracle) MakeMove(uci string) error {
	found, index := false, 0
	for i, mov := range oracle.moves {
		if strings.EqualFold(mov.String(), uci) {
			found = true
			index = i
			break
		}
	}

	if !found {
		return &IllegalMoveError{Move: uci, FEN: oracle.FEN()}
	}

	oracle.board.MakeMove(oracle.moves[index])
	oracle.moves = oracle.board.GenerateMoves(false)
	return nil
}

func (oracle *ChessOracle) FEN() string {
	fen := [6]string(oracle.board.FEN())
	return strings.Join(fen[:], " ")
}

func (oracle *ChessOracle) GameResult() (Result, string) {
	switch {
	case len(oracle.moves) == 0:
		if oracle.board.IsInCheck(oracle.board.SideToMove) {
			return XtmWins, ReasonCheckmate
		}

		return Draw, ReasonStalemate

	case oracle.board.DrawClock >= 100:
		return Draw, ReasonFiftyMoveRule
	case oracle.board.IsThreefoldRepetition():
		return Draw, ReasonThreefoldRepetition
	case oracle.board.IsInsufficientMaterial():
		return Draw, ReasonInsufficientMaterial
	}

	return Ongoing, ""
}
