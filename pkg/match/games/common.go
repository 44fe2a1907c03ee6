// Package games contains the rules oracles which referee a game
// independently of the players and of the board they are shown.
package games

import "fmt"

// GetOracle returns the oracle for the named game, or nil if there is none.
func GetOracle(name string) Oracle {
	switch name {
	case "chess", "":
		return &ChessOracle{}
	default:
		return nil
	}
}

type Oracle interface {
	Initialize(fen string)
	MakeMove(mov string) error
	FEN() string
	GameResult() (Result, string)
}

type Result uint8

const (
	Ongoing Result = iota
	StmWins
	XtmWins
	Draw
)

func (result Result) String() string {
	switch result {
	case Ongoing:
		return "ongoing"
	case StmWins:
		return "side to move wins"
	case XtmWins:
		return "side not to move wins"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("result(%d)", uint8(result))
	}
}
