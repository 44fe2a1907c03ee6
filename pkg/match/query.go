package match

import (
	"strings"

	"github.com/notnil/chess"
)

// Query is everything a Player is told about the position before it picks
// a move. It is computed afresh every turn. All moves are UCI strings.
type Query struct {
	GameID string
	Turn   chess.Color

	// Board is a diagram of the position, ranks 8 to 1, uppercase letters
	// for white pieces, lowercase for black and '.' for empty squares.
	Board string

	Legal    []string // every legal move in the position
	Captures []string // legal moves which capture a piece
	Checks   []string // legal moves which give check

	// LastMoves are the last (up to five) moves played, most recent first.
	LastMoves []string
}

// LastMovesN is the number of previous moves included in a Query.
const LastMovesN = 5

// NewQuery builds the Query for the side to move in the given game.
func NewQuery(id string, game *chess.Game) *Query {
	position := game.Position()

	query := Query{
		GameID: id,
		Turn:   position.Turn(),
		Board:  Diagram(position.Board()),
	}

	for _, move := range game.ValidMoves() {
		uci := move.String()
		query.Legal = append(query.Legal, uci)

		if move.HasTag(chess.Capture) || move.HasTag(chess.EnPassant) {
			query.Captures = append(query.Captures, uci)
		}

		if move.HasTag(chess.Check) {
			query.Checks = append(query.Checks, uci)
		}
	}

	moves := game.Moves()
	for i := len(moves) - 1; i >= 0 && len(moves)-i <= LastMovesN; i-- {
		query.LastMoves = append(query.LastMoves, moves[i].String())
	}

	return &query
}

// IsLegal reports whether move is one of the legal moves of the query.
func (query *Query) IsLegal(move string) bool {
	for _, legal := range query.Legal {
		if legal == move {
			return true
		}
	}

	return false
}

// Side returns the name of the side to move in uppercase.
func (query *Query) Side() string {
	return strings.ToUpper(ColorName(query.Turn))
}

// ColorName returns "White" or "Black".
func ColorName(color chess.Color) string {
	if color == chess.Black {
		return "Black"
	}

	return "White"
}

// Diagram draws the board with one letter per piece.
func Diagram(board *chess.Board) string {
	var diagram strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if file > 0 {
				diagram.WriteByte(' ')
			}

			piece := board.Piece(chess.Square(rank*8 + file))
			diagram.WriteByte(pieceLetter(piece))
		}

		if rank > 0 {
			diagram.WriteByte('\n')
		}
	}

	return diagram.String()
}

func pieceLetter(piece chess.Piece) byte {
	var letter byte
	switch piece.Type() {
	case chess.King:
		letter = 'k'
	case chess.Queen:
		letter = 'q'
	case chess.Rook:
		letter = 'r'
	case chess.Bishop:
		letter = 'b'
	case chess.Knight:
		letter = 'n'
	case chess.Pawn:
		letter = 'p'
	default:
		return '.'
	}

	if piece.Color() == chess.White {
		letter -= 'a' - 'A'
	}

	return letter
}
