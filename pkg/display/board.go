package display

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"

	"github.com/zubairmh/llm-chess/pkg/match"
)

// getSquare returns the square on file f and rank r.
func getSquare(f chess.File, r chess.Rank) chess.Square {
	return chess.Square((int(r) * 8) + int(f))
}

// squareBg returns the theme's color corresponding to the square.
func squareBg(sq chess.Square, t Theme) tcell.Color {
	if (int(sq.File())+int(sq.Rank()))%2 == 0 {
		return t.SquareDark
	}
	return t.SquareLight
}

// highlight returns the background of a square, taking the last move and a
// king in check into account.
func highlight(sq chess.Square, p chess.Piece, last *chess.Move, inCheck chess.Color, t Theme) tcell.Color {
	if inCheck != chess.NoColor && p.Type() == chess.King && p.Color() == inCheck {
		return t.SquareCheck
	}

	if last != nil && (last.S1() == sq || last.S2() == sq) {
		return t.SquareHigh
	}

	return squareBg(sq, t)
}

// pieceFg returns the color a piece is drawn with.
func pieceFg(p chess.Piece, t Theme) tcell.Color {
	if p.Color() == chess.White {
		return t.White
	}
	return t.Black
}

// checkedSide returns the side in check after last, or chess.NoColor.
func checkedSide(game *chess.Game, last *chess.Move) chess.Color {
	if last == nil || !last.HasTag(chess.Check) {
		return chess.NoColor
	}
	return game.Position().Turn()
}

// FullMoveNumber returns the number of the current full move.
func FullMoveNumber(game *chess.Game) int {
	fields := strings.Fields(game.Position().String())
	if len(fields) < 6 {
		return 1
	}

	var n int
	if _, err := fmt.Sscanf(fields[5], "%d", &n); err != nil {
		return 1
	}
	return n
}

// StatusLines returns the text shown below the board.
func StatusLines(game *chess.Game, last *chess.Move) []string {
	lastMove := "None"
	if last != nil {
		lastMove = last.String()
	}

	return []string{
		"Turn: " + match.ColorName(game.Position().Turn()),
		fmt.Sprintf("Move Number: %d", FullMoveNumber(game)),
		"Last Move: " + lastMove,
	}
}
