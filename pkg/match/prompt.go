package match

import (
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
)

// Prompt renders the query as the text sent to a language model.
func (query *Query) Prompt() string {
	return heredoc.Docf(`
		GAME ID: %s
		What is the best possible move in this board?
		You play as %s: lowercase characters represent black pieces and uppercase are white
		Board State:
		%s
		Possible Piece Captures: %s
		Possible Check Moves: %s
		Last 5 Moves: %s`,
		query.GameID,
		query.Side(),
		query.Board,
		moveList(query.Captures),
		moveList(query.Checks),
		moveList(query.LastMoves),
	)
}

func moveList(moves []string) string {
	return "[" + strings.Join(moves, ", ") + "]"
}
