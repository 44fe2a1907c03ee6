package display

import (
	"image/color"
	"os"

	"github.com/notnil/chess"
	chessimage "github.com/notnil/chess/image"
	"github.com/sirupsen/logrus"

	"github.com/zubairmh/llm-chess/pkg/match"
)

var lastMoveColor = color.RGBA{R: 205, G: 210, B: 106, A: 255}

// SnapshotSVG writes the board to path as an SVG image, with the squares of
// the last move marked.
func SnapshotSVG(path string, board *chess.Board, last *chess.Move) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if last == nil {
		err = chessimage.SVG(file, board)
	} else {
		err = chessimage.SVG(file, board, chessimage.MarkSquares(lastMoveColor, last.S1(), last.S2()))
	}

	if err != nil {
		return err
	}

	return file.Close()
}

// Snapshotter is a View which also keeps an SVG image of the latest
// position at Path.
type Snapshotter struct {
	match.View
	Path string
}

func (snapshotter Snapshotter) Render(game *chess.Game, last *chess.Move) {
	if err := SnapshotSVG(snapshotter.Path, game.Position().Board(), last); err != nil {
		logrus.Warn("board snapshot: ", err)
	}

	snapshotter.View.Render(game, last)
}
