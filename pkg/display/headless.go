package display

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/notnil/chess"
	"github.com/sirupsen/logrus"

	"github.com/zubairmh/llm-chess/pkg/internal/util"
	"github.com/zubairmh/llm-chess/pkg/match"
)

// Headless shows the game through the logger, for terminals where the
// window cannot be used and for unattended series.
type Headless struct {
	// Board draws the board after every move.
	Board bool
}

var _ match.View = Headless{}

func (Headless) Message(text string, _ time.Duration) {
	logrus.Info(text)
}

func (headless Headless) Render(game *chess.Game, last *chess.Move) {
	logrus.Debug(strings.Join(StatusLines(game, last), ", "))
	if headless.Board {
		fmt.Println(match.Diagram(game.Position().Board()))
		fmt.Println()
	}
}

func (Headless) Closed() bool {
	return false
}

// thinking shows a spinner while the wrapped player picks its move.
type thinking struct {
	match.Player
}

// Thinking wraps player so that a spinner runs while it thinks.
func Thinking(player match.Player) match.Player {
	return thinking{Player: player}
}

func (player thinking) Move(ctx context.Context, query *match.Query) (string, error) {
	util.StartSpinner(fmt.Sprintf(" %s (%s) is thinking...", player.Name(), match.ColorName(query.Turn)))
	defer util.PauseSpinner()

	return player.Player.Move(ctx, query)
}

// ThinkingPlayer is match.NewPlayer with the player wrapped by Thinking.
func ThinkingPlayer(config match.PlayerConfig) (match.Player, error) {
	player, err := match.NewPlayer(config)
	if err != nil {
		return nil, err
	}

	return Thinking(player), nil
}
