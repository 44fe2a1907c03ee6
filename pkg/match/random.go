package match

import (
	"context"
	"math/rand"
)

// RandomPlayer plays a uniformly random legal move. It needs no model
// server, which makes it handy for dry runs of the match loop.
type RandomPlayer struct {
	name string
	rand *rand.Rand
}

var _ Player = (*RandomPlayer)(nil)

func NewRandomPlayer(name string, seed int64) *RandomPlayer {
	return &RandomPlayer{
		name: name,
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (player *RandomPlayer) Name() string {
	return player.name
}

func (player *RandomPlayer) Move(ctx context.Context, query *Query) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if len(query.Legal) == 0 {
		return "", ErrNoLegalMoves
	}

	return query.Legal[player.rand.Intn(len(query.Legal))], nil
}
