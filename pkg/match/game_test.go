package match

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"
)

// scripted plays its moves in order, over and over.
type scripted struct {
	name  string
	moves []string
	next  int
}

func (player *scripted) Name() string { return player.name }

func (player *scripted) Move(ctx context.Context, _ *Query) (string, error) {
	mov := player.moves[player.next%len(player.moves)]
	player.next++
	return mov, nil
}

type failing struct{ err error }

func (failing) Name() string { return "failing" }

func (player failing) Move(context.Context, *Query) (string, error) {
	return "", player.err
}

// recorder is a View and Sounder which remembers what it was asked to do.
type recorder struct {
	mu       sync.Mutex
	messages []string
	renders  int
	cues     []Cue
	closed   bool
}

func (r *recorder) Message(text string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, text)
}

func (r *recorder) Render(*chess.Game, *chess.Move) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renders++
}

func (r *recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

func (r *recorder) Play(cue Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, cue)
}

func newTestMatch(t *testing.T, fen string, white, black Player, claimDraws bool) (*Match, *recorder) {
	t.Helper()

	rec := &recorder{}
	m, err := New(&Config{
		ID:          "test-game",
		Name:        "test",
		PositionFEN: fen,
		Players: [2]PlayerConfig{
			{Name: white.Name()},
			{Name: black.Name()},
		},
		ClaimDraws: claimDraws,
	}, [2]Player{white, black}, rec, rec)
	require.NoError(t, err)

	return m, rec
}

func TestRunFoolsMate(t *testing.T) {
	white := &scripted{name: "white", moves: []string{"f2f3", "g2g4"}}
	black := &scripted{name: "black", moves: []string{"e7e5", "d8h4"}}

	m, rec := newTestMatch(t, "", white, black, false)

	result, err := m.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, Loss, result.Score)
	require.Equal(t, chess.Checkmate, result.Method)
	require.Equal(t, "Game Over! Black wins by CHECKMATE", result.Reason)

	require.Equal(t, []string{"Game ID: test-game", "Game Over! Black wins by CHECKMATE"}, rec.messages)
	require.Equal(t, 4, rec.renders)
	require.Equal(t, []Cue{CueMove, CueMove, CueMove, CueCheck, CueEnd}, rec.cues)
}

func TestRunIllegalMove(t *testing.T) {
	white := &scripted{name: "white", moves: []string{"e2e5"}}
	black := &scripted{name: "black", moves: []string{"e7e5"}}

	m, rec := newTestMatch(t, "", white, black, false)

	result, err := m.Run(context.Background())

	var illegal *IllegalMoveError
	require.ErrorAs(t, err, &illegal)
	require.Equal(t, "white", illegal.Player)
	require.Equal(t, chess.White, illegal.Side)
	require.Equal(t, "e2e5", illegal.Move)
	require.Len(t, illegal.Legal, 20)

	require.Equal(t, Unknown, result.Score)
	require.Equal(t, "?-?", result.Score.String())
	require.Equal(t, "Game Over! No result detected.", result.Reason)

	require.Zero(t, rec.renders)
	require.Equal(t, []Cue{CueEnd}, rec.cues)
	require.Equal(t, "Game Over! No result detected.", rec.messages[len(rec.messages)-1])
}

func TestRunClosedView(t *testing.T) {
	white := &scripted{name: "white", moves: []string{"e2e4"}}
	black := &scripted{name: "black", moves: []string{"e7e5"}}

	m, rec := newTestMatch(t, "", white, black, false)
	rec.closed = true

	result, err := m.Run(context.Background())
	require.ErrorIs(t, err, ErrAborted)
	require.Equal(t, Unknown, result.Score)

	// No end of game screen for an aborted game.
	require.Equal(t, []string{"Game ID: test-game"}, rec.messages)
	require.Empty(t, rec.cues)
}

func TestRunPlayerError(t *testing.T) {
	failure := errors.New("connection refused")

	m, _ := newTestMatch(t, "", failing{err: failure}, NewRandomPlayer("black", 1), false)

	result, err := m.Run(context.Background())
	require.ErrorIs(t, err, failure)
	require.Equal(t, Unknown, result.Score)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m, _ := newTestMatch(t, "", NewRandomPlayer("white", 1), NewRandomPlayer("black", 2), false)

	_, err := m.Run(ctx)
	require.ErrorIs(t, err, ErrAborted)
}

func TestRunRandomGamesEnd(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		t.Run(fmt.Sprint(seed), func(t *testing.T) {
			white := NewRandomPlayer("white", seed)
			black := NewRandomPlayer("black", seed+100)

			m, rec := newTestMatch(t, "", white, black, false)

			result, err := m.Run(context.Background())
			require.NoError(t, err)
			require.NotEqual(t, chess.NoOutcome, m.Game.Outcome())
			require.NotEqual(t, Unknown, result.Score)
			require.Equal(t, len(m.Game.Moves()), rec.renders)
			require.Equal(t, ResultText(m.Game), result.Reason)
		})
	}
}

func TestRunClaimsRepetition(t *testing.T) {
	white := &scripted{name: "white", moves: []string{"g1f3", "f3g1"}}
	black := &scripted{name: "black", moves: []string{"g8f6", "f6g8"}}

	m, _ := newTestMatch(t, "", white, black, true)

	result, err := m.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, Draw, result.Score)
	require.Equal(t, chess.ThreefoldRepetition, result.Method)
	require.Equal(t, "Game Over! Result: THREEFOLD_REPETITION (Draw)", result.Reason)
	require.Len(t, m.Game.Moves(), 8)
}

func TestRunFromPosition(t *testing.T) {
	// Bare kings are drawn by the rules library without a claim.
	white := NewRandomPlayer("white", 7)
	black := NewRandomPlayer("black", 8)

	m, _ := newTestMatch(t, "7k/8/8/8/8/8/8/K7 w - - 0 1", white, black, false)

	result, err := m.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, Draw, result.Score)
	require.Equal(t, chess.InsufficientMaterial, result.Method)
}

func TestNewBadFEN(t *testing.T) {
	_, err := New(&Config{PositionFEN: "not a fen"}, [2]Player{}, &recorder{}, &recorder{})
	require.Error(t, err)
}
