package series

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"

	"github.com/zubairmh/llm-chess/pkg/match"
	"github.com/zubairmh/llm-chess/pkg/stats"
)

// script plays fixed moves for each colour.
type script struct {
	name         string
	white, black []string
	n            int
}

func (player *script) Name() string { return player.name }

func (player *script) Move(_ context.Context, query *match.Query) (string, error) {
	moves := player.white
	if query.Turn == chess.Black {
		moves = player.black
	}

	mov := moves[player.n%len(moves)]
	player.n++
	return mov, nil
}

// mater mates with either colour; victim walks into both mates.
func scriptedPlayers(config match.PlayerConfig) (match.Player, error) {
	switch config.Name {
	case "mater":
		return &script{
			name:  config.Name,
			white: []string{"e2e4", "d1h5", "f1c4", "h5f7"},
			black: []string{"e7e5", "d8h4"},
		}, nil
	case "victim":
		return &script{
			name:  config.Name,
			white: []string{"f2f3", "g2g4"},
			black: []string{"e7e5", "b8c6", "g8f6"},
		}, nil
	case "cheater":
		return &script{
			name:  config.Name,
			white: []string{"e2e5"},
			black: []string{"e7e4"},
		}, nil
	default:
		return match.NewPlayer(config)
	}
}

func testSeries(t *testing.T, config Config) *Series {
	t.Helper()

	dir := t.TempDir()
	previous := Directory
	Directory = dir
	t.Cleanup(func() { Directory = previous })

	var out bytes.Buffer
	Output = &out

	s, err := New(config)
	require.NoError(t, err)

	s.NewPlayer = scriptedPlayers
	return s
}

func TestSeriesPairs(t *testing.T) {
	s := testSeries(t, Config{
		Name: "test-random",
		Players: [2]match.PlayerConfig{
			{Name: "one", Kind: match.KindRandom},
			{Name: "two", Kind: match.KindRandom},
		},
		Pairs: 2,
	})

	require.NoError(t, s.Run(context.Background()))

	require.Equal(t, 2, s.State.Pairs)
	require.Equal(t, 4, s.State.Games)
	require.Equal(t, 4, s.State.WDL.Games())
	require.Equal(t, 2, s.State.Penta.Pairs())
	require.True(t, s.Done())

	require.FileExists(t, Path("test-random"))
}

func TestSeriesColoursSwap(t *testing.T) {
	s := testSeries(t, Config{
		Name: "test-mates",
		Players: [2]match.PlayerConfig{
			{Name: "mater"},
			{Name: "victim"},
		},
		Pairs: 3,
	})

	require.NoError(t, s.Run(context.Background()))

	require.Equal(t, stats.WDL{Wins: 6}, s.State.WDL)
	require.Equal(t, stats.Penta{WW: 3}, s.State.Penta)
	require.Contains(t, s.ReportLines(), "GAMES | N: 6 W: 6 L: 0 D: 0")
	require.Contains(t, s.ReportLines(), "PENTA | [0, 0, 0, 0, 3]")
}

func TestSeriesIllegalMoveLoses(t *testing.T) {
	s := testSeries(t, Config{
		Name: "test-cheater",
		Players: [2]match.PlayerConfig{
			{Name: "honest", Kind: match.KindRandom},
			{Name: "cheater"},
		},
		Pairs: 1,
	})

	require.NoError(t, s.Run(context.Background()))
	require.Equal(t, stats.Penta{WW: 1}, s.State.Penta)
}

func TestSeriesSPRT(t *testing.T) {
	s := testSeries(t, Config{
		Name: "test-sprt",
		Players: [2]match.PlayerConfig{
			{Name: "mater"},
			{Name: "victim"},
		},
		SPRT: &SPRTConfig{Elo0: 0, Elo1: 400},
	})

	require.Equal(t, 0.05, s.SPRT.Alpha)
	require.Equal(t, stats.Continue, s.Judge())

	require.NoError(t, s.Run(context.Background()))

	require.Equal(t, stats.AcceptH1, s.Judge())
	require.LessOrEqual(t, s.State.Pairs, 10)
	require.Equal(t, s.State.Pairs, s.State.Penta.WW)
}

func TestSeriesRestart(t *testing.T) {
	s := testSeries(t, Config{
		Name: "test-restart",
		Players: [2]match.PlayerConfig{
			{Name: "mater"},
			{Name: "victim"},
		},
		Pairs: 1,
	})

	require.NoError(t, s.Run(context.Background()))

	loaded, err := Load("test-restart")
	require.NoError(t, err)
	require.Equal(t, s.State, loaded.State)
	require.Equal(t, s.Players, loaded.Players)
	require.True(t, loaded.Done())

	loaded.Pairs = 2
	loaded.NewPlayer = scriptedPlayers
	require.NoError(t, loaded.Run(context.Background()))
	require.Equal(t, 2, loaded.State.Pairs)
	require.Equal(t, 4, loaded.State.Games)
}

func TestSeriesAborted(t *testing.T) {
	s := testSeries(t, Config{
		Name: "test-aborted",
		Players: [2]match.PlayerConfig{
			{Name: "one", Kind: match.KindRandom},
			{Name: "two", Kind: match.KindRandom},
		},
		Pairs: 1,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, s.Run(ctx), match.ErrAborted)
	require.Zero(t, s.State.Pairs)
	require.FileExists(t, Path("test-aborted"))
}

func TestSeriesOpenings(t *testing.T) {
	book := t.TempDir() + "/book.epd"
	require.NoError(t, os.WriteFile(book, []byte(
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq -\n"+
			"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq -\n",
	), 0644))

	s := testSeries(t, Config{
		Name: "test-openings",
		Players: [2]match.PlayerConfig{
			{Name: "one", Kind: match.KindRandom},
			{Name: "two", Kind: match.KindRandom},
		},
		Pairs:    2,
		Openings: OpeningConfig{File: book},
	})

	require.Contains(t, s.opening(), "4P3")
	s.State.Pairs++
	require.Contains(t, s.opening(), "3P4")
	s.State.Pairs++
	require.Contains(t, s.opening(), "4P3")
}

func TestNewSeriesNeedsLimit(t *testing.T) {
	_, err := New(Config{})
	require.ErrorIs(t, err, ErrNoLimit)

	s, err := New(Config{Pairs: 1})
	require.NoError(t, err)
	require.NotEmpty(t, s.Name)
}
