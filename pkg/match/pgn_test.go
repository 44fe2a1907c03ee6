package match

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritePGN(t *testing.T) {
	white := &scripted{name: "white", moves: []string{"f2f3", "g2g4"}}
	black := &scripted{name: "black", moves: []string{"e7e5", "d8h4"}}

	m, _ := newTestMatch(t, "", white, black, false)
	_, err := m.Run(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "games", "test.pgn")
	require.NoError(t, m.WritePGN(path, "test"))
	require.NoError(t, m.WritePGN(path, "test"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	pgn := string(data)
	require.Contains(t, pgn, `[White "white"]`)
	require.Contains(t, pgn, `[Black "black"]`)
	require.Contains(t, pgn, `[GameId "test-game"]`)
	require.Contains(t, pgn, "0-1")
	require.NotContains(t, pgn, `[SetUp "1"]`)
	require.Equal(t, 2, strings.Count(pgn, `[Event "test"]`))
}

func TestPGNFromPosition(t *testing.T) {
	fen := "7k/8/8/8/8/8/8/K6R w - - 0 1"

	white := &scripted{name: "white", moves: []string{"h1h2"}}
	black := &scripted{name: "black", moves: []string{"h8g8"}}

	m, _ := newTestMatch(t, fen, white, black, false)

	pgn := m.PGN("test")
	require.Contains(t, pgn, `[SetUp "1"]`)
	require.Contains(t, pgn, `[FEN "`+fen+`"]`)
}

