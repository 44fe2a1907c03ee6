package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	llmconfig "github.com/zubairmh/llm-chess/pkg/config"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer

	root := Root()
	root.SetArgs(args)
	root.SetOut(&out)
	require.NoError(t, root.Execute())

	return out.String()
}

func testConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "llmchess.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
players: {}
match:
  white: random
  black: random
  timing:
    splash: 0s
    pause: 0s
    result: 0s
`), 0644))

	return path
}

func TestPlayersCommands(t *testing.T) {
	config := testConfig(t)

	out := execute(t, "players", "add", "qwen", "--model", "qwen2.5-7b-instruct", "--config", config)
	require.Contains(t, out, "qwen")

	out = execute(t, "players", "list", "--config", config)
	require.Contains(t, out, "qwen")
	require.Contains(t, out, "qwen2.5-7b-instruct")
	require.Contains(t, out, "hermes-3-llama-3.1-8b")

	execute(t, "players", "remove", "qwen", "--config", config)

	out = execute(t, "players", "--config", config)
	require.NotContains(t, out, "qwen2.5-7b-instruct")

	cfg, err := llmconfig.Load(config)
	require.NoError(t, err)
	require.NotContains(t, cfg.Players, "qwen")

	root := Root()
	root.SetArgs([]string{"players", "remove", "hermes", "--config", config})
	require.Error(t, root.Execute())

	root = Root()
	root.SetArgs([]string{"players", "add", "nomodel", "--config", config})
	require.Error(t, root.Execute())
}

func TestPlayHeadless(t *testing.T) {
	config := testConfig(t)
	pgn := filepath.Join(t.TempDir(), "game.pgn")

	execute(t, "play", "--headless", "--mute", "--claim-draws", "--pgn-out", pgn, "--config", config)

	data, err := os.ReadFile(pgn)
	require.NoError(t, err)
	require.Contains(t, string(data), `[White "Random Mover"]`)
	require.Contains(t, string(data), `[Black "Random Mover"]`)
}

func TestPlayUnknownPlayer(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"play", "--headless", "--white", "stockfish", "--config", testConfig(t)})
	require.Error(t, root.Execute())
}
