package match

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEPDToFEN(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{
			"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3",
			"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - bm e5; id \"open\";",
			"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		},
		{StartFEN, StartFEN},
	}

	for _, test := range tests {
		require.Equal(t, test.out, EPDToFEN(test.in))
	}
}

func TestParseBook(t *testing.T) {
	book, err := ParseBook(`
		# two openings
		rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq -

		rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq -
	`, "sequential")
	require.NoError(t, err)
	require.Equal(t, 2, book.Len())

	first := book.Current()
	require.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1", first)

	book.Next()
	require.Contains(t, book.Current(), "3P4")

	book.Next()
	require.Equal(t, first, book.Current())

	book.Seek(3)
	require.Contains(t, book.Current(), "3P4")

	_, err = ParseBook("# nothing here\n\n", "sequential")
	require.ErrorIs(t, err, ErrEmptyBook)
}

func TestNewBook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.epd")
	require.NoError(t, os.WriteFile(path, []byte(StartFEN+"\n"), 0644))

	book, err := NewBook(path, "random")
	require.NoError(t, err)

	book.Next()
	require.Equal(t, StartFEN, book.Current())

	_, err = NewBook(filepath.Join(t.TempDir(), "missing.epd"), "")
	require.Error(t, err)
}
