package match

import (
	"os"
	"path/filepath"
	"time"
)

// PGN returns the game record with its tag pairs.
func (match *Match) PGN(site string) string {
	game := match.Game
	game.AddTagPair("Event", match.Config.Name)
	game.AddTagPair("Site", site)
	game.AddTagPair("Date", time.Now().Format("2006.01.02"))
	game.AddTagPair("White", match.Config.Players[0].Name)
	game.AddTagPair("Black", match.Config.Players[1].Name)
	game.AddTagPair("GameId", match.Config.ID)
	if match.Config.PositionFEN != StartFEN {
		game.AddTagPair("SetUp", "1")
		game.AddTagPair("FEN", match.Config.PositionFEN)
	}

	return game.String()
}

// WritePGN appends the game record to the file at path, creating it and
// its directory if needed.
func (match *Match) WritePGN(path, site string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.WriteString(match.PGN(site) + "\n\n"); err != nil {
		return err
	}

	return file.Close()
}
