package display

import (
	"io"
	"strings"
	"time"

	"github.com/zubairmh/llm-chess/pkg/match"
)

const beepGap = 150 * time.Millisecond

// beeps is the number of beeps of a cue.
func beeps(cue match.Cue) int {
	switch cue {
	case match.CueCheck:
		return 2
	case match.CueEnd:
		return 3
	default:
		return 1
	}
}

// Bell plays cues by ringing the terminal bell.
type Bell struct {
	W io.Writer
}

var _ match.Sounder = Bell{}

func (bell Bell) Play(cue match.Cue) {
	_, _ = io.WriteString(bell.W, strings.Repeat("\a", beeps(cue)))
}

// Mute plays nothing.
type Mute struct{}

var _ match.Sounder = Mute{}

func (Mute) Play(match.Cue) {}
