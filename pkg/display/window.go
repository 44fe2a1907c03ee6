package display

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/zubairmh/llm-chess/pkg/match"
)

const (
	pageBoard   = "board"
	pageMessage = "message"

	numOfSquaresInRow = 8
)

// Window shows the game in the terminal. The tview event loop runs in its
// own goroutine; the game loop talks to it through QueueUpdateDraw.
type Window struct {
	app    *tview.Application
	screen tcell.Screen
	theme  Theme

	pages   *tview.Pages
	board   *tview.Table
	status  *tview.TextView
	message *tview.TextView

	closed atomic.Bool
	done   chan struct{}
	once   sync.Once
	err    error
}

var (
	_ match.View    = (*Window)(nil)
	_ match.Sounder = (*Window)(nil)
)

// NewWindow creates a window on the terminal.
func NewWindow(title string, theme Theme) (*Window, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	return NewWindowOnScreen(screen, title, theme), nil
}

// NewWindowOnScreen creates a window drawing to the given screen.
func NewWindowOnScreen(screen tcell.Screen, title string, theme Theme) *Window {
	window := &Window{
		app:    tview.NewApplication(),
		screen: screen,
		theme:  theme,
		done:   make(chan struct{}),
	}

	window.board = tview.NewTable().SetSelectable(false, false)
	window.board.SetBorder(true).SetTitle(" " + title + " ")

	window.status = tview.NewTextView().SetTextColor(theme.Text)
	window.message = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetTextColor(theme.Message)

	// 8 ranks + file labels + border, 3 status lines
	boardPage := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(window.board, numOfSquaresInRow+3, 0, false).
		AddItem(window.status, 3, 0, false)

	messagePage := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(window.message, 1, 0, false).
		AddItem(nil, 0, 1, false)

	window.pages = tview.NewPages().
		AddPage(pageBoard, boardPage, true, false).
		AddPage(pageMessage, messagePage, true, true)

	window.app.SetScreen(screen).
		SetRoot(window.pages, true).
		SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
			switch {
			case event.Key() == tcell.KeyEscape,
				event.Key() == tcell.KeyCtrlC,
				event.Key() == tcell.KeyRune && event.Rune() == 'q':
				window.Close()
				return nil
			}
			return event
		})

	return window
}

// Start runs the window's event loop in the background.
func (window *Window) Start() {
	go func() {
		if err := window.app.Run(); err != nil {
			logrus.Error(err)
			window.err = err
		}

		window.closed.Store(true)
		window.once.Do(func() { close(window.done) })
	}()
}

// Close stops the window's event loop.
func (window *Window) Close() {
	if window.closed.Swap(true) {
		return
	}

	window.app.Stop()
}

// Wait blocks until the event loop has exited and returns its error.
func (window *Window) Wait() error {
	<-window.done
	return window.err
}

func (window *Window) Closed() bool {
	return window.closed.Load()
}

func (window *Window) update(draw func()) {
	if window.Closed() {
		return
	}

	window.app.QueueUpdateDraw(draw)
}

// Message shows text centred on an empty screen for duration, returning
// early if the window is closed.
func (window *Window) Message(text string, duration time.Duration) {
	window.update(func() {
		window.message.SetText(text)
		window.pages.SwitchToPage(pageMessage)
	})

	if duration <= 0 {
		return
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-window.done:
	}
}

func (window *Window) Render(game *chess.Game, last *chess.Move) {
	// The game is mutated by the caller once Render returns, so everything
	// the draw function needs is computed here.
	board := game.Position().Board()
	inCheck := checkedSide(game, last)
	status := strings.Join(StatusLines(game, last), "\n")

	window.update(func() {
		window.drawBoard(board, last, inCheck)
		window.status.SetText(status)
		window.pages.SwitchToPage(pageBoard)
	})
}

// drawBoard fills the board table: ranks 8 to 1 top to bottom with the
// rank labels in the first column and the file labels in the last row.
func (window *Window) drawBoard(board *chess.Board, last *chess.Move, inCheck chess.Color) {
	t := window.theme

	for row := 0; row < numOfSquaresInRow; row++ {
		rank := chess.Rank(numOfSquaresInRow - row - 1)
		window.board.SetCell(row, 0, tview.NewTableCell(rank.String()+" ").
			SetTextColor(t.Rank))

		for f := 0; f < numOfSquaresInRow; f++ {
			sq := getSquare(chess.File(f), rank)
			p := board.Piece(sq)

			text := "   "
			if p != chess.NoPiece {
				text = " " + p.String() + " "
			}

			window.board.SetCell(row, f+1, tview.NewTableCell(text).
				SetAlign(tview.AlignCenter).
				SetTextColor(pieceFg(p, t)).
				SetBackgroundColor(highlight(sq, p, last, inCheck, t)))
		}
	}

	for f := 0; f < numOfSquaresInRow; f++ {
		window.board.SetCell(numOfSquaresInRow, f+1, tview.NewTableCell(chess.File(f).String()).
			SetAlign(tview.AlignCenter).
			SetTextColor(t.File))
	}
}

// Play beeps once for a move, twice for a check and three times at the end
// of the game.
func (window *Window) Play(cue match.Cue) {
	if window.Closed() {
		return
	}

	for i := 0; i < beeps(cue); i++ {
		if i > 0 {
			time.Sleep(beepGap)
		}

		if err := window.screen.Beep(); err != nil {
			logrus.Debug(err)
			return
		}
	}
}
