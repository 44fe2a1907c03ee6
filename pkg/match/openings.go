package match

import (
	"errors"
	"math/rand"
	"os"
	"strings"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var ErrEmptyBook = errors.New("opening book: no positions found")

// NewBook reads an opening book with one position per line. Lines may be
// FENs or EPDs; blank lines and lines starting with '#' are skipped.
func NewBook(name string, strategy string) (*OpeningBook, error) {
	file, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	return ParseBook(string(file), strategy)
}

// ParseBook is NewBook for an opening book which is already in memory.
func ParseBook(contents string, strategy string) (*OpeningBook, error) {
	var book OpeningBook
	for _, entry := range strings.Split(contents, "\n") {
		entry = strings.Trim(entry, "\n\r\t ")
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}

		book.entries = append(book.entries, EPDToFEN(entry))
	}

	if len(book.entries) == 0 {
		return nil, ErrEmptyBook
	}

	book.strategy = strategy
	book.rand = rand.New(rand.NewSource(rand.Int63()))
	return &book, nil
}

// EPDToFEN turns an EPD line into a FEN by dropping its operations and
// adding move counters. Lines which are already FENs are returned as is.
func EPDToFEN(epd string) string {
	fields := strings.Fields(epd)
	if len(fields) < 4 {
		return epd
	}

	if len(fields) >= 6 && isNumber(fields[4]) && isNumber(fields[5]) {
		return strings.Join(fields[:6], " ")
	}

	return strings.Join(fields[:4], " ") + " 0 1"
}

func isNumber(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return s != ""
}

type OpeningBook struct {
	entries  []string
	strategy string
	current  int
	rand     *rand.Rand
}

func (book *OpeningBook) Next() {
	switch book.strategy {
	case "random":
		book.current = book.rand.Intn(len(book.entries))
	default:
		book.current = (book.current + 1) % len(book.entries)
	}
}

func (book *OpeningBook) Current() string {
	return book.entries[book.current]
}

// Seek makes the n-th opening (wrapping around) the current one.
func (book *OpeningBook) Seek(n int) {
	book.current = n % len(book.entries)
}

// Len returns the number of positions in the book.
func (book *OpeningBook) Len() int {
	return len(book.entries)
}
