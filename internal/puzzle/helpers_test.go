package puzzle

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// quietLogger keeps test output free of round logs.
func quietLogger() *log.Entry {
	l := log.New()
	l.SetOutput(io.Discard)
	return log.NewEntry(l)
}

// recoverErr runs f and returns the error it panicked with, if any.
func recoverErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

// scenarioLayout is an empty bordered board with one green piece at (3,4)
// and a wall at (4,4); the cursor starts on (1,4).
func scenarioLayout() Layout {
	l := DefaultLayout()
	l.Tiles = [][]Tile{
		{10, 10, 10, 10, 10, 10, 10},
		{10, 0, 0, 0, 0, 0, 10},
		{10, 0, 0, 0, 0, 0, 10},
		{10, 0, 0, 0, 0, 0, 10},
		{10, 0, 0, 22, 10, 0, 10},
		{10, 0, 0, 0, 0, 0, 10},
		{10, 10, 10, 10, 10, 10, 10},
	}
	return l
}

// nearlyWonLayout needs a single move: the red piece at (2,5) left onto
// (1,5). The cursor starts on that piece.
func nearlyWonLayout() Layout {
	l := DefaultLayout()
	l.Tiles = [][]Tile{
		{10, 10, 10, 10, 10, 10, 10},
		{10, 21, 10, 22, 10, 23, 10},
		{10, 21, 0, 22, 0, 23, 10},
		{10, 21, 10, 22, 10, 23, 10},
		{10, 21, 10, 22, 0, 23, 10},
		{10, 0, 21, 22, 10, 23, 10},
		{10, 10, 10, 10, 10, 10, 10},
	}
	l.StartCol, l.StartRow = 2, 5
	return l
}

// wonTiles holds 21, 22 and 23 down columns 1, 3 and 5 over rows 1..5.
func wonTiles() [][]Tile {
	return [][]Tile{
		{10, 10, 10, 10, 10, 10, 10},
		{10, 21, 0, 22, 0, 23, 10},
		{10, 21, 0, 22, 0, 23, 10},
		{10, 21, 0, 22, 0, 23, 10},
		{10, 21, 0, 22, 0, 23, 10},
		{10, 21, 0, 22, 0, 23, 10},
		{10, 10, 10, 10, 10, 10, 10},
	}
}

func newTestRound(l Layout, opts ...RoundOption) *Round {
	r, err := NewRound(l, append([]RoundOption{WithLogger(quietLogger())}, opts...)...)
	if err != nil {
		panic(err)
	}
	return r
}
