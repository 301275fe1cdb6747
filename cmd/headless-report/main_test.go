package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/Garsondee/Lanes/internal/puzzle"
)

func quiet() *log.Entry {
	l := log.New()
	l.SetOutput(io.Discard)
	return log.NewEntry(l)
}

func TestPlay_SolutionScriptWins(t *testing.T) {
	rs := play(1, 0, puzzle.SolutionScript, 1.0/120, quiet())
	if rs.err != nil {
		t.Fatalf("unexpected error: %v", rs.err)
	}
	if !rs.won {
		t.Fatalf("expected the solution to win, board:\n%s", rs.snapshot)
	}
	if rs.completeTick <= 0 || rs.completeTick > rs.finalTick {
		t.Fatalf("complete tick %d outside 1..%d", rs.completeTick, rs.finalTick)
	}
	if rs.selects != rs.drops+1 {
		t.Fatalf("expected one undropped selection at the win, got select=%d drop=%d", rs.selects, rs.drops)
	}
	if rs.blockedMoves != 0 {
		t.Fatalf("solution should never bump a piece, got %d blocked", rs.blockedMoves)
	}
}

func TestPlay_BadScriptReportsError(t *testing.T) {
	rs := play(1, 0, "UUZ", 1.0/120, quiet())
	if rs.err == nil {
		t.Fatal("expected a parse error")
	}
	if rs.won || rs.completeTick != -1 {
		t.Fatalf("bad script must not win, got won=%v complete=%d", rs.won, rs.completeTick)
	}
}

func TestRandomScript_Deterministic(t *testing.T) {
	a := randomScript(7, 40)
	b := randomScript(7, 40)
	if a != b {
		t.Fatalf("same seed gave %q and %q", a, b)
	}
	if len(a) != 40 || strings.Trim(a, "UDLRE") != "" {
		t.Fatalf("unexpected script %q", a)
	}
	if _, err := puzzle.ParseScript(a); err != nil {
		t.Fatalf("random script does not parse: %v", err)
	}
}

func TestFirstTick(t *testing.T) {
	entries := []puzzle.Event{
		{Tick: 3, Category: puzzle.CatPiece, Key: puzzle.KeyMove, Value: "(1,4) → (1,3)"},
		{Tick: 9, Category: puzzle.CatPiece, Key: puzzle.KeyMove, Value: "(1,3) → (1,2)"},
	}
	if got := firstTick(entries, puzzle.CatPiece, puzzle.KeyMove, ""); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := firstTick(entries, puzzle.CatPiece, puzzle.KeyMove, "(1,2)"); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
	if got := firstTick(entries, puzzle.CatRound, puzzle.KeyComplete, ""); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}

func TestPrintAggregate(t *testing.T) {
	var buf bytes.Buffer
	printAggregate(&buf, []runStats{
		{won: true, completeTick: 100, pieceMoves: 10},
		{won: false, completeTick: -1, pieceMoves: 4},
	})
	out := buf.String()
	if !strings.Contains(out, "runs=2 wins=1 errors=0 avg_piece_moves=7.0 avg_complete_tick=100.0") {
		t.Fatalf("unexpected aggregate: %s", out)
	}
}
