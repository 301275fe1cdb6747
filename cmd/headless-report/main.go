package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/Garsondee/Lanes/internal/puzzle"
)

type runStats struct {
	runIndex int
	seed     int64 // 0 for a fixed script
	script   string

	firstSelectTick  int
	firstBlockedTick int
	completeTick     int
	won              bool
	err              error

	cursorMoves  int
	cursorBumps  int
	pieceMoves   int
	blockedMoves int
	selects      int
	drops        int
	finalTick    int

	snapshot string
	events   string
}

const maxSettleTicks = 1000

func main() {
	cmd := &cli.Command{
		Name:  "headless-report",
		Usage: "replay key scripts against the default board and report what happened",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "script", Value: puzzle.SolutionScript, Usage: "keys to replay: U D L R move, E confirms", Sources: cli.EnvVars("PUZZLE_SCRIPT")},
			&cli.IntFlag{Name: "runs", Value: 1, Usage: "number of runs"},
			&cli.IntFlag{Name: "random", Usage: "replay random scripts of this many keys instead of --script"},
			&cli.Int64Flag{Name: "seed-base", Value: 42, Usage: "base RNG seed for run 1"},
			&cli.Int64Flag{Name: "seed-step", Value: 1, Usage: "seed increment between runs"},
			&cli.IntFlag{Name: "tps", Value: 120, Usage: "simulated ticks per second", Sources: cli.EnvVars("PUZZLE_TPS")},
			&cli.BoolFlag{Name: "verbose", Usage: "print the event log and board of every run"},
			&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "round log level", Sources: cli.EnvVars("PUZZLE_LOG_LEVEL")},
		},
		Action: report,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func report(_ context.Context, cmd *cli.Command) error {
	runs := cmd.Int("runs")
	tps := cmd.Int("tps")
	randomLen := cmd.Int("random")
	if runs <= 0 {
		return fmt.Errorf("--runs must be > 0")
	}
	if tps <= 0 {
		return fmt.Errorf("--tps must be > 0")
	}
	if randomLen < 0 {
		return fmt.Errorf("--random must be >= 0")
	}
	lvl, err := log.ParseLevel(cmd.String("log-level"))
	if err != nil {
		return err
	}
	logger := log.New()
	logger.SetLevel(lvl)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stderr)

	seedBase, seedStep := cmd.Int64("seed-base"), cmd.Int64("seed-step")
	fmt.Printf("=== Headless Replay Report ===\n")
	fmt.Printf("runs=%d tps=%d random=%d seed_base=%d seed_step=%d\n\n", runs, tps, randomLen, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		script := cmd.String("script")
		var seed int64
		if randomLen > 0 {
			seed = seedBase + int64(i)*seedStep
			script = randomScript(seed, randomLen)
		}
		rs := play(i+1, seed, script, 1/float64(tps), log.NewEntry(logger))
		all = append(all, rs)
		printRun(os.Stdout, rs, cmd.Bool("verbose"))
	}
	printAggregate(os.Stdout, all)
	return nil
}

// randomScript draws n keys, confirm weighted like a single direction.
func randomScript(seed int64, n int) string {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- reproducible test input
	const keys = "UDLRE"
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(keys[rng.Intn(len(keys))])
	}
	return sb.String()
}

func play(runIndex int, seed int64, script string, dt float64, logger *log.Entry) runStats {
	rs := runStats{runIndex: runIndex, seed: seed, script: script, completeTick: -1, firstSelectTick: -1, firstBlockedTick: -1}
	actions, err := puzzle.ParseScript(script)
	if err != nil {
		rs.err = err
		return rs
	}
	r, err := puzzle.NewRound(puzzle.DefaultLayout(), puzzle.WithLogger(logger))
	if err != nil {
		rs.err = err
		return rs
	}
	rs.won, rs.err = puzzle.Replay(r, actions, dt, maxSettleTicks)

	ev := r.Events()
	entries := ev.Entries()
	rs.firstSelectTick = firstTick(entries, puzzle.CatPiece, puzzle.KeySelect, "")
	rs.firstBlockedTick = firstTick(entries, puzzle.CatPiece, puzzle.KeyBlocked, "")
	rs.completeTick = firstTick(entries, puzzle.CatRound, puzzle.KeyComplete, "")
	rs.cursorMoves = ev.Count(puzzle.CatCursor, puzzle.KeyMove)
	rs.cursorBumps = ev.Count(puzzle.CatCursor, puzzle.KeyBump)
	rs.pieceMoves = ev.Count(puzzle.CatPiece, puzzle.KeyMove)
	rs.blockedMoves = ev.Count(puzzle.CatPiece, puzzle.KeyBlocked)
	rs.selects = ev.Count(puzzle.CatPiece, puzzle.KeySelect)
	rs.drops = ev.Count(puzzle.CatPiece, puzzle.KeyDrop)
	rs.finalTick = r.Tick()
	rs.snapshot = r.Snapshot()
	rs.events = ev.Format()
	return rs
}

func firstTick(entries []puzzle.Event, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(w io.Writer, rs runStats, verbose bool) {
	fmt.Fprintf(w, "--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Fprintf(w, "script: %s\n", rs.script)
	if rs.err != nil {
		fmt.Fprintf(w, "error: %v\n", rs.err)
	}
	fmt.Fprintf(w, "outcome: won=%v complete_tick=%d final_tick=%d\n", rs.won, rs.completeTick, rs.finalTick)
	fmt.Fprintf(w, "markers: first_select=%d first_blocked=%d\n", rs.firstSelectTick, rs.firstBlockedTick)
	fmt.Fprintf(w, "cursor_events: move=%d bump=%d\n", rs.cursorMoves, rs.cursorBumps)
	fmt.Fprintf(w, "piece_events: select=%d move=%d blocked=%d drop=%d\n", rs.selects, rs.pieceMoves, rs.blockedMoves, rs.drops)
	if verbose {
		fmt.Fprintf(w, "\n%s\n%s", rs.events, rs.snapshot)
	}
	fmt.Fprintln(w)
}

func printAggregate(w io.Writer, all []runStats) {
	wins, errs, moves := 0, 0, 0
	var winTicks []int
	for _, rs := range all {
		if rs.won {
			wins++
			winTicks = append(winTicks, rs.completeTick)
		}
		if rs.err != nil {
			errs++
		}
		moves += rs.pieceMoves
	}
	fmt.Fprintf(w, "=== Aggregate ===\n")
	fmt.Fprintf(w, "runs=%d wins=%d errors=%d avg_piece_moves=%.1f avg_complete_tick=%s\n",
		len(all), wins, errs, avg(moves, len(all)), avgTickString(winTicks))
}

func avg(sum int, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", avg(sum, len(vals)))
}
