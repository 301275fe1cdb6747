package puzzle

import (
	"fmt"
	"unicode"
)

// SolutionScript solves DefaultLayout from its start cell.
const SolutionScript = "UUEDE URELE RRDDEDE UUEDE UUEDE URELE"

// ParseScript turns a key script into actions. U, D, L and R move, E
// confirms; whitespace is ignored and letters are case-insensitive.
func ParseScript(script string) ([]Action, error) {
	var out []Action
	for i, ch := range script {
		if unicode.IsSpace(ch) {
			continue
		}
		switch unicode.ToUpper(ch) {
		case 'U':
			out = append(out, ActionUp)
		case 'D':
			out = append(out, ActionDown)
		case 'L':
			out = append(out, ActionLeft)
		case 'R':
			out = append(out, ActionRight)
		case 'E':
			out = append(out, ActionConfirm)
		default:
			return nil, fmt.Errorf("offset %d: unexpected %q: %w", i, ch, ErrBadScript)
		}
	}
	return out, nil
}

// Replay feeds one action per tick and then advances the round until nothing
// is sliding, giving each action at most maxSettle ticks. It returns whether
// the round completed.
func Replay(r *Round, actions []Action, dt float64, maxSettle int) (bool, error) {
	for i, a := range actions {
		r.Step(dt, a)
		settled := !r.IsMoving()
		for n := 0; n < maxSettle && !settled; n++ {
			r.Advance(dt)
			settled = !r.IsMoving()
		}
		if !settled {
			return r.Complete(), fmt.Errorf("action %d (%s) still moving after %d ticks", i, a, maxSettle)
		}
	}
	return r.Complete(), nil
}
