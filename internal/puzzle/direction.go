package puzzle

// Direction is one of the four von Neumann neighbours. Rows grow downwards.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Offset returns the (dcol, drow) step for the direction.
func (d Direction) Offset() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Bounds is an inclusive cell rectangle.
type Bounds struct {
	MinCol, MinRow int
	MaxCol, MaxRow int
}

// Contains reports whether (col,row) lies inside b.
func (b Bounds) Contains(col, row int) bool {
	return col >= b.MinCol && col <= b.MaxCol && row >= b.MinRow && row <= b.MaxRow
}
