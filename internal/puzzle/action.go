package puzzle

// Action is one discrete player input: a key-down mapped by the input layer.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
)

// Direction returns the movement direction of a directional action.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return Up, true
	case ActionDown:
		return Down, true
	case ActionLeft:
		return Left, true
	case ActionRight:
		return Right, true
	default:
		return 0, false
	}
}

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "U"
	case ActionDown:
		return "D"
	case ActionLeft:
		return "L"
	case ActionRight:
		return "R"
	case ActionConfirm:
		return "E"
	default:
		return "-"
	}
}
