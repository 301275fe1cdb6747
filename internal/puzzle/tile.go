package puzzle

import "fmt"

// Tile is a grid cell code. The tens digit is the family, the units digit
// the sub-kind inside that family.
type Tile int

// Tile families.
const (
	FamilyGround = 0 // empty, walkable
	FamilyWall   = 1 // permanent block, signature blocks included
	FamilyPiece  = 2 // a movable piece, sub-kind is its color
)

const (
	TileGround    Tile = 0
	TileBlock     Tile = 10
	TileRedSign   Tile = 11
	TileGreenSign Tile = 12
	TileBlueSign  Tile = 13
	TileRed       Tile = 21
	TileGreen     Tile = 22
	TileBlue      Tile = 23
)

// Family returns code / 10.
func (t Tile) Family() int { return int(t) / 10 }

// Sub returns code % 10.
func (t Tile) Sub() int { return int(t) % 10 }

// IsPiece reports whether the tile holds a piece of any kind.
func (t Tile) IsPiece() bool { return t.Family() == FamilyPiece }

// Kind is one of the three piece colors. It doubles as the target of a
// vertical line.
type Kind uint8

const (
	KindRed Kind = iota + 1
	KindGreen
	KindBlue
)

// Kinds lists every piece kind in tile order.
var Kinds = [...]Kind{KindRed, KindGreen, KindBlue}

// Tile returns the grid code written for a piece of this kind.
func (k Kind) Tile() Tile { return Tile(FamilyPiece*10 + int(k)) }

// Valid reports whether k is one of the three colors.
func (k Kind) Valid() bool { return k >= KindRed && k <= KindBlue }

func (k Kind) String() string {
	switch k {
	case KindRed:
		return "red"
	case KindGreen:
		return "green"
	case KindBlue:
		return "blue"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Letter is the single-character label used in snapshots and event subjects.
func (k Kind) Letter() string {
	switch k {
	case KindRed:
		return "R"
	case KindGreen:
		return "G"
	case KindBlue:
		return "B"
	default:
		return "?"
	}
}

// KindOf decodes a piece tile into its kind.
func KindOf(t Tile) (Kind, error) {
	if !t.IsPiece() {
		return 0, fmt.Errorf("tile %d is not a piece: %w", t, ErrUnknownKind)
	}
	k := Kind(t.Sub())
	if !k.Valid() {
		return 0, fmt.Errorf("tile %d: %w", t, ErrUnknownKind)
	}
	return k, nil
}
