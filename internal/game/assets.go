package game

import (
	"fmt"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Garsondee/Lanes/internal/puzzle"
)

// SpriteID names an image held by the AssetRegistry.
type SpriteID int

const (
	SpriteNone SpriteID = iota
	SpriteBlock
	SpriteCursor
	SpriteStripe // one curtain band, full window width
	spriteGroundBase
	spriteSignBase  = spriteGroundBase + puzzle.DecorationCount
	spritePieceBase = spriteSignBase + SpriteID(len(puzzle.Kinds))
	spriteCount     = spritePieceBase + 2*SpriteID(len(puzzle.Kinds))
)

// GroundSprite returns the background variant for a decoration code.
func GroundSprite(decor int) SpriteID {
	if decor < 0 || decor >= puzzle.DecorationCount {
		decor = puzzle.DecorPlain
	}
	return spriteGroundBase + SpriteID(decor)
}

// PieceSprite returns the piece image of k in its default or selected look.
func PieceSprite(k puzzle.Kind, selected bool) SpriteID {
	id := spritePieceBase + 2*SpriteID(k-1)
	if selected {
		id++
	}
	return id
}

// WallSprite returns the foreground image for a wall-family tile: plain
// block, or a sign block tinted for the line it marks.
func WallSprite(t puzzle.Tile) SpriteID {
	k := puzzle.Kind(t.Sub())
	if t.Family() != puzzle.FamilyWall || !k.Valid() {
		return SpriteBlock
	}
	return spriteSignBase + SpriteID(k-1)
}

// FaceID names a font face held by the AssetRegistry.
type FaceID int

const (
	FaceTitle FaceID = iota
	FaceBody
)

// Font sizes in points at 72 DPI.
const (
	titleSize = 30
	bodySize  = 16
	fontDPI   = 72
)

var (
	groundColor  = color.RGBA{R: 38, G: 44, B: 40, A: 255}
	groundLine   = color.RGBA{R: 52, G: 60, B: 54, A: 255}
	blockColor   = color.RGBA{R: 86, G: 80, B: 72, A: 255}
	blockEdge    = color.RGBA{R: 120, G: 112, B: 100, A: 255}
	cursorColor  = color.RGBA{R: 240, G: 230, B: 120, A: 255}
	selectedRing = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	curtainColor = color.RGBA{A: 255}
)

// KindColor returns the display colour of k.
func KindColor(k puzzle.Kind) color.RGBA {
	switch k {
	case puzzle.KindRed:
		return color.RGBA{R: 200, G: 64, B: 60, A: 255}
	case puzzle.KindGreen:
		return color.RGBA{R: 72, G: 170, B: 84, A: 255}
	case puzzle.KindBlue:
		return color.RGBA{R: 64, G: 104, B: 212, A: 255}
	default:
		return color.RGBA{R: 255, B: 255, A: 255}
	}
}

// AssetRegistry owns every image and font face. It is built once before the
// first frame and read-only afterwards.
type AssetRegistry struct {
	tile   int
	images [spriteCount]*ebiten.Image
	faces  map[FaceID]text.Face
}

// NewAssetRegistry draws the sprites for tile-sized cells and parses the
// embedded fonts.
func NewAssetRegistry(tile int) (*AssetRegistry, error) {
	r := &AssetRegistry{tile: tile, faces: make(map[FaceID]text.Face)}
	if err := r.loadFonts(); err != nil {
		return nil, err
	}
	r.drawSprites()
	return r, nil
}

func (r *AssetRegistry) loadFonts() error {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse goregular: %w", err)
	}
	for id, size := range map[FaceID]float64{FaceTitle: titleSize, FaceBody: bodySize} {
		f := truetype.NewFace(tt, &truetype.Options{
			Size:    size,
			DPI:     fontDPI,
			Hinting: font.HintingFull,
		})
		r.faces[id] = text.NewGoXFace(f)
	}
	return nil
}

func (r *AssetRegistry) drawSprites() {
	n := float32(r.tile)

	for decor := 0; decor < puzzle.DecorationCount; decor++ {
		img := ebiten.NewImage(r.tile, r.tile)
		img.Fill(groundColor)
		drawDecoration(img, decor, n)
		r.images[GroundSprite(decor)] = img
	}

	block := ebiten.NewImage(r.tile, r.tile)
	block.Fill(blockColor)
	vector.StrokeRect(block, 2, 2, n-4, n-4, 3, blockEdge, false)
	r.images[SpriteBlock] = block

	for _, k := range puzzle.Kinds {
		sign := ebiten.NewImage(r.tile, r.tile)
		sign.Fill(blockColor)
		vector.FillRect(sign, n/4, n/4, n/2, n/2, KindColor(k), false)
		r.images[spriteSignBase+SpriteID(k-1)] = sign

		for _, sel := range []bool{false, true} {
			img := ebiten.NewImage(r.tile, r.tile)
			vector.FillCircle(img, n/2, n/2, n*0.38, KindColor(k), true)
			if sel {
				vector.StrokeCircle(img, n/2, n/2, n*0.42, 3, selectedRing, true)
			}
			r.images[PieceSprite(k, sel)] = img
		}
	}

	cursor := ebiten.NewImage(r.tile, r.tile)
	vector.StrokeRect(cursor, 2, 2, n-4, n-4, 4, cursorColor, false)
	r.images[SpriteCursor] = cursor

	stripe := ebiten.NewImage(ScreenWidth, r.tile)
	stripe.Fill(curtainColor)
	r.images[SpriteStripe] = stripe
}

// drawDecoration paints the cosmetic marks of a ground variant.
func drawDecoration(img *ebiten.Image, decor int, n float32) {
	switch decor {
	case puzzle.DecorCorner:
		vector.StrokeLine(img, 0, 1, n, 1, 2, groundLine, false)
		vector.StrokeLine(img, 1, 0, 1, n, 2, groundLine, false)
	case puzzle.DecorEdgeTop:
		vector.StrokeLine(img, 0, 1, n, 1, 2, groundLine, false)
	case puzzle.DecorEdgeLeft:
		vector.StrokeLine(img, 1, 0, 1, n, 2, groundLine, false)
	case puzzle.DecorRedSign, puzzle.DecorGreenSign, puzzle.DecorBlueSign:
		k := puzzle.Kind(decor - puzzle.DecorRedSign + 1)
		vector.FillCircle(img, n/2, n/2, n/6, KindColor(k), true)
	case puzzle.DecorSignSpacer:
		vector.StrokeLine(img, n/4, n/2, 3*n/4, n/2, 2, groundLine, false)
	}
}

// Image returns the image for id, nil for SpriteNone or unknown ids.
func (r *AssetRegistry) Image(id SpriteID) *ebiten.Image {
	if id <= SpriteNone || id >= spriteCount {
		return nil
	}
	return r.images[id]
}

// Face returns the font face for id.
func (r *AssetRegistry) Face(id FaceID) text.Face { return r.faces[id] }

func (r *AssetRegistry) drawLabel(screen *ebiten.Image, s string, id FaceID, x, y float64, clr color.Color, alpha float64) {
	f := r.faces[id]
	if f == nil {
		return
	}
	if clr == nil {
		clr = color.White
	}
	drawCentered(screen, s, f, x, y, clr, alpha)
}
