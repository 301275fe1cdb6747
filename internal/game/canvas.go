package game

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Layer is a draw group. Lower layers are drawn first.
type Layer int

const (
	LayerBackground Layer = iota
	LayerForeground
	LayerSelection
	LayerCurtain
	LayerText
)

// Handle identifies a drawable owned by a Canvas. The zero Handle is never
// issued.
type Handle int

type drawable struct {
	sprite SpriteID
	x, y   float64
	layer  Layer
	alpha  float64
	hidden bool

	// text drawables only
	label string
	face  FaceID
	clr   color.Color
}

// Canvas keeps the scene as a flat set of drawables and renders them in
// layer order, creation order within a layer. It holds no images itself so
// the scene can be built and inspected without a graphics context.
type Canvas struct {
	items map[Handle]*drawable
	next  Handle
	order []Handle
	dirty bool
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{items: make(map[Handle]*drawable)}
}

// Create adds a sprite at logical pixel (x,y) on layer.
func (c *Canvas) Create(sprite SpriteID, x, y float64, layer Layer) Handle {
	return c.add(&drawable{sprite: sprite, x: x, y: y, layer: layer, alpha: 1})
}

// CreateText adds a label centred on (x,y).
func (c *Canvas) CreateText(label string, face FaceID, x, y float64, clr color.Color) Handle {
	return c.add(&drawable{label: label, face: face, x: x, y: y, layer: LayerText, alpha: 1, clr: clr})
}

func (c *Canvas) add(d *drawable) Handle {
	c.next++
	c.items[c.next] = d
	c.dirty = true
	return c.next
}

// Destroy removes h. Unknown handles are ignored.
func (c *Canvas) Destroy(h Handle) {
	if _, ok := c.items[h]; !ok {
		return
	}
	delete(c.items, h)
	c.dirty = true
}

// Clear removes every drawable on the given layers, or all when none given.
func (c *Canvas) Clear(layers ...Layer) {
	for h, d := range c.items {
		if len(layers) == 0 || containsLayer(layers, d.layer) {
			delete(c.items, h)
		}
	}
	c.dirty = true
}

func containsLayer(layers []Layer, l Layer) bool {
	for _, x := range layers {
		if x == l {
			return true
		}
	}
	return false
}

// SetPosition moves h to logical pixel (x,y).
func (c *Canvas) SetPosition(h Handle, x, y float64) {
	if d, ok := c.items[h]; ok {
		d.x, d.y = x, y
	}
}

// SetSprite swaps the image of h.
func (c *Canvas) SetSprite(h Handle, sprite SpriteID) {
	if d, ok := c.items[h]; ok {
		d.sprite = sprite
	}
}

// SetAlpha sets the opacity of h, clamped to [0,1].
func (c *Canvas) SetAlpha(h Handle, a float64) {
	if d, ok := c.items[h]; ok {
		d.alpha = min(max(a, 0), 1)
	}
}

// SetHidden toggles whether h is drawn.
func (c *Canvas) SetHidden(h Handle, hidden bool) {
	if d, ok := c.items[h]; ok {
		d.hidden = hidden
	}
}

// Len returns the number of live drawables.
func (c *Canvas) Len() int { return len(c.items) }

// Position returns the logical position of h.
func (c *Canvas) Position(h Handle) (float64, float64, bool) {
	d, ok := c.items[h]
	if !ok {
		return 0, 0, false
	}
	return d.x, d.y, true
}

// Sprite returns the sprite of h.
func (c *Canvas) Sprite(h Handle) (SpriteID, bool) {
	d, ok := c.items[h]
	if !ok {
		return SpriteNone, false
	}
	return d.sprite, true
}

// Order returns live handles in draw order.
func (c *Canvas) Order() []Handle {
	if c.dirty {
		c.order = c.order[:0]
		for h := range c.items {
			c.order = append(c.order, h)
		}
		sort.Slice(c.order, func(i, j int) bool {
			a, b := c.items[c.order[i]], c.items[c.order[j]]
			if a.layer != b.layer {
				return a.layer < b.layer
			}
			return c.order[i] < c.order[j]
		})
		c.dirty = false
	}
	return c.order
}

// Draw renders every visible drawable onto screen using images and faces
// from reg.
func (c *Canvas) Draw(screen *ebiten.Image, reg *AssetRegistry) {
	for _, h := range c.Order() {
		d := c.items[h]
		if d.hidden || d.alpha <= 0 {
			continue
		}
		if d.label != "" {
			reg.drawLabel(screen, d.label, d.face, d.x, d.y, d.clr, d.alpha)
			continue
		}
		img := reg.Image(d.sprite)
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(d.x, d.y)
		op.ColorScale.ScaleAlpha(float32(d.alpha))
		screen.DrawImage(img, op)
	}
}

// drawCentered draws s centred on (x,y) with face.
func drawCentered(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, alpha float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s, face, op)
}
