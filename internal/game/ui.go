package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// A button is a clickable screen rectangle. onClick fires when the mouse is
// released over a button that was pressed on it.
type button struct {
	x, y, w, h int
	label      string
	hovered    bool
	pressed    bool
	onClick    func()
}

func (b *button) contains(mx, my int) bool {
	return mx >= b.x && mx <= b.x+b.w && my >= b.y && my <= b.y+b.h
}

// update runs hover/press/release detection for one frame and reports
// whether the cursor is over the button (so taps on it don't fall through
// to the map).
func (b *button) update(mx, my int) bool {
	b.hovered = b.contains(mx, my)
	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if b.pressed && b.hovered && b.onClick != nil {
			b.onClick()
		}
		b.pressed = false
	}
	return b.hovered
}

func (b *button) draw(screen *ebiten.Image) {
	var bgColor color.Color
	if b.pressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	} else if b.hovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}

	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bgColor, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	textWidth := len(b.label) * 8 // Approximate character width
	textX := b.x + (b.w-textWidth)/2
	textY := b.y + (b.h+8)/2 - 4
	ebitenutil.DebugPrintAt(screen, b.label, textX, textY)
}
