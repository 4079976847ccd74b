package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func filledRect(w, h, x0, y0, x1, y1 int) Mono {
	m := Mono{Width: w, Height: h, Pix: make([]byte, w*h)}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			m.Set(x, y, 255)
		}
	}
	return m
}

func TestContoursSingleRectangle(t *testing.T) {
	bin := filledRect(20, 20, 5, 5, 15, 15)
	backend := DefaultBackend{}
	polys := backend.Contours(bin)

	assert.Len(t, polys, 1)

	minX, minY, maxX, maxY := polys[0][0].X, polys[0][0].Y, polys[0][0].X, polys[0][0].Y
	for _, p := range polys[0] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	assert.Equal(t, 5, minX)
	assert.Equal(t, 5, minY)
	assert.Equal(t, 14, maxX)
	assert.Equal(t, 14, maxY)
}

func TestContoursTwoSeparateComponents(t *testing.T) {
	m := Mono{Width: 30, Height: 10, Pix: make([]byte, 300)}
	for y := 2; y < 8; y++ {
		for x := 2; x < 8; x++ {
			m.Set(x, y, 255)
		}
		for x := 20; x < 26; x++ {
			m.Set(x, y, 255)
		}
	}

	backend := DefaultBackend{}
	polys := backend.Contours(m)
	assert.Len(t, polys, 2)
}

func TestContoursEmptyImageYieldsNone(t *testing.T) {
	m := Mono{Width: 10, Height: 10, Pix: make([]byte, 100)}
	backend := DefaultBackend{}
	assert.Empty(t, backend.Contours(m))
}
