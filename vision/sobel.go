package vision

// EdgeMap computes a Sobel gradient magnitude image over img's grayscale
// buffer (spec.md §6: "Sobel-like gradient magnitude, 8-bit"), matching the
// original implementation's 0.5/0.5-weighted combination of the absolute
// horizontal and vertical gradients.
func (DefaultBackend) EdgeMap(img Image) Mono {
	w, h := img.Width, img.Height
	out := Mono{Width: w, Height: h, Pix: make([]byte, w*h)}

	at := func(x, y int) int {
		if x < 0 {
			x = 0
		}
		if x >= w {
			x = w - 1
		}
		if y < 0 {
			y = 0
		}
		if y >= h {
			y = h - 1
		}
		return int(img.Gray[y*w+x])
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx := -at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1) +
				at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1)
			gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)

			mag := 0.5*float64(absInt(gx)) + 0.5*float64(absInt(gy))
			if mag > 255 {
				mag = 255
			}
			out.Pix[y*w+x] = byte(mag)
		}
	}

	return out
}

// Threshold implements Backend.Threshold: values strictly greater than t
// become 255, else 0 (spec.md §6).
func (DefaultBackend) Threshold(m Mono, t uint8) Mono {
	out := Mono{Width: m.Width, Height: m.Height, Pix: make([]byte, len(m.Pix))}
	for i, v := range m.Pix {
		if v > t {
			out.Pix[i] = 255
		}
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
