package vision

// Contours implements Backend.Contours: it labels 8-connected foreground
// components of the binary image and traces each component's outer
// boundary with Moore-Neighbor tracing, restricted to the component's
// bounding box. The tracer is adapted from other_examples/
// ba867707_MeKo-Christian-pogo__internal-detector-contour.go.go's
// traceContourMoore, generalised from a single-label trace over
// precomputed component stats to label the whole image first.
func (DefaultBackend) Contours(bin Mono) []Polygon {
	labels, bboxes := labelComponents(bin)

	polygons := make([]Polygon, 0, len(bboxes))
	for label, box := range bboxes {
		pts := traceContourMoore(labels, bin.Width, bin.Height, label+1, box)
		if len(pts) < 3 {
			continue
		}
		polygons = append(polygons, pts)
	}
	return polygons
}

type bbox struct {
	minX, minY, maxX, maxY int
}

// labelComponents runs a two-pass 8-connected connected-component labeling
// over bin (foreground = 255), returning a label image (0 = background,
// else component index + 1) and the bounding box of each component.
func labelComponents(bin Mono) (labels []int, boxes []bbox) {
	w, h := bin.Width, bin.Height
	labels = make([]int, w*h)

	isFg := func(x, y int) bool {
		return x >= 0 && y >= 0 && x < w && y < h && bin.Pix[y*w+x] == 255
	}

	visited := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if visited[idx] || !isFg(x, y) {
				continue
			}

			label := len(boxes) + 1
			box := bbox{minX: x, minY: y, maxX: x, maxY: y}

			stack := []int{idx}
			visited[idx] = true
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				cx, cy := cur%w, cur/w
				labels[cur] = label

				if cx < box.minX {
					box.minX = cx
				}
				if cx > box.maxX {
					box.maxX = cx
				}
				if cy < box.minY {
					box.minY = cy
				}
				if cy > box.maxY {
					box.maxY = cy
				}

				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := cx+dx, cy+dy
						if !isFg(nx, ny) {
							continue
						}
						ni := ny*w + nx
						if visited[ni] {
							continue
						}
						visited[ni] = true
						stack = append(stack, ni)
					}
				}
			}

			boxes = append(boxes, box)
		}
	}

	return labels, boxes
}

// traceContourMoore extracts a boundary polygon for the given labeled
// component using Moore-Neighbor tracing, restricted to the component's
// bounding box for efficiency.
func traceContourMoore(labels []int, w, h, label int, box bbox) []Point {
	idx := func(x, y int) int { return y*w + x }
	inBounds := func(x, y int) bool { return x >= 0 && y >= 0 && x < w && y < h }
	isLabel := func(x, y int) bool {
		if !inBounds(x, y) {
			return false
		}
		return labels[idx(x, y)] == label
	}
	isBoundary := func(x, y int) bool {
		if !isLabel(x, y) {
			return false
		}
		return !isLabel(x+1, y) || !isLabel(x-1, y) || !isLabel(x, y+1) || !isLabel(x, y-1)
	}

	sx, sy := -1, -1
	for y := box.minY; y <= box.maxY && sx == -1; y++ {
		for x := box.minX; x <= box.maxX; x++ {
			if isBoundary(x, y) {
				sx, sy = x, y
				break
			}
		}
	}
	if sx == -1 {
		return nil
	}

	ndx := [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	ndy := [8]int{0, 1, 1, 1, 0, -1, -1, -1}
	dirIndex := func(dx, dy int) int {
		for i := range 8 {
			if ndx[i] == dx && ndy[i] == dy {
				return i
			}
		}
		return 0
	}

	cx, cy := sx, sy
	bx, by := sx-1, sy

	pts := make([]Point, 0, 64)
	push := func(x, y int) {
		p := Point{X: x, Y: y}
		n := len(pts)
		if n >= 2 {
			a := pts[n-2]
			b := pts[n-1]
			v1x, v1y := b.X-a.X, b.Y-a.Y
			v2x, v2y := p.X-b.X, p.Y-b.Y
			if v1x*v2y-v1y*v2x == 0 {
				pts = pts[:n-1]
			}
		}
		pts = append(pts, p)
	}
	push(cx, cy)

	startCx, startCy := cx, cy
	startBx, startBy := bx, by
	maxSteps := w*h*4 + 8
	for steps := 0; steps < maxSteps; steps++ {
		dx, dy := bx-cx, by-cy
		start := (dirIndex(dx, dy) + 1) % 8

		found := false
		for k := 0; k < 8; k++ {
			i := (start + k) % 8
			tx, ty := cx+ndx[i], cy+ndy[i]
			if isLabel(tx, ty) {
				bx, by = cx, cy
				cx, cy = tx, ty
				if len(pts) == 0 || pts[len(pts)-1].X != cx || pts[len(pts)-1].Y != cy {
					push(cx, cy)
				}
				found = true
				break
			}
			bx, by = tx, ty
		}
		if !found {
			break
		}
		if cx == startCx && cy == startCy && bx == startBx && by == startBy {
			break
		}
	}

	if len(pts) >= 2 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	return pts
}
