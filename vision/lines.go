package vision

import "math"

// DetectLines implements Backend.DetectLines with a standard Hough-space
// accumulator over the image's Sobel edge magnitude: edge pixels above a
// fixed threshold vote into a (rho, theta) accumulator, and every
// accumulator bin with at least minVotes votes is converted back into a
// Segment spanning its voting edge pixels' extreme projections along that
// line's direction; near-duplicate segments from neighbouring bins are then
// merged by dedupSegments. No length filter is applied here. This plays
// the role of spec.md §6's "line-segment detector"; no LSD/Hough
// implementation exists anywhere in the retrieval pack, so it is
// implemented directly against the standard library.
func (b DefaultBackend) DetectLines(img Image) []Segment {
	edges := b.EdgeMap(img)
	const edgeThreshold = 80

	w, h := img.Width, img.Height
	diag := int(math.Ceil(math.Hypot(float64(w), float64(h))))
	const thetaSteps = 180
	rhoOffset := diag

	type vote struct{ x, y int }
	votesByBin := make(map[int][]vote)

	cosT := make([]float64, thetaSteps)
	sinT := make([]float64, thetaSteps)
	for t := 0; t < thetaSteps; t++ {
		theta := float64(t) * math.Pi / float64(thetaSteps)
		cosT[t] = math.Cos(theta)
		sinT[t] = math.Sin(theta)
	}

	var edgePixels []vote
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if edges.At(x, y) <= edgeThreshold {
				continue
			}
			edgePixels = append(edgePixels, vote{x, y})
		}
	}
	// Cap the accumulator's workload for very large or very noisy images:
	// subsample edge pixels uniformly rather than letting it grow
	// unbounded (no unbounded accumulation across stages, spec.md §5).
	const maxVotingPixels = 200000
	stride := 1
	if len(edgePixels) > maxVotingPixels {
		stride = len(edgePixels) / maxVotingPixels
	}

	for i := 0; i < len(edgePixels); i += stride {
		px := edgePixels[i]
		for t := 0; t < thetaSteps; t++ {
			rho := int(math.Round(float64(px.x)*cosT[t] + float64(px.y)*sinT[t]))
			bin := (rho+rhoOffset)*thetaSteps + t
			votesByBin[bin] = append(votesByBin[bin], px)
		}
	}

	const minVotes = 40
	var segments []Segment
	for bin, pts := range votesByBin {
		if len(pts) < minVotes {
			continue
		}
		t := bin % thetaSteps

		// Project voting pixels onto the line direction and take the
		// extreme pair as the segment's endpoints.
		dirX, dirY := -sinT[t], cosT[t]
		minProj, maxProj := math.Inf(1), math.Inf(-1)
		var a, bPt Point
		for _, p := range pts {
			proj := float64(p.x)*dirX + float64(p.y)*dirY
			if proj < minProj {
				minProj = proj
				a = Point{X: p.x, Y: p.y}
			}
			if proj > maxProj {
				maxProj = proj
				bPt = Point{X: p.x, Y: p.y}
			}
		}
		segments = append(segments, Segment{A: a, B: bPt})
	}

	return dedupSegments(segments)
}

// dedupSegments merges near-duplicate segments that the accumulator emits
// when neighbouring (rho, theta) bins both clear minVotes for the same
// physical line, keeping the longest of each cluster.
func dedupSegments(segments []Segment) []Segment {
	type scored struct {
		seg Segment
		len float64
	}
	scoredSegs := make([]scored, len(segments))
	for i, s := range segments {
		scoredSegs[i] = scored{seg: s, len: dist(s.A, s.B)}
	}

	kept := make([]scored, 0, len(scoredSegs))
	for _, s := range scoredSegs {
		merged := false
		for i, k := range kept {
			if closeSegments(s.seg, k.seg) {
				if s.len > k.len {
					kept[i] = s
				}
				merged = true
				break
			}
		}
		if !merged {
			kept = append(kept, s)
		}
	}

	out := make([]Segment, len(kept))
	for i, k := range kept {
		out[i] = k.seg
	}
	return out
}

func closeSegments(a, b Segment) bool {
	const tol = 8.0
	return (dist(a.A, b.A) <= tol && dist(a.B, b.B) <= tol) ||
		(dist(a.A, b.B) <= tol && dist(a.B, b.A) <= tol)
}
