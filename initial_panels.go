package kumiko

import "github.com/louxiu/kumiko/vision"

// initialPanels builds one Panel per vision contour, simplifying each
// contour with Douglas-Peucker (tolerance 0.001 * perimeter) and dropping
// anything "very small" (spec.md §4.2).
func initialPanels(g pageGeometry, backend vision.Backend, contours []Polygon) []Panel {
	panels := make([]Panel, 0, len(contours))
	for _, contour := range contours {
		perimeter := contour.Perimeter()
		epsilon := 0.001 * perimeter

		approxVision := backend.ApproxPoly(polygonToVision(contour), epsilon)
		approx := polygonFromVision(approxVision)

		panel := panelFromPolygon(approx)
		if panel.IsVerySmall(g) {
			continue
		}
		panels = append(panels, panel)
	}
	return panels
}
