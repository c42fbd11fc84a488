package models

// Point is a 2-D vertex in meters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a shorthand constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Segment is a straight line between two vertices.
type Segment struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Band is a horizontal filled strip between X1..X2 and Bottom..Top.
type Band struct {
	Label  string  `json:"label"`
	X1     float64 `json:"x1"`
	X2     float64 `json:"x2"`
	Bottom float64 `json:"bottom"`
	Top    float64 `json:"top"`
}

// Section is one 2-D diagram: an outline polyline, filled bands and weep-hole markers.
type Section struct {
	// Name is the panel title.
	Name string `json:"name"`
	// XLabel is the horizontal axis label.
	XLabel string `json:"x_label"`
	// Outline lists the vertices in drawing order; the last equals the first.
	Outline []Point `json:"outline"`
	// Bands are the filled layers, in drawing order.
	Bands []Band `json:"bands"`
	// Markers are the weep-hole positions.
	Markers []Point `json:"markers"`
}

// Segments returns the outline as consecutive line segments.
func (s Section) Segments() []Segment {
	if len(s.Outline) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(s.Outline)-1)
	for i := 1; i < len(s.Outline); i++ {
		segs = append(segs, Segment{Start: s.Outline[i-1], End: s.Outline[i]})
	}
	return segs
}

// Drawing holds both diagrams of a wall.
type Drawing struct {
	FrontElevation Section `json:"front_elevation"`
	CrossSection   Section `json:"cross_section"`
}

// Sections returns the diagrams in panel order.
func (d Drawing) Sections() []Section {
	return []Section{d.FrontElevation, d.CrossSection}
}
