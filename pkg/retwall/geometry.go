package retwall

import (
	"github.com/ukaji3/retwall-go/pkg/retwall/models"
)

// Band labels used by the diagram renderer.
const (
	BandFoundation  = "Foundation"
	BandTopPCC      = "Top PCC"
	BandStoneSoling = "Stone Soling"
	BandPCC         = "PCC"
)

// Geometry builds the front elevation and cross section of a wall.
// It has no failure modes: a top width larger than the base width yields a
// self-intersecting cross section, which is returned as is.
func Geometry(s models.WallSpec) models.Drawing {
	return models.Drawing{
		FrontElevation: FrontElevation(s),
		CrossSection:   CrossSection(s),
	}
}

// FrontElevation returns the wall seen along its length. Foundation lies below y=0.
func FrontElevation(s models.WallSpec) models.Section {
	d, h, l := s.DepthFoundation, s.HeightWall, s.LengthWall

	return models.Section{
		Name:   "Front Elevation",
		XLabel: "Length (m)",
		Outline: []models.Point{
			models.Pt(0, 0),
			models.Pt(0, -d),
			models.Pt(l, -d),
			models.Pt(l, h),
			models.Pt(0, h),
			models.Pt(0, 0),
		},
		Bands: []models.Band{
			{Label: BandFoundation, X1: 0, X2: l, Bottom: -d, Top: 0},
			{Label: BandTopPCC, X1: 0, X2: l, Bottom: h, Top: h + TopPCCBand},
		},
		Markers: []models.Point{
			models.Pt(0.2*l, 0.5*h),
			models.Pt(0.8*l, 0.5*h),
		},
	}
}

// CrossSection returns the wall cut across its width.
// The battered face runs from (base, 0) to (topWidth, height); the top face
// is anchored at topWidth from the back edge, not inset from the toe.
func CrossSection(s models.WallSpec) models.Section {
	d, h, t := s.DepthFoundation, s.HeightWall, s.TopWidth
	b := BaseWidth(h)
	slantX := b - (b - t)

	return models.Section{
		Name:   "Cross Section",
		XLabel: "Width (m)",
		Outline: []models.Point{
			models.Pt(0, 0),
			models.Pt(0, -d),
			models.Pt(b, -d),
			models.Pt(b, 0),
			models.Pt(slantX, h),
			models.Pt(0, h),
			models.Pt(0, 0),
		},
		Bands: []models.Band{
			{Label: BandStoneSoling, X1: 0, X2: b, Bottom: -d, Top: 0},
			{Label: BandPCC, X1: 0, X2: b, Bottom: -d - DepthPCC, Top: -d},
		},
		Markers: []models.Point{
			models.Pt(0.1*b, 0.5*h),
			models.Pt(0.4*b, 0.5*h),
		},
	}
}
