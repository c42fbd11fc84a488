// Package retwall computes retaining wall quantities and drawing geometry.
package retwall

import (
	"fmt"

	"github.com/ukaji3/retwall-go/pkg/retwall/models"
)

// Fixed layer thicknesses in meters.
const (
	DepthPCC    = 0.1  // PCC below the foundation
	StoneSoling = 0.15 // stone soling below the PCC
	TopPCC      = 0.05 // PCC coping on top of the wall
	// TopPCCBand is the thickness drawn for the top PCC layer in the front elevation.
	TopPCCBand = 0.1

	// BaseWidthRatio relates base width to wall height.
	BaseWidthRatio = 0.5

	UnitCubicMeter = "cu.m"
)

// Item descriptions in bill-of-quantities order.
const (
	ItemFoundationEarthwork   = "Foundation Earthwork"
	ItemFoundationStoneSoling = "Foundation Stone Soling"
	ItemFoundationPCC         = "Foundation PCC"
	ItemStoneMasonry          = "Stone Masonry"
	ItemTopPCC                = "Top PCC"
)

// BaseWidth returns the wall base width for the given height.
func BaseWidth(heightWall float64) float64 {
	return BaseWidthRatio * heightWall
}

// Remarks returns the remark text identifying the wall segment.
func Remarks(from, to string) string {
	return fmt.Sprintf("Channage from %s to %s", from, to)
}

// Quantities computes the five bill-of-quantities rows for a wall.
func Quantities(s models.WallSpec) []models.QuantityLine {
	base := BaseWidth(s.HeightWall)
	remarks := Remarks(s.ChannageFrom, s.ChannageTo)

	earthworkDepth := s.DepthFoundation + DepthPCC + StoneSoling
	masonryWidth := (base + s.TopWidth) / 2

	rows := []struct {
		desc                  string
		length, width, height float64
	}{
		{ItemFoundationEarthwork, s.LengthWall, base, earthworkDepth},
		{ItemFoundationStoneSoling, s.LengthWall, base, StoneSoling},
		{ItemFoundationPCC, s.LengthWall, base, DepthPCC},
		{ItemStoneMasonry, s.LengthWall, masonryWidth, s.HeightWall},
		{ItemTopPCC, s.LengthWall, s.TopWidth, TopPCC},
	}

	lines := make([]models.QuantityLine, 0, len(rows))
	for i, r := range rows {
		lines = append(lines, models.QuantityLine{
			Index:       i + 1,
			Description: r.desc,
			Unit:        UnitCubicMeter,
			Count:       1,
			Length:      r.length,
			Width:       r.width,
			Height:      r.height,
			Quantity:    r.length * r.width * r.height,
			Remarks:     remarks,
		})
	}
	return lines
}
