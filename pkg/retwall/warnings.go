package retwall

import (
	"fmt"

	"github.com/ukaji3/retwall-go/pkg/retwall/models"
)

// Warnings lists non-fatal notices about a wall's geometry.
// They never change the computed quantities or outlines.
func Warnings(s models.WallSpec) []string {
	var warnings []string

	dims := []struct {
		name  string
		value float64
	}{
		{"depth_foundation", s.DepthFoundation},
		{"top_width", s.TopWidth},
		{"height_wall", s.HeightWall},
		{"length_wall", s.LengthWall},
	}
	for _, d := range dims {
		if !(d.value > 0) {
			warnings = append(warnings, fmt.Sprintf("%s is not positive (%g); quantities may be meaningless", d.name, d.value))
		}
	}

	if base := BaseWidth(s.HeightWall); s.TopWidth > base {
		warnings = append(warnings, fmt.Sprintf("top width %g exceeds base width %g; cross section outline self-intersects", s.TopWidth, base))
	}

	return warnings
}
