package retwall

import (
	"fmt"
	"strings"
)

// labelReplacer keeps channage labels to a single path component.
var labelReplacer = strings.NewReplacer("/", "-", `\`, "-")

func fileLabel(s string) string {
	return labelReplacer.Replace(s)
}

// XLSXFileName returns the default spreadsheet name for a wall segment.
func XLSXFileName(from, to string) string {
	return fmt.Sprintf("retaining_wall_calculations_%s_to_%s.xlsx", fileLabel(from), fileLabel(to))
}

// DXFFileName returns the default CAD drawing name for a wall segment.
func DXFFileName(from, to string) string {
	return fmt.Sprintf("retaining_wall_drawing_%s_to_%s.dxf", fileLabel(from), fileLabel(to))
}

// PlotFileName returns the default diagram image name for a wall segment.
func PlotFileName(from, to string) string {
	return fmt.Sprintf("retaining_wall_diagram_%s_to_%s.png", fileLabel(from), fileLabel(to))
}
