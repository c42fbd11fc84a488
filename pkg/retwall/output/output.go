// Package output serializes calculation results for display.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ukaji3/retwall-go/pkg/retwall/models"
)

// ToJSON serializes a Result.
func ToJSON(res *models.Result, pretty bool) ([]byte, error) {
	return marshal(res, pretty)
}

// WorkbookToJSON serializes a BOQ workbook read back from disk.
func WorkbookToJSON(wb *models.BOQWorkbook, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// DrawingSummaryToJSON serializes per-layer line counts of a CAD drawing.
func DrawingSummaryToJSON(layers map[string]int, pretty bool) ([]byte, error) {
	return marshal(map[string]any{"lines_by_layer": layers}, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// Summary renders one "<item>: <quantity> cubic meters" line per row.
func Summary(lines []models.QuantityLine) string {
	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "%s: %.2f cubic meters\n", l.Description, l.Quantity)
	}
	return b.String()
}
