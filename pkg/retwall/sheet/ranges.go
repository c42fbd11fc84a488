package sheet

import (
	"strings"

	"github.com/ukaji3/retwall-go/pkg/retwall/models"
	"github.com/xuri/excelize/v2"
)

// dataRange returns the range anchored at A1 that covers every non-empty
// cell of rows, or "" when rows holds no values.
func dataRange(rows [][]string) string {
	lastRow, lastCol := 0, 0
	for r, row := range rows {
		for c, cell := range row {
			if cell == "" {
				continue
			}
			lastRow = max(lastRow, r+1)
			lastCol = max(lastCol, c+1)
		}
	}
	if lastRow == 0 {
		return ""
	}

	end, err := excelize.CoordinatesToCellName(lastCol, lastRow)
	if err != nil {
		return ""
	}
	return "A1:" + end
}

// printAreas returns the print areas defined for sheetName. References to
// other sheets and malformed ranges are skipped.
func printAreas(f *excelize.File, sheetName string) []models.PrintArea {
	var areas []models.PrintArea
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) || dn.Scope != sheetName {
			continue
		}
		for _, ref := range strings.Split(dn.RefersTo, ",") {
			if area, ok := parseAreaRef(ref, sheetName); ok {
				areas = append(areas, area)
			}
		}
	}
	return areas
}

// parseAreaRef parses Sheet1!$A$1:$I$6 or 'BOQ Sheet'!$A$1:$I$6 when the
// sheet part names sheetName.
func parseAreaRef(ref, sheetName string) (models.PrintArea, bool) {
	sheet, cells, ok := strings.Cut(strings.TrimSpace(ref), "!")
	if !ok || strings.Trim(sheet, "'") != sheetName {
		return models.PrintArea{}, false
	}
	start, end, ok := strings.Cut(strings.ReplaceAll(cells, "$", ""), ":")
	if !ok {
		return models.PrintArea{}, false
	}

	c1, r1, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return models.PrintArea{}, false
	}
	c2, r2, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return models.PrintArea{}, false
	}
	return models.PrintArea{R1: r1, C1: c1, R2: r2, C2: c2}, true
}
