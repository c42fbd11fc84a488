package sheet

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/ukaji3/retwall-go/pkg/retwall/models"
	"github.com/xuri/excelize/v2"
)

// ErrUnexpectedHeader indicates the first row is not a bill-of-quantities header.
var ErrUnexpectedHeader = errors.New("unexpected bill-of-quantities header")

// RowError reports a data row that could not be read as a QuantityLine.
type RowError struct {
	Row    int // 1-based sheet row
	Column string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (%s): %v", e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ReadBOQ reads an exported bill-of-quantities workbook back into quantity lines.
// Rows are read from the first sheet. Empty rows are skipped.
func ReadBOQ(path string) (*models.BOQWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}
	sheetName := sheets[0]

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || !headerMatches(rows[0]) {
		return nil, ErrUnexpectedHeader
	}

	wb := &models.BOQWorkbook{
		BookName:  filepath.Base(path),
		SheetName: sheetName,
		Header:    rows[0],
		DataRange: dataRange(rows),
	}

	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		if isEmptyRow(rows[rowIdx]) {
			continue
		}
		line, err := parseLine(rows[rowIdx], rowIdx+1)
		if err != nil {
			return nil, err
		}
		wb.Lines = append(wb.Lines, line)
	}

	wb.PrintAreas = printAreas(f, sheetName)

	return wb, nil
}

func headerMatches(row []string) bool {
	if len(row) < len(Header) {
		return false
	}
	for i, h := range Header {
		if row[i] != h {
			return false
		}
	}
	return true
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}

// parseLine converts one sheet row into a QuantityLine.
func parseLine(row []string, rowNum int) (models.QuantityLine, error) {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	var line models.QuantityLine
	ints := []struct {
		col int
		dst *int
	}{
		{0, &line.Index},
		{3, &line.Count},
	}
	for _, c := range ints {
		v, ok := parseValue(cell(c.col)).(int64)
		if !ok {
			return line, &RowError{Row: rowNum, Column: Header[c.col], Err: strconv.ErrSyntax}
		}
		*c.dst = int(v)
	}

	floats := []struct {
		col int
		dst *float64
	}{
		{4, &line.Length},
		{5, &line.Width},
		{6, &line.Height},
		{7, &line.Quantity},
	}
	for _, c := range floats {
		v, ok := toFloat(parseValue(cell(c.col)))
		if !ok {
			return line, &RowError{Row: rowNum, Column: Header[c.col], Err: strconv.ErrSyntax}
		}
		*c.dst = v
	}

	line.Description = cell(1)
	line.Unit = cell(2)
	line.Remarks = cell(8)
	return line, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// toFloat widens a parsed numeric value to float64.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
