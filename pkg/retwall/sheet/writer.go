// Package sheet writes and reads bill-of-quantities workbooks.
package sheet

import (
	"fmt"

	"github.com/ukaji3/retwall-go/pkg/retwall/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the single worksheet in an exported workbook.
const SheetName = "Sheet1"

// printAreaName is the reserved defined name Excel uses for print areas.
const printAreaName = "_xlnm.Print_Area"

// Header is the fixed column header of the bill of quantities.
var Header = []string{
	"S.N",
	"Description of Item",
	"Unit",
	"Number",
	"Length (m)",
	"Width (m)",
	"Height (m)",
	"Quantity",
	"Remarks",
}

// Writer exports quantity lines to an xlsx file.
type Writer struct {
	// Path is the destination file. An empty path disables the writer.
	Path string
}

// NewWriter creates a Writer for path.
func NewWriter(path string) *Writer {
	return &Writer{Path: path}
}

// Write saves res.Lines as a workbook at w.Path.
func (w *Writer) Write(res *models.Result) (string, error) {
	if w.Path == "" {
		return "", nil
	}

	f, err := Build(res.Lines)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := f.SaveAs(w.Path); err != nil {
		return "", fmt.Errorf("saving workbook: %w", err)
	}
	return w.Path, nil
}

// Build creates an in-memory workbook with one header row and one row per line.
// The populated range is registered as the sheet's print area.
func Build(lines []models.QuantityLine) (*excelize.File, error) {
	f := excelize.NewFile()

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing header: %w", err)
	}

	for i, l := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		row := []interface{}{
			l.Index, l.Description, l.Unit, l.Count,
			l.Length, l.Width, l.Height, l.Quantity, l.Remarks,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing row %d: %w", l.Index, err)
		}
	}

	if err := setPrintArea(f, len(Header), len(lines)+1); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// setPrintArea registers A1 through (cols, rows) as the print area of SheetName.
func setPrintArea(f *excelize.File, cols, rows int) error {
	start, err := excelize.CoordinatesToCellName(1, 1, true)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(cols, rows, true)
	if err != nil {
		return err
	}

	return f.SetDefinedName(&excelize.DefinedName{
		Name:     printAreaName,
		RefersTo: fmt.Sprintf("%s!%s:%s", SheetName, start, end),
		Scope:    SheetName,
	})
}
