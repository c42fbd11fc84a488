package models

// PrintArea represents cell coordinate bounds for a print area.
type PrintArea struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// BOQWorkbook is a bill-of-quantities workbook read back from disk.
type BOQWorkbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the rows were read from.
	SheetName string `json:"sheet_name"`
	// Header is the first row of the sheet.
	Header []string `json:"header"`
	// Lines are the data rows.
	Lines []QuantityLine `json:"lines"`
	// DataRange is the bounding range of non-empty cells (e.g. "A1:I6").
	DataRange string `json:"data_range,omitempty"`
	// PrintAreas lists the sheet's print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
}
