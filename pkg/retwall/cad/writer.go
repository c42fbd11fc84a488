package cad

import (
	"fmt"

	"github.com/ukaji3/retwall-go/pkg/retwall/models"
)

// Writer exports both outlines to a DXF file.
type Writer struct {
	// Path is the destination file. An empty path disables the writer.
	Path string
}

// NewWriter creates a Writer for path.
func NewWriter(path string) *Writer {
	return &Writer{Path: path}
}

// Write saves the outlines of res.Drawing at w.Path.
func (w *Writer) Write(res *models.Result) (string, error) {
	if w.Path == "" {
		return "", nil
	}

	if err := FromDrawing(res.Drawing).SaveAs(w.Path); err != nil {
		return "", fmt.Errorf("writing drawing: %w", err)
	}
	return w.Path, nil
}
