// Package cad exports retaining wall outlines as DXF line entities.
package cad

import (
	"fmt"

	"github.com/ukaji3/retwall-go/pkg/retwall/models"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/entity"
)

// Layer names, one per diagram.
const (
	LayerFrontElevation = "FRONT_ELEVATION"
	LayerCrossSection   = "CROSS_SECTION"
)

// Line is a DXF LINE entity on a layer.
type Line struct {
	Layer string
	Start models.Point
	End   models.Point
}

// Drawing lists the layers and line entities of an outline export in order.
type Drawing struct {
	Layers []string
	Lines  []Line
}

// FromDrawing lays out each section's outline segments on its own layer.
// Fills and weep-hole markers are not exported.
func FromDrawing(d models.Drawing) *Drawing {
	doc := &Drawing{}
	sections := []struct {
		layer   string
		section models.Section
	}{
		{LayerFrontElevation, d.FrontElevation},
		{LayerCrossSection, d.CrossSection},
	}
	for _, s := range sections {
		doc.Layers = append(doc.Layers, s.layer)
		for _, seg := range s.section.Segments() {
			doc.AddLine(s.layer, seg)
		}
	}
	return doc
}

// AddLine appends a line entity on layer.
func (d *Drawing) AddLine(layer string, seg models.Segment) {
	d.Lines = append(d.Lines, Line{Layer: layer, Start: seg.Start, End: seg.End})
}

// Document builds the DXF document. Lines on a layer missing from d.Layers
// are rejected.
func (d *Drawing) Document() (*drawing.Drawing, error) {
	doc := dxf.NewDrawing()
	known := make(map[string]bool, len(d.Layers))
	for _, name := range d.Layers {
		if _, err := doc.AddLayer(name, dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
			return nil, fmt.Errorf("adding layer %s: %w", name, err)
		}
		known[name] = true
	}

	current := ""
	for i, l := range d.Lines {
		if !known[l.Layer] {
			return nil, fmt.Errorf("line %d: unknown layer %q", i+1, l.Layer)
		}
		if l.Layer != current {
			if err := doc.ChangeLayer(l.Layer); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			current = l.Layer
		}
		if _, err := doc.Line(l.Start.X, l.Start.Y, 0, l.End.X, l.End.Y, 0); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return doc, nil
}

// SaveAs writes the drawing to path.
func (d *Drawing) SaveAs(path string) error {
	doc, err := d.Document()
	if err != nil {
		return err
	}
	return doc.SaveAs(path)
}

// ReadLines opens a DXF file and returns its LINE entities in file order.
// Other entity types are skipped.
func ReadLines(path string) ([]Line, error) {
	doc, err := dxf.Open(path)
	if err != nil {
		return nil, err
	}

	var lines []Line
	for _, e := range doc.Entities() {
		l, ok := e.(*entity.Line)
		if !ok {
			continue
		}
		lines = append(lines, Line{
			Layer: layerName(l),
			Start: models.Pt(l.Start[0], l.Start[1]),
			End:   models.Pt(l.End[0], l.End[1]),
		})
	}
	return lines, nil
}

// LayerCounts counts lines per layer.
func LayerCounts(lines []Line) map[string]int {
	counts := make(map[string]int)
	for _, l := range lines {
		counts[l.Layer]++
	}
	return counts
}

func layerName(l *entity.Line) string {
	if layer := l.Layer(); layer != nil {
		return layer.Name()
	}
	return "0"
}
