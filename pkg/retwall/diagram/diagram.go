// Package diagram renders the front elevation and cross section as a two-panel image.
package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/retwall-go/pkg/retwall"
	"github.com/ukaji3/retwall-go/pkg/retwall/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	// Image formats selectable by file extension.
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// Default canvas size.
const (
	DefaultWidth  = 12 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

// margin is the padding around each panel's geometry, in meters.
const margin = 0.5

var (
	outlineColor = color.Black
	markerColor  = color.NRGBA{B: 255, A: 255}

	bandColors = map[string]color.Color{
		retwall.BandFoundation:  color.NRGBA{R: 128, G: 128, B: 128, A: 128},
		retwall.BandTopPCC:      color.NRGBA{R: 165, G: 42, B: 42, A: 128},
		retwall.BandStoneSoling: color.NRGBA{R: 255, G: 255, A: 128},
		retwall.BandPCC:         color.NRGBA{R: 165, G: 42, B: 42, A: 128},
	}
)

// Renderer writes the diagram of a result to an image file.
// The format follows the file extension: png, svg, pdf, eps, jpg or tif.
type Renderer struct {
	// Path is the destination file. An empty path disables the renderer.
	Path   string
	Width  vg.Length
	Height vg.Length
}

// NewRenderer creates a Renderer for path with the default canvas size.
func NewRenderer(path string) *Renderer {
	return &Renderer{Path: path, Width: DefaultWidth, Height: DefaultHeight}
}

// Write renders res and saves it at r.Path.
func (r *Renderer) Write(res *models.Result) (string, error) {
	if r.Path == "" {
		return "", nil
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(r.Path)), ".")
	c, err := draw.NewFormattedCanvas(r.Width, r.Height, format)
	if err != nil {
		return "", fmt.Errorf("diagram format %q: %w", format, err)
	}

	panels, err := Panels(res)
	if err != nil {
		return "", err
	}

	plots := [][]*plot.Plot{panels}
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(panels),
		PadX:      vg.Centimeter,
		PadY:      vg.Centimeter,
		PadTop:    vg.Centimeter / 2,
		PadBottom: vg.Centimeter / 2,
		PadLeft:   vg.Centimeter / 2,
		PadRight:  vg.Centimeter / 2,
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for j, p := range panels {
		p.Draw(canvases[0][j])
	}

	f, err := os.Create(r.Path)
	if err != nil {
		return "", fmt.Errorf("creating diagram: %w", err)
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("writing diagram: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing diagram: %w", err)
	}
	return r.Path, nil
}

// Panels builds the front elevation and cross section plots of res.
func Panels(res *models.Result) ([]*plot.Plot, error) {
	s := res.Spec
	extents := []float64{s.LengthWall, res.BaseWidth}

	sections := res.Drawing.Sections()
	panels := make([]*plot.Plot, 0, len(sections))
	for i, sec := range sections {
		p, err := sectionPlot(sec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", sec.Name, err)
		}
		p.X.Min, p.X.Max = -margin, extents[i]+margin
		p.Y.Min, p.Y.Max = -s.DepthFoundation-1, s.HeightWall+1
		panels = append(panels, p)
	}
	return panels, nil
}

// sectionPlot draws one section: filled bands first, then the outline, then markers.
func sectionPlot(sec models.Section) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = sec.Name
	p.X.Label.Text = sec.XLabel
	p.Y.Label.Text = "Height (m)"

	for _, b := range sec.Bands {
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: b.X1, Y: b.Bottom},
			{X: b.X2, Y: b.Bottom},
			{X: b.X2, Y: b.Top},
			{X: b.X1, Y: b.Top},
		})
		if err != nil {
			return nil, err
		}
		poly.Color = bandColors[b.Label]
		poly.LineStyle.Width = 0
		p.Add(poly)
	}

	outline, err := plotter.NewLine(toXYs(sec.Outline))
	if err != nil {
		return nil, err
	}
	outline.LineStyle.Color = outlineColor
	outline.LineStyle.Width = vg.Points(1)
	p.Add(outline)

	markers, err := plotter.NewScatter(toXYs(sec.Markers))
	if err != nil {
		return nil, err
	}
	markers.GlyphStyle.Color = markerColor
	markers.GlyphStyle.Shape = draw.CircleGlyph{}
	markers.GlyphStyle.Radius = vg.Points(3)
	p.Add(markers)

	return p, nil
}

func toXYs(pts []models.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	return xys
}
