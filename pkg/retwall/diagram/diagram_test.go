package diagram

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/retwall-go/pkg/retwall"
	"github.com/ukaji3/retwall-go/pkg/retwall/models"
)

func exampleResult() *models.Result {
	return retwall.Calculate(models.WallSpec{
		ChannageFrom:    "A",
		ChannageTo:      "B",
		DepthFoundation: 1.0,
		TopWidth:        0.5,
		HeightWall:      3.0,
		LengthWall:      10.0,
	})
}

func TestPanels(t *testing.T) {
	panels, err := Panels(exampleResult())
	if err != nil {
		t.Fatalf("Panels failed: %v", err)
	}
	if len(panels) != 2 {
		t.Fatalf("Expected 2 panels, got %d", len(panels))
	}

	tests := []struct {
		title      string
		xLabel     string
		xMin, xMax float64
	}{
		{"Front Elevation", "Length (m)", -0.5, 10.5},
		{"Cross Section", "Width (m)", -0.5, 2.0},
	}
	for i, tt := range tests {
		p := panels[i]
		if p.Title.Text != tt.title {
			t.Errorf("Panel %d title = %q, expected %q", i, p.Title.Text, tt.title)
		}
		if p.X.Label.Text != tt.xLabel {
			t.Errorf("Panel %d x label = %q, expected %q", i, p.X.Label.Text, tt.xLabel)
		}
		if p.X.Min != tt.xMin || p.X.Max != tt.xMax {
			t.Errorf("Panel %d x range = [%v, %v], expected [%v, %v]", i, p.X.Min, p.X.Max, tt.xMin, tt.xMax)
		}
		if p.Y.Min != -2 || p.Y.Max != 4 {
			t.Errorf("Panel %d y range = [%v, %v], expected [-2, 4]", i, p.Y.Min, p.Y.Max)
		}
	}
}

func TestRendererFormats(t *testing.T) {
	tests := []struct {
		name   string
		marker []byte
	}{
		{"diagram.png", []byte("\x89PNG")},
		{"diagram.svg", []byte("<svg")},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		path := filepath.Join(dir, tt.name)
		got, err := NewRenderer(path).Write(exampleResult())
		if err != nil {
			t.Fatalf("%s: Write failed: %v", tt.name, err)
		}
		if got != path {
			t.Errorf("%s: Write returned %q", tt.name, got)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("%s: ReadFile failed: %v", tt.name, err)
		}
		if !bytes.Contains(data, tt.marker) {
			t.Errorf("%s: output does not contain %q", tt.name, tt.marker)
		}
	}
}

func TestRendererUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagram.bmp")
	if _, err := NewRenderer(path).Write(exampleResult()); err == nil {
		t.Error("Expected error for unsupported format")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected no file for unsupported format")
	}
}

func TestRendererEmptyPathIsNoop(t *testing.T) {
	got, err := NewRenderer("").Write(exampleResult())
	if err != nil || got != "" {
		t.Errorf("Write(\"\") = %q, %v, expected no-op", got, err)
	}
}
