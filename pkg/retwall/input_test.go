package retwall

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func exampleInput() RawInput {
	return RawInput{
		ChannageFrom:    "0+100",
		ChannageTo:      "0+150",
		DepthFoundation: "1.0",
		WidthFoundation: "2.0",
		TopWidth:        "0.5",
		HeightWall:      "3",
		LengthWall:      " 10 ",
	}
}

func TestParse(t *testing.T) {
	spec, err := Parse(exampleInput())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if spec != exampleSpec() {
		t.Errorf("Parse = %+v, expected %+v", spec, exampleSpec())
	}
}

func TestParseInvalidField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RawInput)
		field  string
	}{
		{"depth text", func(in *RawInput) { in.DepthFoundation = "abc" }, "depth_foundation"},
		{"width empty", func(in *RawInput) { in.WidthFoundation = "" }, "width_foundation"},
		{"top comma", func(in *RawInput) { in.TopWidth = "0,5" }, "top_width"},
		{"height unit", func(in *RawInput) { in.HeightWall = "3m" }, "height_wall"},
		{"length blank", func(in *RawInput) { in.LengthWall = "   " }, "length_wall"},
		{"depth infinity", func(in *RawInput) { in.DepthFoundation = "inf" }, "depth_foundation"},
		{"height nan", func(in *RawInput) { in.HeightWall = "NaN" }, "height_wall"},
		{"length signed infinity", func(in *RawInput) { in.LengthWall = "-Infinity" }, "length_wall"},
		{"top overflow", func(in *RawInput) { in.TopWidth = "1e500" }, "top_width"},
		{"first wins", func(in *RawInput) { in.TopWidth = "x"; in.DepthFoundation = "y" }, "depth_foundation"},
	}

	for _, tt := range tests {
		in := exampleInput()
		tt.mutate(&in)

		_, err := Parse(in)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tt.name, err)
			continue
		}
		var inputErr *InvalidInputError
		if !errors.As(err, &inputErr) {
			t.Errorf("%s: expected *InvalidInputError, got %T", tt.name, err)
			continue
		}
		if inputErr.Field != tt.field {
			t.Errorf("%s: field = %q, expected %q", tt.name, inputErr.Field, tt.field)
		}
	}
}

func TestParseLabelsAreOpaque(t *testing.T) {
	in := exampleInput()
	in.ChannageFrom = "abc"
	in.ChannageTo = ""

	spec, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if spec.ChannageFrom != "abc" || spec.ChannageTo != "" {
		t.Errorf("Labels changed: %q, %q", spec.ChannageFrom, spec.ChannageTo)
	}
}

func TestLoadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wall.yaml")
	data := []byte(`channage_from: "0+100"
channage_to: "0+150"
depth_foundation: 1.0
width_foundation: 2.0
top_width: 0.5
height_wall: 3
length_wall: 10
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write input file: %v", err)
	}

	in, err := LoadInput(path)
	if err != nil {
		t.Fatalf("LoadInput failed: %v", err)
	}
	if in.DepthFoundation != "1.0" || in.LengthWall != "10" || in.ChannageTo != "0+150" {
		t.Errorf("Unexpected input %+v", in)
	}

	spec, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if spec != exampleSpec() {
		t.Errorf("Parse = %+v, expected %+v", spec, exampleSpec())
	}
}

func TestLoadInputErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("depth_foundation: [1, 2\n"), 0644); err != nil {
		t.Fatalf("Failed to write input file: %v", err)
	}

	tests := []string{
		filepath.Join(dir, "missing.yaml"),
		bad,
	}
	for _, path := range tests {
		if _, err := LoadInput(path); err == nil {
			t.Errorf("LoadInput(%q): expected error", filepath.Base(path))
		}
	}
}

func TestLoadInputTestdata(t *testing.T) {
	in, err := LoadInput(filepath.Join("testdata", "wall.yaml"))
	if err != nil {
		t.Fatalf("LoadInput failed: %v", err)
	}

	res, err := Run(in, DefaultOptions())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Lines[3].Quantity != 30 {
		t.Errorf("Expected stone masonry 30, got %v", res.Lines[3].Quantity)
	}
}
