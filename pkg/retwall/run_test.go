package retwall

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ukaji3/retwall-go/pkg/retwall/models"
)

func TestRunCallsSinksInOrder(t *testing.T) {
	var calls []string
	sink := func(name string) Sink {
		return SinkFunc(func(res *models.Result) (string, error) {
			calls = append(calls, name)
			if len(res.Lines) != 5 {
				t.Errorf("%s: expected 5 lines, got %d", name, len(res.Lines))
			}
			return name, nil
		})
	}

	opts := DefaultOptions()
	opts.Sinks = []Sink{sink("sheet"), sink("cad"), sink("diagram")}

	res, err := Run(exampleInput(), opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.BaseWidth != 1.5 {
		t.Errorf("Expected base width 1.5, got %v", res.BaseWidth)
	}
	if strings.Join(calls, ",") != "sheet,cad,diagram" {
		t.Errorf("Unexpected sink order %v", calls)
	}
}

func TestRunInvalidInputHasNoSideEffects(t *testing.T) {
	called := false
	opts := Options{Sinks: []Sink{SinkFunc(func(*models.Result) (string, error) {
		called = true
		return "x", nil
	})}}

	in := exampleInput()
	in.DepthFoundation = "abc"

	res, err := Run(in, opts)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
	if res != nil {
		t.Error("Expected no result on invalid input")
	}
	if called {
		t.Error("Expected no sink to be called on invalid input")
	}
}

func TestRunStopsAtFirstSinkError(t *testing.T) {
	boom := errors.New("disk full")
	var calls int
	opts := Options{Sinks: []Sink{
		SinkFunc(func(*models.Result) (string, error) { calls++; return "", boom }),
		SinkFunc(func(*models.Result) (string, error) { calls++; return "b", nil }),
	}}

	_, err := Run(exampleInput(), opts)
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped sink error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected 1 sink call, got %d", calls)
	}
}

func TestRunLogsWarningsAndOutputs(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{
		Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		Sinks: []Sink{
			SinkFunc(func(*models.Result) (string, error) { return "out.xlsx", nil }),
			SinkFunc(func(*models.Result) (string, error) { return "", nil }),
		},
	}

	in := exampleInput()
	in.TopWidth = "2.5"
	if _, err := Run(in, opts); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	logs := buf.String()
	for _, want := range []string{"level=WARN", "self-intersects", "path=out.xlsx", "output skipped"} {
		if !strings.Contains(logs, want) {
			t.Errorf("Expected log output to contain %q:\n%s", want, logs)
		}
	}
}

func TestRunOverflowHasNoSideEffects(t *testing.T) {
	called := false
	opts := Options{Sinks: []Sink{SinkFunc(func(*models.Result) (string, error) {
		called = true
		return "x", nil
	})}}

	in := exampleInput()
	in.HeightWall = "1e200"
	in.LengthWall = "1e200"

	res, err := Run(in, opts)
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("Expected ErrOverflow, got %v", err)
	}
	if res != nil || called {
		t.Error("Expected no result and no sink call on overflow")
	}
}

func TestFileNames(t *testing.T) {
	tests := []struct {
		got, expected string
	}{
		{XLSXFileName("0+100", "0+150"), "retaining_wall_calculations_0+100_to_0+150.xlsx"},
		{DXFFileName("0+100", "0+150"), "retaining_wall_drawing_0+100_to_0+150.dxf"},
		{PlotFileName("A", "B"), "retaining_wall_diagram_A_to_B.png"},
		{XLSXFileName("CH 1/2", "CH 3/4"), "retaining_wall_calculations_CH 1-2_to_CH 3-4.xlsx"},
		{DXFFileName(`a\b`, "../c"), "retaining_wall_drawing_a-b_to_..-c.dxf"},
		{PlotFileName("0+100/L", ""), "retaining_wall_diagram_0+100-L_to_.png"},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("file name = %q, expected %q", tt.got, tt.expected)
		}
	}
}
