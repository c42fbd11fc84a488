package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/retwall-go/pkg/retwall"
	"github.com/ukaji3/retwall-go/pkg/retwall/cad"
	"github.com/ukaji3/retwall-go/pkg/retwall/diagram"
	"github.com/ukaji3/retwall-go/pkg/retwall/output"
	"github.com/ukaji3/retwall-go/pkg/retwall/sheet"
)

// inputFlags maps RawInput fields to flag names.
var inputFlags = []struct {
	name  string
	usage string
	field func(*retwall.RawInput) *string
}{
	{"from", "Channage from (label)", func(in *retwall.RawInput) *string { return &in.ChannageFrom }},
	{"to", "Channage to (label)", func(in *retwall.RawInput) *string { return &in.ChannageTo }},
	{"depth-foundation", "Depth of foundation for soling and PCC (m)", func(in *retwall.RawInput) *string { return &in.DepthFoundation }},
	{"width-foundation", "Width of foundation (m), reserved", func(in *retwall.RawInput) *string { return &in.WidthFoundation }},
	{"top-width", "Top width of wall (m)", func(in *retwall.RawInput) *string { return &in.TopWidth }},
	{"height", "Height of retaining wall (m)", func(in *retwall.RawInput) *string { return &in.HeightWall }},
	{"length", "Length of retaining wall (m)", func(in *retwall.RawInput) *string { return &in.LengthWall }},
}

// outputs holds the destinations of the three file sinks.
type outputs struct {
	dir  string
	xlsx string
	dxf  string
	plot string
}

func calcCmd() *cobra.Command {
	var (
		inputPath string
		flagInput retwall.RawInput
		out       outputs
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute quantities and write the spreadsheet and drawings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw := flagInput
			if inputPath != "" {
				loaded, err := retwall.LoadInput(inputPath)
				if err != nil {
					return err
				}
				raw = loaded
				applyInputFlags(cmd.Flags(), flagInput, &raw)
			}
			return runCalc(raw, out, jsonOut)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&inputPath, "input", "i", "", "YAML file with the wall dimensions")
	bindInputFlags(fs, &flagInput)
	fs.StringVarP(&out.dir, "out-dir", "o", "", "Write all outputs to this directory using default names")
	fs.StringVar(&out.xlsx, "xlsx", "", "Spreadsheet output path")
	fs.StringVar(&out.dxf, "dxf", "", "DXF drawing output path")
	fs.StringVar(&out.plot, "plot", "", "Diagram image output path (.png, .svg, .pdf, ...)")
	fs.BoolVar(&jsonOut, "json", false, "Print the full result as JSON instead of the summary")

	return cmd
}

// bindInputFlags registers one string flag per form field.
func bindInputFlags(fs *pflag.FlagSet, in *retwall.RawInput) {
	for _, f := range inputFlags {
		fs.StringVar(f.field(in), f.name, "", f.usage)
	}
}

// applyInputFlags copies explicitly set flags over values loaded from a file.
func applyInputFlags(fs *pflag.FlagSet, flagInput retwall.RawInput, dst *retwall.RawInput) {
	for _, f := range inputFlags {
		if fs.Changed(f.name) {
			*f.field(dst) = *f.field(&flagInput)
		}
	}
}

// resolve fills unset paths with default names under dir.
func (o outputs) resolve(from, to string) outputs {
	if o.dir == "" {
		return o
	}
	if o.xlsx == "" {
		o.xlsx = filepath.Join(o.dir, retwall.XLSXFileName(from, to))
	}
	if o.dxf == "" {
		o.dxf = filepath.Join(o.dir, retwall.DXFFileName(from, to))
	}
	if o.plot == "" {
		o.plot = filepath.Join(o.dir, retwall.PlotFileName(from, to))
	}
	return o
}

func runCalc(raw retwall.RawInput, out outputs, jsonOut bool) error {
	out = out.resolve(raw.ChannageFrom, raw.ChannageTo)

	// Validate before creating directories so bad input leaves no trace.
	if _, err := retwall.Parse(raw); err != nil {
		return err
	}
	if out.dir != "" {
		if err := os.MkdirAll(out.dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	opts := retwall.Options{
		Logger: newLogger(),
		Sinks: []retwall.Sink{
			sheet.NewWriter(out.xlsx),
			cad.NewWriter(out.dxf),
			diagram.NewRenderer(out.plot),
		},
	}

	res, err := retwall.Run(raw, opts)
	if err != nil {
		return err
	}

	if jsonOut {
		jsonData, err := output.ToJSON(res, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	}

	fmt.Print(output.Summary(res.Lines))
	return nil
}
