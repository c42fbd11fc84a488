package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/retwall-go/pkg/retwall/cad"
	"github.com/ukaji3/retwall-go/pkg/retwall/output"
	"github.com/ukaji3/retwall-go/pkg/retwall/sheet"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file.xlsx|file.dxf]",
		Short: "Read an exported spreadsheet or drawing back and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}
}

func runInspect(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}

	var (
		jsonData []byte
		err      error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		wb, rerr := sheet.ReadBOQ(path)
		if rerr != nil {
			return fmt.Errorf("reading workbook: %w", rerr)
		}
		jsonData, err = output.WorkbookToJSON(wb, pretty)
	case ".dxf":
		layers, rerr := dxfLayerCounts(path)
		if rerr != nil {
			return fmt.Errorf("reading drawing: %w", rerr)
		}
		jsonData, err = output.DrawingSummaryToJSON(layers, pretty)
	default:
		return fmt.Errorf("unsupported file type: %s (must be .xlsx or .dxf)", ext)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	fmt.Println(string(jsonData))
	return nil
}

func dxfLayerCounts(path string) (map[string]int, error) {
	lines, err := cad.ReadLines(path)
	if err != nil {
		return nil, err
	}
	return cad.LayerCounts(lines), nil
}
