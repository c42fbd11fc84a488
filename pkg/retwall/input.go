package retwall

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ukaji3/retwall-go/pkg/retwall/models"
	"gopkg.in/yaml.v3"
)

// RawInput holds the seven free-text form fields exactly as entered.
type RawInput struct {
	ChannageFrom    string `yaml:"channage_from"`
	ChannageTo      string `yaml:"channage_to"`
	DepthFoundation string `yaml:"depth_foundation"`
	WidthFoundation string `yaml:"width_foundation"`
	TopWidth        string `yaml:"top_width"`
	HeightWall      string `yaml:"height_wall"`
	LengthWall      string `yaml:"length_wall"`
}

// LoadInput reads a RawInput from a YAML file.
func LoadInput(path string) (RawInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RawInput{}, fmt.Errorf("reading input file: %w", err)
	}

	var in RawInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return RawInput{}, fmt.Errorf("parsing input YAML: %w", err)
	}
	return in, nil
}

// Parse converts the raw fields into a WallSpec.
// The first numeric field that fails to parse, in form order, is reported
// as an *InvalidInputError. Channage labels are taken verbatim.
func Parse(in RawInput) (models.WallSpec, error) {
	spec := models.WallSpec{
		ChannageFrom: in.ChannageFrom,
		ChannageTo:   in.ChannageTo,
	}

	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"depth_foundation", in.DepthFoundation, &spec.DepthFoundation},
		{"width_foundation", in.WidthFoundation, &spec.WidthFoundation},
		{"top_width", in.TopWidth, &spec.TopWidth},
		{"height_wall", in.HeightWall, &spec.HeightWall},
		{"length_wall", in.LengthWall, &spec.LengthWall},
	}

	for _, f := range fields {
		v, err := parseNumber(f.raw)
		if err != nil {
			return models.WallSpec{}, NewInvalidInputError(f.name, f.raw)
		}
		*f.dst = v
	}
	return spec, nil
}

// parseNumber parses a finite real number, ignoring surrounding whitespace.
// Infinities and NaN are rejected like any other non-number.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrInvalidInput
	}
	return v, nil
}
