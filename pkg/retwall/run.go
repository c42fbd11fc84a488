package retwall

import (
	"fmt"
	"math"

	"github.com/ukaji3/retwall-go/pkg/retwall/models"
)

// Calculate derives quantities, geometry and warnings for a parsed wall.
// It is a pure function of s.
func Calculate(s models.WallSpec) *models.Result {
	return &models.Result{
		Spec:      s,
		BaseWidth: BaseWidth(s.HeightWall),
		Lines:     Quantities(s),
		Drawing:   Geometry(s),
		Warnings:  Warnings(s),
	}
}

// Run parses raw input, calculates the result and hands it to every sink in order.
// A parse failure returns an *InvalidInputError before any sink is called,
// and so does a quantity that overflows to infinity.
// The first sink error stops the run.
func Run(raw RawInput, opts Options) (*models.Result, error) {
	log := opts.logger()

	spec, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	res := Calculate(spec)
	for _, l := range res.Lines {
		if math.IsInf(l.Quantity, 0) || math.IsNaN(l.Quantity) {
			return nil, fmt.Errorf("%s: %w", l.Description, ErrOverflow)
		}
	}
	log.Debug("calculated quantities",
		"channage_from", spec.ChannageFrom,
		"channage_to", spec.ChannageTo,
		"base_width", res.BaseWidth)

	for _, w := range res.Warnings {
		log.Warn(w)
	}

	for i, sink := range opts.Sinks {
		path, err := sink.Write(res)
		if err != nil {
			return res, fmt.Errorf("output %d: %w", i+1, err)
		}
		if path == "" {
			log.Debug("output skipped", "sink", i+1)
			continue
		}
		log.Info("wrote output", "path", path)
	}

	return res, nil
}
