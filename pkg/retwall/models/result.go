package models

// Result is the complete output of one calculation request.
type Result struct {
	// Spec is the parsed input.
	Spec WallSpec `json:"input"`
	// BaseWidth is the derived base width (half the wall height).
	BaseWidth float64 `json:"base_width"`
	// Lines holds the five bill-of-quantities rows in fixed order.
	Lines []QuantityLine `json:"lines"`
	// Drawing holds the front elevation and cross section geometry.
	Drawing Drawing `json:"drawing"`
	// Warnings lists non-fatal geometry notices.
	Warnings []string `json:"warnings,omitempty"`
}
