// Package models defines data structures for retaining wall quantity takeoff.
package models

// WallSpec holds the parsed dimensions of one retaining wall segment.
// All lengths are in meters.
type WallSpec struct {
	// ChannageFrom is the opaque label of the segment start.
	ChannageFrom string `json:"channage_from"`
	// ChannageTo is the opaque label of the segment end.
	ChannageTo string `json:"channage_to"`
	// DepthFoundation is the foundation depth for soling and PCC.
	DepthFoundation float64 `json:"depth_foundation"`
	// WidthFoundation is reserved. It is parsed and validated but no formula reads it.
	WidthFoundation float64 `json:"width_foundation"`
	// TopWidth is the width of the wall at its top.
	TopWidth float64 `json:"top_width"`
	// HeightWall is the height of the wall above ground.
	HeightWall float64 `json:"height_wall"`
	// LengthWall is the length of the wall along the alignment.
	LengthWall float64 `json:"length_wall"`
}
