package models

// QuantityLine represents one row of the bill of quantities.
type QuantityLine struct {
	// Index is the 1-based serial number.
	Index int `json:"index"`
	// Description names the item of work.
	Description string `json:"description"`
	// Unit is the unit of the quantity (always "cu.m").
	Unit string `json:"unit"`
	// Count is the number of identical items.
	Count int `json:"count"`
	// Length is the length factor used in the multiplication.
	Length float64 `json:"length"`
	// Width is the width factor used in the multiplication (averaged for masonry).
	Width float64 `json:"width"`
	// Height is the height or thickness factor used in the multiplication.
	Height float64 `json:"height"`
	// Quantity is the computed volume.
	Quantity float64 `json:"quantity"`
	// Remarks identifies the wall segment.
	Remarks string `json:"remarks"`
}
