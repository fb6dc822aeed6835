package models

import "encoding/json"

// Backdrop is a named visual theme that can be applied to a gift.
type Backdrop struct {
	Name         string `json:"name"`
	URL          string `json:"url"`
	CenterColor  int64  `json:"centerColor"`
	EdgeColor    int64  `json:"edgeColor"`
	PatternColor int64  `json:"patternColor"`
	TextColor    int64  `json:"textColor"`

	// RarityPermille is relayed byte-for-byte, null and quoted values included.
	RarityPermille json.RawMessage `json:"rarityPermille"`

	// Hex maps color names to their hex representation. Values are kept raw
	// since upstream does not fix their type.
	Hex map[string]json.RawMessage `json:"hex"`
}

// FloorPrices maps backdrop names to their current floor price. Values are
// relayed as raw JSON because the upstream does not document their type.
type FloorPrices struct {
	FloorPrices map[string]json.RawMessage `json:"floorPrices"`
}
