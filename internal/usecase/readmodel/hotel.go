package readmodel

type HotelSummaryRM struct {
	PlaceID  string  `json:"place_id"`
	Name     string  `json:"name"`
	Vicinity string  `json:"vicinity,omitempty"`
	Rating   float32 `json:"rating,omitempty"`
	PhotoRef *string `json:"photo_ref,omitempty"`
}

type HotelDetailsRM struct {
	PlaceID   string   `json:"place_id"`
	Name      string   `json:"name"`
	Rating    float32  `json:"rating,omitempty"`
	Address   string   `json:"address,omitempty"`
	PhotoRefs []string `json:"photo_refs,omitempty"`
	Types     []string `json:"types,omitempty"`
}
