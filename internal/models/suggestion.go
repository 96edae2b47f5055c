package models

// Suggestion is what the captioning assistant proposes for a freshly
// photographed donation. Volunteers edit it before the listing is confirmed.
type Suggestion struct {
	Name           string  `json:"name"`
	SuggestedPrice float64 `json:"suggested_price"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
}

type SuggestionRequest struct {
	ImageBase64 string `json:"image_base64"`
	HintName    string `json:"hint_name,omitempty"`
}
