package models

// SaveFiltersRequest represents the payload for persisting a filter snapshot
// for a browsing session
type SaveFiltersRequest struct {
	Filters FilterState `json:"filters" validate:"required"`
}
