package models

import "encoding/json"

// FilterState represents the user-facing search and filter parameters for the
// browse surface. It is read-only for the core: handlers build a snapshot per
// request and pass it down, nothing below the API layer mutates it.
type FilterState struct {
	Query       string   `json:"searchQuery"`
	Providers   []string `json:"selectedProviders"`
	Regions     []string `json:"selectedRegions"`
	Levels      []string `json:"selectedEducationLevels"`
	FormCodes   []string `json:"selectedFormCodes"`
	ContentTags []string `json:"selectedContentTags"`

	CreditsMin *float64 `json:"creditsMin,omitempty"`
	CreditsMax *float64 `json:"creditsMax,omitempty"`
	PaceMin    *float64 `json:"paceOfStudyMin,omitempty"`
	PaceMax    *float64 `json:"paceOfStudyMax,omitempty"`

	StartFrom string `json:"startDateFrom,omitempty"`
	StartTo   string `json:"startDateTo,omitempty"`

	IsDegree *bool `json:"isDegree,omitempty"`

	Page int `json:"page"`
	Size int `json:"size"`
}

// HasActiveFilters reports whether any filter dimension beyond paging is set
func (f FilterState) HasActiveFilters() bool {
	return f.Query != "" ||
		len(f.Providers) > 0 ||
		len(f.Regions) > 0 ||
		len(f.Levels) > 0 ||
		len(f.FormCodes) > 0 ||
		len(f.ContentTags) > 0 ||
		f.CreditsMin != nil || f.CreditsMax != nil ||
		f.PaceMin != nil || f.PaceMax != nil ||
		f.StartFrom != "" || f.StartTo != "" ||
		f.IsDegree != nil
}

// DecodeFilterSnapshot decodes a persisted filter snapshot. Persisted state
// survives schema drift between releases, so every field is validated
// structurally and malformed fields fall back to their zero value instead of
// failing the whole snapshot.
func DecodeFilterSnapshot(data []byte) FilterState {
	var state FilterState
	if len(data) == 0 {
		return snapshotDefaults(state)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return snapshotDefaults(state)
	}

	decodeField(raw, "searchQuery", &state.Query)
	decodeField(raw, "selectedProviders", &state.Providers)
	decodeField(raw, "selectedRegions", &state.Regions)
	decodeField(raw, "selectedEducationLevels", &state.Levels)
	decodeField(raw, "selectedFormCodes", &state.FormCodes)
	decodeField(raw, "selectedContentTags", &state.ContentTags)
	decodeField(raw, "creditsMin", &state.CreditsMin)
	decodeField(raw, "creditsMax", &state.CreditsMax)
	decodeField(raw, "paceOfStudyMin", &state.PaceMin)
	decodeField(raw, "paceOfStudyMax", &state.PaceMax)
	decodeField(raw, "startDateFrom", &state.StartFrom)
	decodeField(raw, "startDateTo", &state.StartTo)
	decodeField(raw, "isDegree", &state.IsDegree)
	decodeField(raw, "page", &state.Page)
	decodeField(raw, "size", &state.Size)

	return snapshotDefaults(state)
}

// decodeField decodes one snapshot field into a temporary and assigns it only
// on success. Unmarshal into a pointer field allocates before it type-checks,
// so decoding straight into the destination would turn a malformed scalar
// into a live pointer at zero.
func decodeField[T any](raw map[string]json.RawMessage, key string, dst *T) {
	msg, ok := raw[key]
	if !ok {
		return
	}
	var value T
	if err := json.Unmarshal(msg, &value); err != nil {
		return
	}
	*dst = value
}

func snapshotDefaults(state FilterState) FilterState {
	if state.Providers == nil {
		state.Providers = []string{}
	}
	if state.Regions == nil {
		state.Regions = []string{}
	}
	if state.Levels == nil {
		state.Levels = []string{}
	}
	if state.FormCodes == nil {
		state.FormCodes = []string{}
	}
	if state.ContentTags == nil {
		state.ContentTags = []string{}
	}
	if state.Page < 0 {
		state.Page = 0
	}
	if state.Size <= 0 {
		state.Size = 0
	}

	return state
}
