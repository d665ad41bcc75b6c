package models

import "time"

// EducationRecord represents a single education as returned by the upstream
// catalog service. FullData carries the loosely-structured source payload;
// its shape varies between upstream versions and is only ever probed for
// specific sub-paths, never fully decoded.
type EducationRecord struct {
	ID                     string         `json:"id"`
	Title                  string         `json:"title"`
	Providers              []string       `json:"providers"`
	RegionCodes            []string       `json:"regionCodes,omitempty"`
	Description            string         `json:"description,omitempty"`
	EligibilityDescription string         `json:"eligibilityDescription,omitempty"`
	LastSynced             string         `json:"lastSynced,omitempty"`
	FullData               map[string]any `json:"fullData,omitempty"`
}

// Region represents one Swedish län as exposed by the upstream regions endpoint
type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// EducationProvider represents a provider organisation from the upstream
// provider list
type EducationProvider struct {
	ID              int64  `json:"id"`
	Identifier      string `json:"identifier"`
	NameSwe         string `json:"nameSwe"`
	NameEng         string `json:"nameEng,omitempty"`
	ResponsibleBody string `json:"responsibleBody,omitempty"`
	BodyType        string `json:"bodyType,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	URL             string `json:"url,omitempty"`
}

// OccupationMatch represents one ranked occupation match for an education.
// SSYK is the occupation classification code used as the join key toward the
// labor-market barometer.
type OccupationMatch struct {
	EducationID       string    `json:"educationId"`
	SSYK              string    `json:"ssyk"`
	Label             string    `json:"occupationGroupLabel"`
	Score             float64   `json:"groupMatchScore"`
	FetchedAt         time.Time `json:"fetchedAt,omitempty"`
	AlternativeTitles []string  `json:"alternativeTitles,omitempty"`
}

// EventSummary represents the application-oriented slice of the upstream
// education-events record for one education
type EventSummary struct {
	URLSwe          string `json:"urlSwe,omitempty"`
	ApplicationLast string `json:"applicationLast,omitempty"`
}

// EducationSummary is the list-item shape served to browsing clients
type EducationSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Providers   []string `json:"providers"`
	RegionNames []string `json:"regionNames,omitempty"`
	Description string   `json:"description,omitempty"`
}

// EducationDetail is the merged detail-view shape: the core record plus the
// fields recovered from FullData and the event summary
type EducationDetail struct {
	ID                string              `json:"id"`
	Title             string              `json:"title"`
	Providers         []string            `json:"providers"`
	RegionNames       string              `json:"regionNames,omitempty"`
	MunicipalityNames string              `json:"municipalityNames,omitempty"`
	Description       string              `json:"description,omitempty"`
	Eligibility       string              `json:"eligibility,omitempty"`
	Credits           float64             `json:"credits,omitempty"`
	Level             string              `json:"level,omitempty"`
	Form              string              `json:"form,omitempty"`
	Languages         string              `json:"languages,omitempty"`
	TimeOfStudy       string              `json:"timeOfStudy,omitempty"`
	PacePercentages   []float64           `json:"pacePercentages,omitempty"`
	Subjects          []string            `json:"subjects,omitempty"`
	Distance          bool                `json:"distance,omitempty"`
	Expires           string              `json:"expires,omitempty"`
	ApplicationURL    string              `json:"applicationUrl,omitempty"`
	ApplicationLast   string              `json:"applicationLast,omitempty"`
	Enrichments       map[string][]string `json:"enrichments,omitempty"`
	TopMatches        []OccupationMatch   `json:"topMatches,omitempty"`
	LastSynced        string              `json:"lastSynced,omitempty"`
}
