package models

// NationalRegionCode is the reserved region code the barometer uses for the
// country-wide row of a classification code.
const NationalRegionCode = "00"

// BarometerRow represents one labor-market forecast row for a classification
// code at either national ("00") or regional (län) level
type BarometerRow struct {
	ID                    int64  `json:"id,omitempty"`
	SSYK                  string `json:"ssyk"`
	SSYKText              string `json:"ssykText,omitempty"`
	Region                string `json:"lan"`
	Demand                string `json:"jobbmojligheter,omitempty"`
	Forecast              string `json:"prognos,omitempty"`
	Recruitment           string `json:"rekryteringssituation,omitempty"`
	DemandNarrative       string `json:"textJobbmojligheter,omitempty"`
	RecruitmentNarrative  string `json:"textRekryteringssituation,omitempty"`
	Round                 string `json:"omgang,omitempty"`
}

// HasDemand reports whether the row carries a usable demand-level value
func (r BarometerRow) HasDemand() bool {
	return r.Demand != ""
}

// RegionOutlook is the aggregated per-region entry of a forecast result
type RegionOutlook struct {
	Demand   string `json:"demand,omitempty"`
	Forecast string `json:"forecast,omitempty"`
}

// MarketForecast is the outcome of resolving occupation matches against the
// barometer: the accepted candidate's rows, partitioned and aggregated
type MarketForecast struct {
	SelectedSSYK   string                   `json:"selectedSsyk,omitempty"`
	National       *BarometerRow            `json:"national,omitempty"`
	Regional       []BarometerRow           `json:"regional,omitempty"`
	DemandByRegion map[string]RegionOutlook `json:"demandByRegion,omitempty"`
}

// Empty reports whether the resolution produced no usable data
func (f MarketForecast) Empty() bool {
	return f.SelectedSSYK == ""
}
