package catalog

import (
	"sort"
	"strings"

	"karriarsparet-gateway/internal/codes"
	"karriarsparet-gateway/internal/extract"
	"karriarsparet-gateway/pkg/models"
)

// Display labels for upstream codes. Kept as Swedish literal data, matching
// the catalog's own language.
var levelLabels = map[string]string{
	"grund":          "Grundnivå",
	"avancerad":      "Avancerad nivå",
	"grundavancerad": "Grund- och avancerad nivå",
	"förutbildning":  "Förutbildning",
}

var languageLabels = map[string]string{
	"swe": "Svenska",
	"eng": "Engelska",
	"sv":  "Svenska",
	"en":  "Engelska",
}

var timeOfStudyLabels = map[string]string{
	"dag":     "Dagtid",
	"kväll":   "Kväll",
	"distans": "Distans",
}

func displayLabel(labels map[string]string, code string) string {
	if label, ok := labels[strings.ToLower(code)]; ok {
		return label
	}
	return code
}

// Detailer merges an education record, its fullData probes and the event
// summary into the display-ready detail shape
type Detailer struct {
	regions        *codes.Resolver
	municipalities *codes.Resolver
	topMatches     int
}

// NewDetailer creates a detail composer over the given code resolvers
func NewDetailer(regions, municipalities *codes.Resolver, topMatches int) *Detailer {
	if topMatches <= 0 {
		topMatches = 8
	}
	return &Detailer{
		regions:        regions,
		municipalities: municipalities,
		topMatches:     topMatches,
	}
}

// BuildDetail assembles the detail view for one education. Every fullData
// probe degrades to an absent field; a record with an empty or alien fullData
// still produces a valid detail.
func (d *Detailer) BuildDetail(record *models.EducationRecord, event *models.EventSummary, matches []models.OccupationMatch) models.EducationDetail {
	detail := models.EducationDetail{
		ID:         record.ID,
		Title:      record.Title,
		Providers:  record.Providers,
		LastSynced: record.LastSynced,
	}

	fullData := record.FullData

	detail.Description = strings.TrimSpace(record.Description)
	if detail.Description == "" {
		detail.Description = extract.Description(fullData)
	}
	detail.Eligibility = strings.TrimSpace(record.EligibilityDescription)
	if detail.Eligibility == "" {
		detail.Eligibility = extract.Eligibility(fullData)
	}

	education := subMap(fullData, "education")
	if credits := subMap(education, "credits"); credits != nil {
		if v, ok := credits["credits"].(float64); ok {
			detail.Credits = v
		}
	}
	if level := subMap(education, "educationLevel"); level != nil {
		if code, ok := level["code"].(string); ok {
			detail.Level = displayLabel(levelLabels, code)
		}
	}
	if form := subMap(education, "form"); form != nil {
		if code, ok := form["code"].(string); ok {
			detail.Form = code
		}
	}
	if expires, ok := education["expires"].(string); ok {
		detail.Expires = expires
	}
	detail.Subjects = subjectNames(education)

	eventSummary := subMap(fullData, "eventSummary")
	municipalityCodes := stringList(eventSummary, "municipalityCode", "municipalityCodes")
	eventRegionCodes := stringList(eventSummary, "regionCode", "regionCodes")
	languages := stringList(eventSummary, "languageOfInstruction", "languagesOfInstruction")
	timeOfStudy := stringList(eventSummary, "timeOfStudy", "timeOfStudyCodes")
	detail.PacePercentages = floatList(eventSummary, "paceOfStudyPercentage", "paceOfStudyPercentages")
	if distance, ok := eventSummary["distance"].(bool); ok {
		detail.Distance = distance
	}

	detail.MunicipalityNames = d.municipalities.JoinedNames(municipalityCodes)

	// Event-level region codes are fresher than the record's own when present.
	regionCodes := record.RegionCodes
	if len(eventRegionCodes) > 0 {
		regionCodes = eventRegionCodes
	}
	detail.RegionNames = d.regions.JoinedNames(regionCodes)

	detail.Languages = joinLabels(languageLabels, languages)
	detail.TimeOfStudy = joinLabels(timeOfStudyLabels, timeOfStudy)

	detail.Enrichments = enrichments(fullData)

	if event != nil {
		detail.ApplicationURL = event.URLSwe
		detail.ApplicationLast = event.ApplicationLast
	}

	detail.TopMatches = TopMatches(matches, d.topMatches)

	return detail
}

// Summarize trims a record down to the browsing list item. Region codes are
// resolved to names here so clients never see raw codes.
func (d *Detailer) Summarize(record models.EducationRecord) models.EducationSummary {
	return models.EducationSummary{
		ID:          record.ID,
		Title:       record.Title,
		Providers:   record.Providers,
		RegionNames: d.regions.Names(record.RegionCodes),
		Description: strings.TrimSpace(record.Description),
	}
}

// TopMatches returns the best-scoring matches, capped at limit. The sort is
// stable: equal scores keep their original rank.
func TopMatches(matches []models.OccupationMatch, limit int) []models.OccupationMatch {
	if len(matches) == 0 {
		return nil
	}

	sorted := make([]models.OccupationMatch, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func subMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	nested, _ := m[key].(map[string]any)
	return nested
}

// stringList reads a field that has shipped both as a single string and as a
// list, under singular and plural key spellings
func stringList(m map[string]any, keys ...string) []string {
	for _, key := range keys {
		switch v := m[key].(type) {
		case string:
			if v != "" {
				return []string{v}
			}
		case []any:
			out := make([]string, 0, len(v))
			for _, entry := range v {
				if s, ok := entry.(string); ok && s != "" {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

func floatList(m map[string]any, keys ...string) []float64 {
	for _, key := range keys {
		switch v := m[key].(type) {
		case float64:
			return []float64{v}
		case []any:
			out := make([]float64, 0, len(v))
			for _, entry := range v {
				if f, ok := entry.(float64); ok {
					out = append(out, f)
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

func subjectNames(education map[string]any) []string {
	var list []any
	for _, key := range []string{"subject", "subjects"} {
		if v, ok := education[key].([]any); ok {
			list = v
			break
		}
	}

	names := make([]string, 0, len(list))
	for _, entry := range list {
		subject, _ := entry.(map[string]any)
		if subject == nil {
			continue
		}
		name, _ := subject["name"].(string)
		if name == "" {
			name, _ = subject["nameEn"].(string)
		}
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return names
}

func enrichments(fullData map[string]any) map[string][]string {
	candidates := subMap(subMap(fullData, "text_enrichments_results"), "enriched_candidates")
	if candidates == nil {
		return nil
	}

	out := make(map[string][]string)
	for _, key := range []string{"occupations", "competencies", "traits", "geos"} {
		if values := stringList(candidates, key); len(values) > 0 {
			out[key] = values
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func joinLabels(labels map[string]string, values []string) string {
	if len(values) == 0 {
		return ""
	}
	out := make([]string, 0, len(values))
	for _, code := range values {
		if label := displayLabel(labels, code); label != "" {
			out = append(out, label)
		}
	}
	return strings.Join(out, ", ")
}
