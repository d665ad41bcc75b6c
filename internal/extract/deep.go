package extract

import (
	"sort"
	"strings"
)

// The upstream service has shipped at least four incompatible shapes for the
// description and eligibility data inside fullData. Rather than chasing a
// schema, the locators check the well-known direct paths first and then walk
// the generic JSON tree (map[string]any as produced by encoding/json) with
// bounded depth, matching keys by a case- and underscore-insensitive
// substring comparison.

const (
	maxDescriptionDepth = 5
	maxEligibilityDepth = 6

	// Deeply-matched description strings shorter than this are treated as
	// labels rather than prose and skipped.
	minDescriptionLength = 20
)

// Known key spellings, pre-normalized (lower-case, no underscores)
var descriptionKeys = []string{
	"description",
	"descriptionswedish",
	"descriptionswe",
	"descriptionsv",
	"beskrivning",
	"content",
}

var eligibilityKeys = []string{
	"eligibilitydescription",
	"behorighet",
	"behorighetskrav",
	"entryrequirements",
	"qualification",
	"antagning",
	"krav",
	"eligibility",
}

// Containers worth descending into when looking for a description
var descriptionContainers = []string{"education", "educationInfo", "info", "data"}

// Description locates a human-readable description inside a fullData blob.
// Returns the empty string when nothing usable is found; never fails.
func Description(fullData map[string]any) string {
	if fullData == nil {
		return ""
	}

	// Direct well-known paths first.
	if items := asLocalizedList(fullData["descriptions"]); len(items) > 0 {
		if text := LocalizedPlain(items); text != "" {
			return text
		}
	}
	if s, ok := fullData["description"].(string); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	for _, key := range []string{"descriptionSwedish", "descriptionSwe"} {
		if s, ok := fullData[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}

	return deepFindDescription(fullData, 0)
}

// Eligibility locates an eligibility/entry-requirements paragraph inside a
// fullData blob. Returns the empty string when nothing usable is found.
func Eligibility(fullData map[string]any) string {
	if fullData == nil {
		return ""
	}

	// The UOH shape: education.eligibility.eligibilityDescription is a list
	// of localized groups, [[{lang, content}, ...], ...].
	if education := asMap(fullData["education"]); education != nil {
		if eligibility := asMap(education["eligibility"]); eligibility != nil {
			if groups, ok := eligibility["eligibilityDescription"].([]any); ok && len(groups) > 0 {
				if items := asLocalizedList(groups[0]); len(items) > 0 {
					if text := LocalizedPlain(items); text != "" {
						return text
					}
				}
			}
		}
	}

	// Flat variants.
	if eligibility := asMap(fullData["eligibility"]); eligibility != nil {
		if s, ok := eligibility["eligibilityDescription"].(string); ok && strings.TrimSpace(s) != "" {
			return PlainText(s)
		}
	}
	if s, ok := fullData["eligibilityDescription"].(string); ok && strings.TrimSpace(s) != "" {
		return PlainText(s)
	}

	return deepFindEligibility(fullData, 0)
}

// deepFindDescription scans the keys of obj for description-like names,
// descending only into the known container keys
func deepFindDescription(obj any, depth int) string {
	if depth > maxDescriptionDepth {
		return ""
	}
	m := asMap(obj)
	if m == nil {
		return ""
	}

	for _, key := range sortedKeys(m) {
		if !matchesAny(key, descriptionKeys) {
			continue
		}
		switch v := m[key].(type) {
		case string:
			if trimmed := strings.TrimSpace(v); len(trimmed) > minDescriptionLength {
				return trimmed
			}
		case []any:
			if items := asLocalizedList(v); len(items) > 0 {
				if text := LocalizedPlain(items); text != "" {
					return text
				}
			}
		}
	}

	for _, container := range descriptionContainers {
		if nested, ok := m[container]; ok {
			if found := deepFindDescription(nested, depth+1); found != "" {
				return found
			}
		}
	}
	return ""
}

// deepFindEligibility scans all keys of obj for eligibility-like names and
// recurses into every plain nested object, first non-empty hit wins
func deepFindEligibility(obj any, depth int) string {
	if depth > maxEligibilityDepth {
		return ""
	}
	m := asMap(obj)
	if m == nil {
		return ""
	}

	// An eligibility-like wrapper object with a description-ish sub-field.
	for _, wrapper := range []string{"eligibility", "eligibilityInfo", "eligibilityRequirements"} {
		elig := asMap(m[wrapper])
		if elig == nil {
			continue
		}
		for _, field := range []string{"eligibilityDescription", "description", "content", "text"} {
			if s, ok := elig[field].(string); ok && strings.TrimSpace(s) != "" {
				return PlainText(s)
			}
		}
	}

	keys := sortedKeys(m)

	for _, key := range keys {
		if !matchesAny(key, eligibilityKeys) {
			continue
		}
		switch v := m[key].(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return PlainText(v)
			}
		case []any:
			if joined := joinStrings(v); joined != "" {
				return PlainText(joined)
			}
		}
	}

	for _, key := range keys {
		if _, isList := m[key].([]any); isList {
			continue
		}
		if nested := asMap(m[key]); nested != nil {
			if found := deepFindEligibility(nested, depth+1); found != "" {
				return found
			}
		}
	}
	return ""
}

// matchesAny reports whether the normalized key contains any of the known
// (pre-normalized) spellings
func matchesAny(key string, known []string) bool {
	normalized := normalizeKey(key)
	for _, candidate := range known {
		if strings.Contains(normalized, candidate) {
			return true
		}
	}
	return false
}

func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "")
	key = strings.ReplaceAll(key, " ", "")
	return key
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// asLocalizedList interprets a generic slice as localized {lang, content}
// items. Returns nil unless the first element looks like one.
func asLocalizedList(v any) []LocalizedText {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil
	}
	first := asMap(list[0])
	if first == nil {
		return nil
	}
	if _, hasContent := first["content"]; !hasContent {
		return nil
	}

	items := make([]LocalizedText, 0, len(list))
	for _, entry := range list {
		m := asMap(entry)
		if m == nil {
			continue
		}
		lang, _ := m["lang"].(string)
		content, _ := m["content"].(string)
		items = append(items, LocalizedText{Lang: lang, Content: content})
	}
	return items
}

func joinStrings(list []any) string {
	parts := make([]string, 0, len(list))
	for _, entry := range list {
		if s, ok := entry.(string); ok && s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// sortedKeys gives the traversal a stable order; Go map iteration would make
// first-match-wins nondeterministic when several keys match
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
