// Package codes resolves Swedish administrative codes (län, kommun) to
// display names. Tables are plain immutable maps injected at construction so
// tests and deployments can substitute their own.
package codes

import (
	"sort"
	"strings"

	"karriarsparet-gateway/pkg/models"
)

// NormalizeFunc canonicalizes a raw code before table lookup
type NormalizeFunc func(code string) string

// Resolver maps codes to human-readable names over a fixed lookup table
type Resolver struct {
	lookup    map[string]string
	normalize NormalizeFunc
}

// NewResolver creates a resolver from a lookup table and a normalizer.
// The table is copied, callers cannot mutate it afterwards.
func NewResolver(lookup map[string]string, normalize NormalizeFunc) *Resolver {
	copied := make(map[string]string, len(lookup))
	for k, v := range lookup {
		copied[k] = v
	}
	return &Resolver{lookup: copied, normalize: normalize}
}

// Name resolves a single code. Anything without a table hit comes back
// unmodified rather than erroring, even codes that normalize to nothing;
// only empty input resolves to empty.
func (r *Resolver) Name(code string) string {
	if name, ok := r.lookup[r.normalize(code)]; ok {
		return name
	}
	return code
}

// Names resolves a list of codes, silently dropping empty entries
func (r *Resolver) Names(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		if name := r.Name(code); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// JoinedNames resolves a list of codes into a single comma-separated string
func (r *Resolver) JoinedNames(codes []string) string {
	return strings.Join(r.Names(codes), ", ")
}

// Options returns the full table as {code, name} pairs sorted by name, for
// list endpoints and dropdowns
func (r *Resolver) Options() []models.Region {
	options := make([]models.Region, 0, len(r.lookup))
	for code, name := range r.lookup {
		options = append(options, models.Region{Code: code, Name: name})
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Name < options[j].Name
	})
	return options
}

// NormalizeDigits strips every non-digit character, left-pads with zeros up to
// width, and truncates anything longer to the first width characters.
func NormalizeDigits(code string, width int) string {
	var digits strings.Builder
	for _, r := range code {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	s := digits.String()
	if s == "" {
		return ""
	}
	if len(s) <= width {
		return strings.Repeat("0", width-len(s)) + s
	}
	return s[:width]
}
