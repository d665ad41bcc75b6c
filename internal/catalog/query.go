// Package catalog implements the query, normalization and client layer toward
// the upstream education-listings service.
package catalog

import (
	"fmt"
	"net/url"
	"strconv"

	"karriarsparet-gateway/pkg/models"
	"karriarsparet-gateway/pkg/utils"
)

// DefaultPageSize is applied whenever a query carries no explicit size
const DefaultPageSize = 20

// Query is one concrete upstream query. Exactly one mode is active per query;
// each mode maps 1:1 to an upstream path.
type Query interface {
	// Endpoint returns the upstream path (relative to the API base) and the
	// query-string values for this query.
	Endpoint() (string, url.Values)
}

// AllQuery lists the whole catalog, paged
type AllQuery struct {
	Page int
	Size int
}

// SearchQuery is a free-text search, optionally scoped to a single provider
type SearchQuery struct {
	Text          string
	ProviderTitle string
	Page          int
	Size          int
}

// ProviderQuery lists the educations of one provider
type ProviderQuery struct {
	Name string
	Page int
	Size int
}

// RegionQuery lists the educations of one region
type RegionQuery struct {
	Code string
	Page int
	Size int
}

// FilterQuery is the combined-filter mode: free text plus any combination of
// the filter dimensions. Unset dimensions are absent from the serialized form.
type FilterQuery struct {
	Text        string
	Providers   []string
	Regions     []string
	ContentTags []string
	Levels      []string
	FormCodes   []string
	FormTypes   []string

	CreditsMin *float64
	CreditsMax *float64
	PaceMin    *float64
	PaceMax    *float64

	StartFrom string
	StartTo   string

	IsDegree *bool

	Page int
	Size int
}

// Endpoint implements Query
func (q AllQuery) Endpoint() (string, url.Values) {
	return "/educations", pagingValues(q.Page, q.Size)
}

// Endpoint implements Query
func (q SearchQuery) Endpoint() (string, url.Values) {
	values := pagingValues(q.Page, q.Size)
	values.Set("query", q.Text)
	if q.ProviderTitle != "" {
		values.Set("providerTitle", q.ProviderTitle)
	}
	return "/educations/search", values
}

// Endpoint implements Query
func (q ProviderQuery) Endpoint() (string, url.Values) {
	return "/educations/provider/" + url.PathEscape(q.Name), pagingValues(q.Page, q.Size)
}

// Endpoint implements Query
func (q RegionQuery) Endpoint() (string, url.Values) {
	return "/educations/region/" + url.PathEscape(q.Code), pagingValues(q.Page, q.Size)
}

// Endpoint implements Query
func (q FilterQuery) Endpoint() (string, url.Values) {
	values := pagingValues(q.Page, q.Size)

	if q.Text != "" {
		values.Set("query", q.Text)
	}

	// List dimensions serialize as one repeated parameter per value; the
	// upstream filter endpoint does not accept comma-joined lists.
	addAll := func(name string, items []string) {
		for _, item := range items {
			values.Add(name, item)
		}
	}
	addAll("provider", q.Providers)
	addAll("regionCode", q.Regions)
	addAll("content", q.ContentTags)
	addAll("educationLevel", q.Levels)
	addAll("formCode", q.FormCodes)
	addAll("formType", q.FormTypes)

	setFloat := func(name string, v *float64) {
		if v != nil {
			values.Set(name, strconv.FormatFloat(*v, 'f', -1, 64))
		}
	}
	setFloat("creditsMin", q.CreditsMin)
	setFloat("creditsMax", q.CreditsMax)
	setFloat("paceOfStudyMin", q.PaceMin)
	setFloat("paceOfStudyMax", q.PaceMax)

	// Date bounds only serialize as a pair.
	if q.StartFrom != "" && q.StartTo != "" {
		values.Set("startDateFrom", q.StartFrom)
		values.Set("startDateTo", q.StartTo)
	}

	if q.IsDegree != nil {
		values.Set("isDegree", strconv.FormatBool(*q.IsDegree))
	}

	return "/educations/search/filter", values
}

// BuildQuery maps a filter state to the upstream query that serves it. Any
// populated dimension routes to the combined filter endpoint carrying every
// populated dimension at once; a bare state lists the whole catalog.
//
// Earlier releases treated provider and region filters as mutually exclusive
// and let free text win outright. The combined form is the current upstream
// contract and strictly more expressive, so it is the only mode emitted here.
func BuildQuery(filters models.FilterState) Query {
	trimmedText := utils.TrimAll([]string{filters.Query})
	text := ""
	if len(trimmedText) > 0 {
		text = trimmedText[0]
	}

	normalized := models.FilterState{
		Query:       text,
		Providers:   utils.TrimAll(filters.Providers),
		Regions:     utils.TrimAll(filters.Regions),
		Levels:      utils.TrimAll(filters.Levels),
		FormCodes:   utils.TrimAll(filters.FormCodes),
		ContentTags: utils.TrimAll(filters.ContentTags),
		CreditsMin:  filters.CreditsMin,
		CreditsMax:  filters.CreditsMax,
		PaceMin:     filters.PaceMin,
		PaceMax:     filters.PaceMax,
		StartFrom:   filters.StartFrom,
		StartTo:     filters.StartTo,
		IsDegree:    filters.IsDegree,
	}

	if !normalized.HasActiveFilters() {
		return AllQuery{Page: filters.Page, Size: filters.Size}
	}

	return FilterQuery{
		Text:        normalized.Query,
		Providers:   normalized.Providers,
		Regions:     normalized.Regions,
		ContentTags: normalized.ContentTags,
		Levels:      normalized.Levels,
		FormCodes:   normalized.FormCodes,
		CreditsMin:  filters.CreditsMin,
		CreditsMax:  filters.CreditsMax,
		PaceMin:     filters.PaceMin,
		PaceMax:     filters.PaceMax,
		StartFrom:   filters.StartFrom,
		StartTo:     filters.StartTo,
		IsDegree:    filters.IsDegree,
		Page:        filters.Page,
		Size:        filters.Size,
	}
}

// BuildURL serializes a query against an API base URL. The endpoint path is
// appended verbatim: its segments are already escaped, re-parsing them would
// mangle encoded provider names.
func BuildURL(base string, query Query) (string, error) {
	if _, err := url.Parse(base); err != nil {
		return "", fmt.Errorf("catalog: parse base url: %w", err)
	}

	path, values := query.Endpoint()
	return joinPath(base, path) + "?" + values.Encode(), nil
}

func pagingValues(page, size int) url.Values {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}

	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("size", strconv.Itoa(size))
	return values
}

// joinPath joins base and endpoint paths without collapsing the escaped
// segments that path.Join would mangle
func joinPath(base, endpoint string) string {
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return base + endpoint
}
