package catalog_test

import (
	"net/url"
	"strings"
	"testing"

	"karriarsparet-gateway/internal/catalog"
	"karriarsparet-gateway/pkg/models"
)

func TestBuildQuery_EmptyStateListsAll(t *testing.T) {
	query := catalog.BuildQuery(models.FilterState{})
	if _, ok := query.(catalog.AllQuery); !ok {
		t.Fatalf("BuildQuery(empty) = %T, want AllQuery", query)
	}
}

func TestBuildQuery_WhitespaceOnlyTextListsAll(t *testing.T) {
	query := catalog.BuildQuery(models.FilterState{Query: "   "})
	if _, ok := query.(catalog.AllQuery); !ok {
		t.Fatalf("BuildQuery(whitespace text) = %T, want AllQuery", query)
	}
}

func TestBuildQuery_AnyDimensionRoutesToFilter(t *testing.T) {
	degree := true
	min := 30.0
	cases := []struct {
		name    string
		filters models.FilterState
	}{
		{"text", models.FilterState{Query: "sjuksköterska"}},
		{"provider", models.FilterState{Providers: []string{"Uppsala universitet"}}},
		{"region", models.FilterState{Regions: []string{"01"}}},
		{"level", models.FilterState{Levels: []string{"grund"}}},
		{"credits", models.FilterState{CreditsMin: &min}},
		{"degree", models.FilterState{IsDegree: &degree}},
	}
	for _, tc := range cases {
		query := catalog.BuildQuery(tc.filters)
		if _, ok := query.(catalog.FilterQuery); !ok {
			t.Errorf("BuildQuery(%s) = %T, want FilterQuery", tc.name, query)
		}
	}
}

func TestFilterQuery_RepeatedListParameters(t *testing.T) {
	query := catalog.FilterQuery{
		Providers: []string{"KTH", "Chalmers"},
		Regions:   []string{"01", "14"},
	}

	path, values := query.Endpoint()
	if path != "/educations/search/filter" {
		t.Errorf("path = %q, want /educations/search/filter", path)
	}
	if got := values["provider"]; len(got) != 2 || got[0] != "KTH" || got[1] != "Chalmers" {
		t.Errorf("provider values = %v, want [KTH Chalmers]", got)
	}
	if got := values["regionCode"]; len(got) != 2 {
		t.Errorf("regionCode values = %v, want two entries", got)
	}
}

func TestFilterQuery_DateBoundsOnlySerializeAsPair(t *testing.T) {
	_, values := catalog.FilterQuery{StartFrom: "2026-01-01"}.Endpoint()
	if values.Has("startDateFrom") || values.Has("startDateTo") {
		t.Error("lone startDateFrom should not serialize")
	}

	_, values = catalog.FilterQuery{StartFrom: "2026-01-01", StartTo: "2026-06-30"}.Endpoint()
	if values.Get("startDateFrom") != "2026-01-01" || values.Get("startDateTo") != "2026-06-30" {
		t.Errorf("date pair not serialized, got %v", values)
	}
}

func TestFilterQuery_UnsetDimensionsAbsent(t *testing.T) {
	_, values := catalog.FilterQuery{Text: "juridik"}.Endpoint()
	for _, name := range []string{"provider", "regionCode", "content", "educationLevel", "formCode", "formType", "creditsMin", "creditsMax", "paceOfStudyMin", "paceOfStudyMax", "isDegree"} {
		if values.Has(name) {
			t.Errorf("unset dimension %q serialized as %q", name, values.Get(name))
		}
	}
}

func TestPagingDefaults(t *testing.T) {
	_, values := catalog.AllQuery{Page: -3, Size: 0}.Endpoint()
	if values.Get("page") != "0" {
		t.Errorf("page = %q, want 0", values.Get("page"))
	}
	if values.Get("size") != "20" {
		t.Errorf("size = %q, want 20", values.Get("size"))
	}
}

func TestProviderQuery_EscapesName(t *testing.T) {
	path, _ := catalog.ProviderQuery{Name: "Lunds universitet"}.Endpoint()
	if path != "/educations/provider/Lunds%20universitet" {
		t.Errorf("path = %q", path)
	}
}

func TestBuildURL(t *testing.T) {
	target, err := catalog.BuildURL("https://api.example.se/catalog/", catalog.ProviderQuery{Name: "Lunds universitet", Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("BuildURL returned error: %v", err)
	}
	if !strings.HasPrefix(target, "https://api.example.se/catalog/educations/provider/Lunds%20universitet?") {
		t.Errorf("target = %q", target)
	}

	parsed, err := url.Parse(target)
	if err != nil {
		t.Fatalf("built URL does not parse: %v", err)
	}
	if parsed.Query().Get("page") != "1" || parsed.Query().Get("size") != "10" {
		t.Errorf("paging not serialized, got %q", parsed.RawQuery)
	}
}

func TestSearchQuery_ProviderScope(t *testing.T) {
	path, values := catalog.SearchQuery{Text: "data", ProviderTitle: "KTH"}.Endpoint()
	if path != "/educations/search" {
		t.Errorf("path = %q", path)
	}
	if values.Get("query") != "data" || values.Get("providerTitle") != "KTH" {
		t.Errorf("values = %v", values)
	}
}
