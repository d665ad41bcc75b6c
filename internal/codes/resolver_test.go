package codes_test

import (
	"testing"

	"karriarsparet-gateway/internal/codes"
)

func TestNormalizeRegionCode(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"01", "01"},
		{"1", "01"},
		{" 1 ", "01"},
		{"SE-01", "01"},
		{"012", "01"},
		{"abc", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := codes.NormalizeRegionCode(tc.in); got != tc.want {
			t.Errorf("NormalizeRegionCode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeMunicipalityCode(t *testing.T) {
	if got := codes.NormalizeMunicipalityCode("380"); got != "0380" {
		t.Errorf("NormalizeMunicipalityCode(380) = %q, want 0380", got)
	}
	if got := codes.NormalizeMunicipalityCode("03801"); got != "0380" {
		t.Errorf("NormalizeMunicipalityCode(03801) = %q, want 0380", got)
	}
}

func TestResolverName(t *testing.T) {
	resolver := codes.NewRegionResolver(codes.RegionTable)

	if got := resolver.Name("1"); got != "Stockholms län" {
		t.Errorf("Name(1) = %q", got)
	}
	// Unknown codes pass through unchanged.
	if got := resolver.Name("99"); got != "99" {
		t.Errorf("Name(99) = %q, want 99", got)
	}
	// Identity fallback also covers codes without a single digit.
	if got := resolver.Name("abc"); got != "abc" {
		t.Errorf("Name(abc) = %q, want abc", got)
	}
	if got := resolver.Name(""); got != "" {
		t.Errorf("Name(\"\") = %q, want empty", got)
	}
}

func TestResolverNames_DropsEmpties(t *testing.T) {
	resolver := codes.NewRegionResolver(codes.RegionTable)

	names := resolver.Names([]string{"01", "", "25"})
	if len(names) != 2 || names[0] != "Stockholms län" || names[1] != "Norrbottens län" {
		t.Errorf("Names = %v", names)
	}
	if resolver.Names(nil) != nil {
		t.Error("Names(nil) should be nil")
	}
}

func TestResolverNames_KeepsUnknownCodes(t *testing.T) {
	resolver := codes.NewRegionResolver(codes.RegionTable)

	names := resolver.Names([]string{"01", "abc"})
	if len(names) != 2 || names[1] != "abc" {
		t.Errorf("Names = %v, unknown codes must pass through", names)
	}
}

func TestResolverJoinedNames(t *testing.T) {
	resolver := codes.NewRegionResolver(codes.RegionTable)

	joined := resolver.JoinedNames([]string{"01", "12"})
	if joined != "Stockholms län, Skåne län" {
		t.Errorf("JoinedNames = %q", joined)
	}
}

func TestResolverOptions_SortedByName(t *testing.T) {
	resolver := codes.NewRegionResolver(codes.RegionTable)

	options := resolver.Options()
	if len(options) != len(codes.RegionTable) {
		t.Fatalf("len = %d, want %d", len(options), len(codes.RegionTable))
	}
	for i := 1; i < len(options); i++ {
		if options[i-1].Name > options[i].Name {
			t.Fatalf("options not sorted at %d: %q > %q", i, options[i-1].Name, options[i].Name)
		}
	}
}

func TestResolverCopiesTable(t *testing.T) {
	table := map[string]string{"01": "A"}
	resolver := codes.NewRegionResolver(table)
	table["01"] = "mutated"

	if got := resolver.Name("01"); got != "A" {
		t.Errorf("Name(01) = %q, resolver saw table mutation", got)
	}
}
