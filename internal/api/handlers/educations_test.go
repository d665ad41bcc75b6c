package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"karriarsparet-gateway/internal/catalog"
	"karriarsparet-gateway/internal/codes"
	"karriarsparet-gateway/internal/config"
)

func newContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest("GET", target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestBindFilters_RepeatedParams(t *testing.T) {
	c := newContext("/api/v1/educations?provider=KTH&provider=Chalmers&regionCode=01&regionCode=14")

	filters := bindFilters(c, 20)
	if len(filters.Providers) != 2 || filters.Providers[1] != "Chalmers" {
		t.Errorf("Providers = %v", filters.Providers)
	}
	if len(filters.Regions) != 2 {
		t.Errorf("Regions = %v", filters.Regions)
	}
}

func TestBindFilters_NumericAndBool(t *testing.T) {
	c := newContext("/api/v1/educations?creditsMin=30&paceOfStudyMax=100&isDegree=true&page=2&size=50")

	filters := bindFilters(c, 20)
	if filters.CreditsMin == nil || *filters.CreditsMin != 30 {
		t.Errorf("CreditsMin = %v", filters.CreditsMin)
	}
	if filters.PaceMax == nil || *filters.PaceMax != 100 {
		t.Errorf("PaceMax = %v", filters.PaceMax)
	}
	if filters.IsDegree == nil || !*filters.IsDegree {
		t.Errorf("IsDegree = %v", filters.IsDegree)
	}
	if filters.Page != 2 || filters.Size != 50 {
		t.Errorf("paging = %d/%d", filters.Page, filters.Size)
	}
}

func TestBindFilters_MalformedValuesIgnored(t *testing.T) {
	c := newContext("/api/v1/educations?creditsMin=trettio&isDegree=kanske&page=x")

	filters := bindFilters(c, 20)
	if filters.CreditsMin != nil || filters.IsDegree != nil {
		t.Errorf("malformed values should be ignored: %+v", filters)
	}
	if filters.Page != 0 {
		t.Errorf("Page = %d, want 0", filters.Page)
	}
}

func TestBindFilters_TrimsQuery(t *testing.T) {
	c := newContext("/api/v1/educations?query=%20%20juridik%20%20")

	filters := bindFilters(c, 20)
	if filters.Query != "juridik" {
		t.Errorf("Query = %q", filters.Query)
	}
}

func TestBindFilters_ConfiguredSizeDefault(t *testing.T) {
	c := newContext("/api/v1/educations")

	filters := bindFilters(c, 35)
	if filters.Size != 35 {
		t.Errorf("Size = %d, want configured default 35", filters.Size)
	}
	// An explicit size still wins.
	filters = bindFilters(newContext("/api/v1/educations?size=5"), 35)
	if filters.Size != 5 {
		t.Errorf("Size = %d, want explicit 5", filters.Size)
	}
}

func TestListEducations_CanceledRequestWritesNothing(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer upstream.Close()

	cfg := &config.Config{}
	cfg.Catalog.BaseURL = upstream.URL
	cfg.Catalog.RequestTimeout = time.Second
	cfg.Catalog.DefaultPageSize = 20
	client := catalog.NewClient(cfg)
	detailer := catalog.NewDetailer(
		codes.NewRegionResolver(codes.RegionTable),
		codes.NewMunicipalityResolver(codes.MunicipalityTable),
		8,
	)

	e := echo.New()
	req := httptest.NewRequest("GET", "/api/v1/educations", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := ListEducationsHandler(cfg, client, detailer)(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	// The client already went away: no body, no error status.
	if rec.Body.Len() != 0 {
		t.Errorf("cancelled request wrote a body: %s", rec.Body.String())
	}
	if rec.Code == http.StatusBadGateway {
		t.Errorf("cancelled request answered with 502")
	}
}

func TestForecast_CanceledRequestWritesNothing(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer upstream.Close()

	cfg := &config.Config{}
	cfg.Catalog.BaseURL = upstream.URL
	cfg.Catalog.RequestTimeout = time.Second
	client := catalog.NewClient(cfg)

	e := echo.New()
	req := httptest.NewRequest("GET", "/api/v1/educations/e1/forecast", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("e1")

	if err := ForecastHandler(client, nil)(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("cancelled request wrote a body: %s", rec.Body.String())
	}
}
