package barometer_test

import (
	"context"
	"errors"
	"testing"

	"karriarsparet-gateway/internal/barometer"
	"karriarsparet-gateway/pkg/models"
)

type fakeFetcher struct {
	rows   map[string][]models.BarometerRow
	errs   map[string]error
	probed []string
}

func (f *fakeFetcher) BarometerRows(ctx context.Context, ssyk string) ([]models.BarometerRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.probed = append(f.probed, ssyk)
	if err := f.errs[ssyk]; err != nil {
		return nil, err
	}
	return f.rows[ssyk], nil
}

func regionalRow(ssyk, region, demand string) models.BarometerRow {
	return models.BarometerRow{SSYK: ssyk, Region: region, Demand: demand}
}

func TestResolve_FirstCandidateWithDemandWins(t *testing.T) {
	fetcher := &fakeFetcher{rows: map[string][]models.BarometerRow{
		"1111": {regionalRow("1111", "01", "")},
		"2222": {regionalRow("2222", "01", "stora")},
		"3333": {regionalRow("3333", "01", "stora")},
	}}
	resolver := barometer.NewResolver(fetcher, 8)

	matches := []models.OccupationMatch{
		{SSYK: "1111", Score: 0.9},
		{SSYK: "2222", Score: 0.8},
		{SSYK: "3333", Score: 0.7},
	}

	forecast, err := resolver.Resolve(context.Background(), matches)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if forecast.SelectedSSYK != "2222" {
		t.Errorf("SelectedSSYK = %q, want 2222", forecast.SelectedSSYK)
	}
	// The third candidate must never be probed once the second is accepted.
	if len(fetcher.probed) != 2 || fetcher.probed[0] != "1111" || fetcher.probed[1] != "2222" {
		t.Errorf("probed = %v, want [1111 2222]", fetcher.probed)
	}
}

func TestResolve_RankOrderAndDedupe(t *testing.T) {
	fetcher := &fakeFetcher{rows: map[string][]models.BarometerRow{}}
	resolver := barometer.NewResolver(fetcher, 2)

	matches := []models.OccupationMatch{
		{SSYK: "1111", Score: 0.2},
		{SSYK: "2222", Score: 0.9},
		{SSYK: "2222", Score: 0.5},
		{SSYK: "3333", Score: 0.7},
	}

	_, err := resolver.Resolve(context.Background(), matches)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	// Best score first, duplicate dropped, capped at two.
	if len(fetcher.probed) != 2 || fetcher.probed[0] != "2222" || fetcher.probed[1] != "3333" {
		t.Errorf("probed = %v, want [2222 3333]", fetcher.probed)
	}
}

func TestResolve_NationalOnlyRowsDoNotQualify(t *testing.T) {
	fetcher := &fakeFetcher{rows: map[string][]models.BarometerRow{
		"1111": {regionalRow("1111", models.NationalRegionCode, "stora")},
	}}
	resolver := barometer.NewResolver(fetcher, 8)

	forecast, err := resolver.Resolve(context.Background(), []models.OccupationMatch{{SSYK: "1111", Score: 1}})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !forecast.Empty() {
		t.Errorf("forecast should be empty, got %+v", forecast)
	}
}

func TestResolve_LastErrorSurfacesWhenNothingAccepted(t *testing.T) {
	firstErr := errors.New("first probe failed")
	lastErr := errors.New("second probe failed")
	fetcher := &fakeFetcher{errs: map[string]error{"1111": firstErr, "2222": lastErr}}
	resolver := barometer.NewResolver(fetcher, 8)

	matches := []models.OccupationMatch{
		{SSYK: "1111", Score: 0.9},
		{SSYK: "2222", Score: 0.8},
	}

	forecast, err := resolver.Resolve(context.Background(), matches)
	if !errors.Is(err, lastErr) {
		t.Errorf("err = %v, want last probe error", err)
	}
	if !forecast.Empty() {
		t.Errorf("forecast should be empty, got %+v", forecast)
	}
}

func TestResolve_ErrorSwallowedOnLaterAcceptance(t *testing.T) {
	fetcher := &fakeFetcher{
		errs: map[string]error{"1111": errors.New("boom")},
		rows: map[string][]models.BarometerRow{
			"2222": {regionalRow("2222", "01", "stora")},
		},
	}
	resolver := barometer.NewResolver(fetcher, 8)

	matches := []models.OccupationMatch{
		{SSYK: "1111", Score: 0.9},
		{SSYK: "2222", Score: 0.8},
	}

	forecast, err := resolver.Resolve(context.Background(), matches)
	if err != nil {
		t.Errorf("err = %v, want nil once a later candidate is accepted", err)
	}
	if forecast.SelectedSSYK != "2222" {
		t.Errorf("SelectedSSYK = %q", forecast.SelectedSSYK)
	}
}

func TestResolve_ContextCancellation(t *testing.T) {
	fetcher := &fakeFetcher{}
	resolver := barometer.NewResolver(fetcher, 8)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := resolver.Resolve(ctx, []models.OccupationMatch{{SSYK: "1111", Score: 1}})
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestAggregate_PartitionsNationalAndRegional(t *testing.T) {
	rows := []models.BarometerRow{
		{SSYK: "2223", Region: "00", Demand: "stora", Forecast: "ökande"},
		{SSYK: "2223", Region: "01", Demand: "stora"},
		{SSYK: "2223", Region: "14", Demand: ""},
	}

	forecast := barometer.Aggregate("2223", rows)
	if forecast.Empty() {
		t.Fatal("forecast should not be empty")
	}
	if forecast.National == nil || forecast.National.Forecast != "ökande" {
		t.Errorf("National = %+v", forecast.National)
	}
	if len(forecast.Regional) != 2 {
		t.Errorf("Regional = %+v", forecast.Regional)
	}
	if forecast.DemandByRegion["01"].Demand != "stora" {
		t.Errorf("DemandByRegion = %+v", forecast.DemandByRegion)
	}
}

func TestAggregate_LastNationalRowWins(t *testing.T) {
	rows := []models.BarometerRow{
		{Region: "00", Demand: "små"},
		{Region: "01", Demand: "stora"},
		{Region: "00", Demand: "stora"},
	}

	forecast := barometer.Aggregate("2223", rows)
	if forecast.National == nil || forecast.National.Demand != "stora" {
		t.Errorf("National = %+v", forecast.National)
	}
}

func TestAggregate_DemandRowBeatsEmptyRow(t *testing.T) {
	rows := []models.BarometerRow{
		{Region: "01", Demand: ""},
		{Region: "01", Demand: "stora"},
		{Region: "12", Demand: "medelstora"},
		{Region: "12", Demand: ""},
	}

	forecast := barometer.Aggregate("2223", rows)
	if forecast.DemandByRegion["01"].Demand != "stora" {
		t.Errorf("region 01 = %+v, demand row should beat the empty one", forecast.DemandByRegion["01"])
	}
	if forecast.DemandByRegion["12"].Demand != "medelstora" {
		t.Errorf("region 12 = %+v, empty row should not displace demand", forecast.DemandByRegion["12"])
	}
}

func TestAggregate_NoRegionalDemandIsEmpty(t *testing.T) {
	rows := []models.BarometerRow{
		{Region: "00", Demand: "stora"},
		{Region: "01", Demand: ""},
	}

	forecast := barometer.Aggregate("2223", rows)
	if !forecast.Empty() {
		t.Errorf("forecast = %+v, want empty", forecast)
	}
}
