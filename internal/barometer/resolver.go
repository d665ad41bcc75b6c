package barometer

import (
	"context"
	"sort"

	"karriarsparet-gateway/internal/logging"
	"karriarsparet-gateway/pkg/models"
)

// RowFetcher is the slice of the catalog client the resolver needs
type RowFetcher interface {
	BarometerRows(ctx context.Context, ssyk string) ([]models.BarometerRow, error)
}

// Resolver turns an education's ranked occupation matches into a labor-market
// forecast by probing the barometer one candidate at a time
type Resolver struct {
	fetcher       RowFetcher
	maxCandidates int
	logger        logging.Logger
}

// NewResolver creates a resolver probing at most maxCandidates matches
func NewResolver(fetcher RowFetcher, maxCandidates int) *Resolver {
	if maxCandidates <= 0 {
		maxCandidates = 8
	}
	return &Resolver{
		fetcher:       fetcher,
		maxCandidates: maxCandidates,
		logger:        logging.GetGlobalLogger(),
	}
}

// Resolve probes the barometer for each candidate SSYK in rank order and
// returns the forecast of the first one with usable regional demand data.
// Probing stops at the first acceptance: later candidates are never fetched.
// When no candidate is accepted the forecast is empty; the error is the last
// fetch failure, or nil when every probe simply came back without regional
// demand.
func (r *Resolver) Resolve(ctx context.Context, matches []models.OccupationMatch) (models.MarketForecast, error) {
	candidates := rankCandidates(matches, r.maxCandidates)

	var lastErr error
	for _, ssyk := range candidates {
		rows, err := r.fetcher.BarometerRows(ctx, ssyk)
		if err != nil {
			if ctx.Err() != nil {
				return models.MarketForecast{}, ctx.Err()
			}
			r.logger.Warn("Barometer probe failed", map[string]interface{}{
				"ssyk":  ssyk,
				"error": err.Error(),
			})
			lastErr = err
			continue
		}

		forecast := Aggregate(ssyk, rows)
		if len(forecast.Regional) > 0 {
			r.logger.Debug("Barometer candidate accepted", map[string]interface{}{
				"ssyk":          ssyk,
				"regional_rows": len(forecast.Regional),
			})
			return forecast, nil
		}
	}

	return models.MarketForecast{}, lastErr
}

// rankCandidates orders the SSYK codes by descending match score, drops
// duplicates keeping the best-ranked occurrence, and caps the list
func rankCandidates(matches []models.OccupationMatch, limit int) []string {
	sorted := make([]models.OccupationMatch, 0, len(matches))
	for _, m := range matches {
		if m.SSYK != "" {
			sorted = append(sorted, m)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	seen := make(map[string]struct{}, len(sorted))
	candidates := make([]string, 0, len(sorted))
	for _, m := range sorted {
		if _, dup := seen[m.SSYK]; dup {
			continue
		}
		seen[m.SSYK] = struct{}{}
		candidates = append(candidates, m.SSYK)
		if len(candidates) == limit {
			break
		}
	}
	return candidates
}

// Aggregate partitions barometer rows into the national row and the regional
// set, and builds the per-region demand map. A candidate counts as accepted
// only when the regional partition holds at least one row with demand data;
// rows without demand are kept for display but do not qualify the candidate.
func Aggregate(ssyk string, rows []models.BarometerRow) models.MarketForecast {
	forecast := models.MarketForecast{
		DemandByRegion: make(map[string]models.RegionOutlook),
	}

	accepted := false
	for i := range rows {
		row := rows[i]
		if row.Region == models.NationalRegionCode {
			national := row
			forecast.National = &national
			continue
		}

		if row.HasDemand() {
			accepted = true
		}

		current, exists := forecast.DemandByRegion[row.Region]
		if !exists || row.HasDemand() || current.Demand == "" {
			forecast.DemandByRegion[row.Region] = models.RegionOutlook{
				Demand:   row.Demand,
				Forecast: row.Forecast,
			}
		}
	}

	if !accepted {
		return models.MarketForecast{}
	}

	forecast.SelectedSSYK = ssyk
	for i := range rows {
		if rows[i].Region != models.NationalRegionCode {
			forecast.Regional = append(forecast.Regional, rows[i])
		}
	}
	return forecast
}
