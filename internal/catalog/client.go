package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"karriarsparet-gateway/internal/config"
	"karriarsparet-gateway/internal/logging"
	"karriarsparet-gateway/pkg/models"
)

// StatusError represents a non-2xx response from the upstream service
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("catalog: upstream returned %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("catalog: upstream returned %s", e.Status)
}

// Client talks to the upstream education-listings service. The base URL and
// timeouts are injected through config; there is no process-wide endpoint
// state.
type Client struct {
	baseURL           string
	httpClient        *http.Client
	providerPageSize  int
	barometerPageSize int
	logger            logging.Logger
}

// NewClient creates an upstream catalog client from configuration
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:           strings.TrimSuffix(cfg.Catalog.BaseURL, "/"),
		httpClient:        &http.Client{Timeout: cfg.Catalog.RequestTimeout},
		providerPageSize:  cfg.Catalog.ProviderPageSize,
		barometerPageSize: cfg.Barometer.PageSize,
		logger:            logging.GetGlobalLogger(),
	}
}

// FetchEducations runs a query and normalizes the paginated response
func (c *Client) FetchEducations(ctx context.Context, query Query) (Page[models.EducationRecord], error) {
	target, err := BuildURL(c.baseURL, query)
	if err != nil {
		return Page[models.EducationRecord]{}, err
	}

	var envelope Envelope[models.EducationRecord]
	if err := c.getJSON(ctx, target, &envelope); err != nil {
		return Page[models.EducationRecord]{}, err
	}
	return NormalizePage(envelope), nil
}

// Education fetches a single education record by id
func (c *Client) Education(ctx context.Context, id string) (*models.EducationRecord, error) {
	var record models.EducationRecord
	if err := c.getJSON(ctx, c.baseURL+"/educations/"+url.PathEscape(id), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Regions fetches the upstream region list
func (c *Client) Regions(ctx context.Context) ([]models.Region, error) {
	var regions []models.Region
	if err := c.getJSON(ctx, c.baseURL+"/educations/regions", &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

// Providers fetches a page of education providers
func (c *Client) Providers(ctx context.Context, page int) (Page[models.EducationProvider], error) {
	values := pagingValues(page, c.providerPageSize)
	target := c.baseURL + "/education-providers?" + values.Encode()

	var envelope Envelope[models.EducationProvider]
	if err := c.getJSON(ctx, target, &envelope); err != nil {
		return Page[models.EducationProvider]{}, err
	}
	return NormalizePage(envelope), nil
}

// OccupationMatches fetches the ranked occupation matches for an education
func (c *Client) OccupationMatches(ctx context.Context, id string) ([]models.OccupationMatch, error) {
	var matches []models.OccupationMatch
	target := c.baseURL + "/educations/" + url.PathEscape(id) + "/occupation-matches"
	if err := c.getJSON(ctx, target, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// BarometerRows fetches the labor-market forecast rows for one SSYK code.
// Depending on upstream version the payload is either a bare array or a
// {content: [...]} wrapper; both are accepted.
func (c *Client) BarometerRows(ctx context.Context, ssyk string) ([]models.BarometerRow, error) {
	values := url.Values{}
	values.Set("ssyk", ssyk)
	values.Set("page", "0")
	values.Set("size", strconv.Itoa(c.barometerPageSize))
	target := c.baseURL + "/occupation-barometer/search?" + values.Encode()

	var payload json.RawMessage
	if err := c.getJSON(ctx, target, &payload); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var rows []models.BarometerRow
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, fmt.Errorf("catalog: decode barometer rows: %w", err)
		}
		return rows, nil
	}

	var wrapper struct {
		Content []models.BarometerRow `json:"content"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, fmt.Errorf("catalog: decode barometer rows: %w", err)
	}
	return wrapper.Content, nil
}

// EventSummary fetches the application-oriented event record for an education
func (c *Client) EventSummary(ctx context.Context, id string) (*models.EventSummary, error) {
	var summary models.EventSummary
	target := c.baseURL + "/education-events/" + url.PathEscape(id)
	if err := c.getJSON(ctx, target, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Healthy probes the upstream service for readiness checks
func (c *Client) Healthy(ctx context.Context) error {
	var regions []models.Region
	return c.getJSON(ctx, c.baseURL+"/educations/regions", &regions)
}

// getJSON performs a GET against target and decodes the JSON response.
// Non-2xx statuses surface as StatusError; decode failures surface as errors
// and are never coerced to empty data.
func (c *Client) getJSON(ctx context.Context, target string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{
			Code:   resp.StatusCode,
			Status: resp.Status,
			Body:   strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("catalog: decode response: %w", err)
	}
	return nil
}
