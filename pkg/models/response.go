package models

import "time"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// ForecastResponse represents the market forecast for one education's best
// occupation match
type ForecastResponse struct {
	EducationID   string           `json:"educationId"`
	SelectedMatch *OccupationMatch `json:"selectedMatch,omitempty"`
	Forecast      MarketForecast   `json:"forecast"`
	RequestID     string           `json:"request_id"`
}

// FiltersResponse represents a loaded filter snapshot
type FiltersResponse struct {
	SessionID string      `json:"sessionId"`
	Filters   FilterState `json:"filters"`
}
