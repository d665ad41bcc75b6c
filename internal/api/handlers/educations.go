package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"karriarsparet-gateway/internal/barometer"
	"karriarsparet-gateway/internal/catalog"
	"karriarsparet-gateway/internal/config"
	"karriarsparet-gateway/internal/logging"
	"karriarsparet-gateway/pkg/models"
	"karriarsparet-gateway/pkg/utils"
)

// ListEducationsHandler serves the paginated browse list. All filter
// dimensions arrive as query parameters; multi-value dimensions repeat the
// parameter (provider=A&provider=B).
func ListEducationsHandler(cfg *config.Config, client *catalog.Client, detailer *catalog.Detailer) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		filters := bindFilters(c, cfg.Catalog.DefaultPageSize)
		query := catalog.BuildQuery(filters)

		page, err := client.FetchEducations(c.Request().Context(), query)
		if err != nil {
			if requestCanceled(c) {
				return nil
			}
			logger.Error("Education list fetch failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return upstreamError(c, requestID, err)
		}

		logger.Debug("Education list served", map[string]interface{}{
			"request_id": requestID,
			"page":       page.Number,
			"results":    page.NumberOfElements,
		})

		return c.JSON(http.StatusOK, catalog.MapPage(page, detailer.Summarize))
	}
}

// EducationDetailHandler serves the merged detail view for one education
func EducationDetailHandler(client *catalog.Client, detailer *catalog.Detailer) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		ctx := c.Request().Context()
		id := c.Param("id")

		record, err := client.Education(ctx, id)
		if err != nil {
			if requestCanceled(c) {
				return nil
			}
			if isUpstreamNotFound(err) {
				return c.JSON(http.StatusNotFound, models.ErrorResponse{
					Error:     "not_found",
					Message:   "Education not found",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			logger.Error("Education fetch failed", map[string]interface{}{
				"request_id":   requestID,
				"education_id": id,
				"error":        err.Error(),
			})
			return upstreamError(c, requestID, err)
		}

		// The event summary and occupation matches enrich the detail view but
		// never block it
		event, err := client.EventSummary(ctx, id)
		if err != nil {
			if requestCanceled(c) {
				return nil
			}
			logger.Warn("Event summary unavailable", map[string]interface{}{
				"request_id":   requestID,
				"education_id": id,
				"error":        err.Error(),
			})
			event = nil
		}
		matches, err := client.OccupationMatches(ctx, id)
		if err != nil {
			if requestCanceled(c) {
				return nil
			}
			logger.Warn("Occupation matches unavailable", map[string]interface{}{
				"request_id":   requestID,
				"education_id": id,
				"error":        err.Error(),
			})
			matches = nil
		}

		return c.JSON(http.StatusOK, detailer.BuildDetail(record, event, matches))
	}
}

// ForecastHandler resolves an education's occupation matches against the
// labor-market barometer
func ForecastHandler(client *catalog.Client, resolver *barometer.Resolver) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		ctx := c.Request().Context()
		id := c.Param("id")

		matches, err := client.OccupationMatches(ctx, id)
		if err != nil {
			if requestCanceled(c) {
				return nil
			}
			logger.Error("Occupation match fetch failed", map[string]interface{}{
				"request_id":   requestID,
				"education_id": id,
				"error":        err.Error(),
			})
			return upstreamError(c, requestID, err)
		}

		forecast, err := resolver.Resolve(ctx, matches)
		if err != nil && forecast.Empty() {
			if requestCanceled(c) {
				return nil
			}
			logger.Error("Forecast resolution failed", map[string]interface{}{
				"request_id":   requestID,
				"education_id": id,
				"error":        err.Error(),
			})
			return upstreamError(c, requestID, err)
		}

		response := models.ForecastResponse{
			EducationID: id,
			Forecast:    forecast,
			RequestID:   requestID,
		}
		for i := range matches {
			if matches[i].SSYK == forecast.SelectedSSYK {
				response.SelectedMatch = &matches[i]
				break
			}
		}

		return c.JSON(http.StatusOK, response)
	}
}

// bindFilters reads the browse filter parameters off the query string. Every
// parameter is optional; malformed numbers and booleans are ignored rather
// than rejected.
func bindFilters(c echo.Context, defaultSize int) models.FilterState {
	params := c.QueryParams()

	filters := models.FilterState{
		Query:       strings.TrimSpace(c.QueryParam("query")),
		Providers:   params["provider"],
		Regions:     params["regionCode"],
		Levels:      params["educationLevel"],
		FormCodes:   params["formCode"],
		ContentTags: params["content"],
		StartFrom:   c.QueryParam("startDateFrom"),
		StartTo:     c.QueryParam("startDateTo"),
		CreditsMin:  queryFloat(c, "creditsMin"),
		CreditsMax:  queryFloat(c, "creditsMax"),
		PaceMin:     queryFloat(c, "paceOfStudyMin"),
		PaceMax:     queryFloat(c, "paceOfStudyMax"),
		IsDegree:    queryBool(c, "isDegree"),
		Page:        queryInt(c, "page", 0),
		Size:        queryInt(c, "size", defaultSize),
	}
	return filters
}

func queryFloat(c echo.Context, name string) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryBool(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// requestCanceled reports whether the client went away. A cancelled request
// gets no response body and no error logging; the failure is the client's own.
func requestCanceled(c echo.Context) bool {
	return c.Request().Context().Err() != nil
}

func isUpstreamNotFound(err error) bool {
	var statusErr *catalog.StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}

func upstreamError(c echo.Context, requestID string, err error) error {
	return c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Error:     "upstream_error",
		Message:   "Upstream catalog request failed",
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
