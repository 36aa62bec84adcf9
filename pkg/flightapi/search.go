package flightapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "flywise-backend/internal/errors"
	"flywise-backend/internal/models"
	"flywise-backend/pkg/logger"
	"flywise-backend/pkg/metrics"
)

const (
	roundTripEndpoint = "roundtrip"
	oneWayEndpoint    = "onewaytrip"
)

// SearchRoundTrip fetches round-trip itineraries for the given query.
func (c *Client) SearchRoundTrip(ctx context.Context, q *models.FlightSearchQuery) (*models.SearchResponse, error) {
	segments := []string{
		q.DepartureAirportCode,
		q.ArrivalAirportCode,
		q.DepartureDate,
		q.ArrivalDate,
		q.Adults,
		q.Children,
		q.Infants,
		q.CabinClass,
		q.Currency,
	}
	return c.search(ctx, roundTripEndpoint, segments)
}

// SearchOneWay fetches one-way itineraries for the given query.
func (c *Client) SearchOneWay(ctx context.Context, q *models.FlightSearchQuery) (*models.SearchResponse, error) {
	segments := []string{
		q.DepartureAirportCode,
		q.ArrivalAirportCode,
		q.DepartureDate,
		q.Adults,
		q.Children,
		q.Infants,
		q.CabinClass,
		q.Currency,
	}
	return c.search(ctx, oneWayEndpoint, segments)
}

func (c *Client) search(ctx context.Context, endpoint string, segments []string) (*models.SearchResponse, error) {
	parts := make([]string, 0, len(segments)+2)
	parts = append(parts, endpoint, c.apiKey)
	for _, s := range segments {
		parts = append(parts, url.PathEscape(s))
	}
	searchURL := c.baseURL + strings.Join(parts, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to create flight search request: endpoint=%s, error=%v", endpoint, err)
		return nil, fmt.Errorf("failed to create flight search request: %v", err)
	}

	logger.GlobalLogger.Debugf("Fetching flight search: endpoint=%s", endpoint)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(vendorName, endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(vendorName, endpoint, "error").Inc()
		logger.GlobalLogger.Errorf("Flight search request failed: endpoint=%s, error=%v", endpoint, err)
		// Context cancellation means the caller went away; do not dress it up
		// as a vendor failure.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, apperrors.NewUpstreamError(http.StatusBadGateway, "flight API unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(vendorName, endpoint, "error").Inc()
		logger.GlobalLogger.Errorf("Failed to read flight search response: endpoint=%s, status=%s, error=%v", endpoint, resp.Status, err)
		return nil, fmt.Errorf("failed to read flight search response: %v", err)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(vendorName, endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.GlobalLogger.Errorf("Flight search failed: endpoint=%s, status=%s, response=%s", endpoint, resp.Status, string(body))
		return nil, apperrors.NewUpstreamError(resp.StatusCode, string(body))
	}

	var searchResp models.SearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		logger.GlobalLogger.Errorf("Failed to decode flight search response: endpoint=%s, error=%v", endpoint, err)
		return nil, fmt.Errorf("failed to decode flight search response: %v", err)
	}
	return &searchResp, nil
}
