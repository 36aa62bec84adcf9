package flightapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	apperrors "flywise-backend/internal/errors"
	"flywise-backend/internal/models"
	"flywise-backend/pkg/logger"
	"flywise-backend/pkg/metrics"
)

const trackingEndpoint = "airline"

// TrackFlight looks up live status for one flight by carrier name, flight
// number and date. The vendor answers with either a single object or a list;
// both decode to a list here.
func (c *Client) TrackFlight(ctx context.Context, num, name, date string) ([]models.RawFlightStatus, error) {
	params := url.Values{}
	params.Set("num", num)
	params.Set("name", name)
	params.Set("date", date)
	trackURL := c.baseURL + trackingEndpoint + "/" + c.apiKey + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, nil)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to create tracking request: error=%v", err)
		return nil, fmt.Errorf("failed to create tracking request: %v", err)
	}

	logger.GlobalLogger.Debugf("Fetching flight tracking: num=%s, name=%s, date=%s", num, name, date)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(vendorName, trackingEndpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(vendorName, trackingEndpoint, "error").Inc()
		logger.GlobalLogger.Errorf("Tracking request failed: num=%s, error=%v", num, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, apperrors.NewUpstreamError(http.StatusBadGateway, "flight API unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(vendorName, trackingEndpoint, "error").Inc()
		logger.GlobalLogger.Errorf("Failed to read tracking response: status=%s, error=%v", resp.Status, err)
		return nil, fmt.Errorf("failed to read tracking response: %v", err)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(vendorName, trackingEndpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.GlobalLogger.Errorf("Tracking failed: num=%s, status=%s, response=%s", num, resp.Status, string(body))
		return nil, apperrors.NewUpstreamError(resp.StatusCode, string(body))
	}

	return decodeTrackingBody(body)
}

func decodeTrackingBody(body []byte) ([]models.RawFlightStatus, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []models.RawFlightStatus
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("failed to decode tracking response: %v", err)
		}
		return list, nil
	}

	var single models.RawFlightStatus
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, fmt.Errorf("failed to decode tracking response: %v", err)
	}
	return []models.RawFlightStatus{single}, nil
}
