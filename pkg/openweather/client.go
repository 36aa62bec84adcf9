// Package openweather wraps the OpenWeather air-pollution forecast endpoint.
package openweather

import (
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

const (
	vendorName       = "openweather"
	forecastEndpoint = "air_pollution_forecast"
	forecastURL      = "https://api.openweathermap.org/data/2.5/air_pollution/forecast"
)

// Client manages OpenWeather API requests.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: forecastURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// ForecastAirPollution fetches the hourly AQI forecast for a coordinate.
func (c *Client) ForecastAirPollution(ctx context.Context, lat, lon string) (*models.AQIForecast, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("OPENWEATHER_API_KEY is not configured")
	}

	params := url.Values{}
	params.Set("lat", lat)
	params.Set("lon", lon)
	params.Set("appid", c.apiKey)
	forecastURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, forecastURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create AQI forecast request: %v", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(vendorName, forecastEndpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(vendorName, forecastEndpoint, "error").Inc()
		logger.GlobalLogger.Errorf("AQI forecast request failed: lat=%s, lon=%s, error=%v", lat, lon, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, apperrors.NewUpstreamError(http.StatusBadGateway, "air quality API unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(vendorName, forecastEndpoint, "error").Inc()
		return nil, fmt.Errorf("failed to read AQI forecast response: %v", err)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(vendorName, forecastEndpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.GlobalLogger.Errorf("AQI forecast failed: lat=%s, lon=%s, status=%s, response=%s", lat, lon, resp.Status, string(body))
		return nil, apperrors.NewUpstreamError(resp.StatusCode, string(body))
	}

	var forecast models.AQIForecast
	if err := json.Unmarshal(body, &forecast); err != nil {
		return nil, fmt.Errorf("failed to decode AQI forecast response: %v", err)
	}
	return &forecast, nil
}
