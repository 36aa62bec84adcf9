package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"flywise-backend/internal/models"
)

// aqiMeta describes one level of the OpenWeather 1-5 AQI scale.
type aqiMeta struct {
	Label  string
	Color  string
	Advice string
}

var aqiScale = map[int]aqiMeta{
	1: {Label: "Good", Color: "#16a34a", Advice: "Air quality is excellent. Enjoy outdoor plans freely."},
	2: {Label: "Fair", Color: "#84cc16", Advice: "Air quality is acceptable. Sensitive groups can remain cautious."},
	3: {Label: "Moderate", Color: "#facc15", Advice: "Consider shorter outdoor exposure, especially if you have respiratory sensitivities."},
	4: {Label: "Poor", Color: "#f97316", Advice: "Limit prolonged outdoor exertion and keep medication handy."},
	5: {Label: "Very Poor", Color: "#dc2626", Advice: "Stay indoors when possible and use filtration masks outside."},
}

// AQIForecaster is the air-quality vendor surface used by the service.
// Satisfied by *openweather.Client.
type AQIForecaster interface {
	Configured() bool
	ForecastAirPollution(ctx context.Context, lat, lon string) (*models.AQIForecast, error)
}

type HealthService struct {
	client AQIForecaster
}

func NewHealthService(client AQIForecaster) *HealthService {
	return &HealthService{client: client}
}

// Configured reports whether the air-quality vendor is usable.
func (s *HealthService) Configured() bool {
	return s.client.Configured()
}

// Insight fetches the AQI forecast for a coordinate and summarizes the worst
// air quality per day inside the trip window.
func (s *HealthService) Insight(ctx context.Context, lat, lon string, start, end time.Time) (*models.HealthInsight, error) {
	forecast, err := s.client.ForecastAirPollution(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	window := BucketByDay(forecast.List, start, end)

	summary := "No air quality data for this itinerary."
	if len(window) > 0 {
		worst := window[0]
		for _, day := range window[1:] {
			if day.AQI > worst.AQI {
				worst = day
			}
		}
		summary = fmt.Sprintf("Highest AQI reaches %s around %s. %s",
			strings.ToLower(worst.Label), worst.Date, worst.Advice)
	}

	return &models.HealthInsight{
		Window:  window,
		Summary: summary,
	}, nil
}

// BucketByDay keeps, for each calendar day between start and end inclusive,
// the forecast entry with the highest AQI, and returns the days sorted by
// date.
func BucketByDay(entries []models.AQIEntry, start, end time.Time) []models.DailyAirQuality {
	startTs := start.Unix()
	endTs := end.Unix()

	byDate := make(map[string]models.AQIEntry)
	for _, entry := range entries {
		if entry.Dt < startTs || entry.Dt > endTs {
			continue
		}
		date := time.Unix(entry.Dt, 0).UTC().Format("2006-01-02")
		if existing, ok := byDate[date]; !ok || entry.Main.AQI > existing.Main.AQI {
			byDate[date] = entry
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	window := make([]models.DailyAirQuality, 0, len(dates))
	for _, date := range dates {
		entry := byDate[date]
		meta, ok := aqiScale[entry.Main.AQI]
		if !ok {
			meta = aqiScale[3]
		}
		window = append(window, models.DailyAirQuality{
			Date:       date,
			AQI:        entry.Main.AQI,
			Label:      meta.Label,
			Advice:     meta.Advice,
			Color:      meta.Color,
			Components: entry.Components,
		})
	}
	return window
}
