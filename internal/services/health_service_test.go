package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"flywise-backend/internal/models"
)

func dayUnix(t *testing.T, value string) int64 {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad fixture timestamp %q: %v", value, err)
	}
	return ts.Unix()
}

func TestBucketByDay_KeepsWorstEntryPerDay(t *testing.T) {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 12, 23, 59, 59, 0, time.UTC)

	entries := []models.AQIEntry{
		{Dt: dayUnix(t, "2026-09-10T06:00:00Z"), Main: models.AQIMain{AQI: 2}},
		{Dt: dayUnix(t, "2026-09-10T15:00:00Z"), Main: models.AQIMain{AQI: 4}, Components: map[string]float64{"pm2_5": 38.2}},
		{Dt: dayUnix(t, "2026-09-10T21:00:00Z"), Main: models.AQIMain{AQI: 1}},
		{Dt: dayUnix(t, "2026-09-11T12:00:00Z"), Main: models.AQIMain{AQI: 3}},
	}

	window := BucketByDay(entries, start, end)

	if len(window) != 2 {
		t.Fatalf("expected 2 days, got %d", len(window))
	}
	first := window[0]
	if first.Date != "2026-09-10" || first.AQI != 4 {
		t.Errorf("expected worst entry kept for 2026-09-10, got %+v", first)
	}
	if first.Label != "Poor" || first.Color != "#f97316" {
		t.Errorf("unexpected scale metadata %+v", first)
	}
	if first.Components["pm2_5"] != 38.2 {
		t.Errorf("expected components carried from the worst entry, got %v", first.Components)
	}
	if window[1].Date != "2026-09-11" || window[1].AQI != 3 {
		t.Errorf("unexpected second day %+v", window[1])
	}
}

func TestBucketByDay_FiltersOutsideWindow(t *testing.T) {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 10, 23, 59, 59, 0, time.UTC)

	entries := []models.AQIEntry{
		{Dt: dayUnix(t, "2026-09-09T23:00:00Z"), Main: models.AQIMain{AQI: 5}},
		{Dt: dayUnix(t, "2026-09-10T12:00:00Z"), Main: models.AQIMain{AQI: 2}},
		{Dt: dayUnix(t, "2026-09-11T00:00:00Z"), Main: models.AQIMain{AQI: 5}},
	}

	window := BucketByDay(entries, start, end)

	if len(window) != 1 {
		t.Fatalf("expected only the in-window day, got %d days", len(window))
	}
	if window[0].Date != "2026-09-10" || window[0].AQI != 2 {
		t.Errorf("unexpected day %+v", window[0])
	}
}

func TestBucketByDay_SortedByDate(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	entries := []models.AQIEntry{
		{Dt: dayUnix(t, "2026-09-12T12:00:00Z"), Main: models.AQIMain{AQI: 2}},
		{Dt: dayUnix(t, "2026-09-10T12:00:00Z"), Main: models.AQIMain{AQI: 2}},
		{Dt: dayUnix(t, "2026-09-11T12:00:00Z"), Main: models.AQIMain{AQI: 2}},
	}

	window := BucketByDay(entries, start, end)

	want := []string{"2026-09-10", "2026-09-11", "2026-09-12"}
	for i, day := range window {
		if day.Date != want[i] {
			t.Errorf("day %d: expected %s, got %s", i, want[i], day.Date)
		}
	}
}

func TestBucketByDay_UnknownAQIFallsBackToModerate(t *testing.T) {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 10, 23, 59, 59, 0, time.UTC)

	entries := []models.AQIEntry{
		{Dt: dayUnix(t, "2026-09-10T12:00:00Z"), Main: models.AQIMain{AQI: 9}},
	}

	window := BucketByDay(entries, start, end)

	if len(window) != 1 {
		t.Fatalf("expected 1 day, got %d", len(window))
	}
	if window[0].Label != "Moderate" {
		t.Errorf("expected moderate fallback label, got %q", window[0].Label)
	}
}

type stubForecaster struct {
	forecast *models.AQIForecast
	err      error
}

func (s *stubForecaster) Configured() bool { return true }

func (s *stubForecaster) ForecastAirPollution(ctx context.Context, lat, lon string) (*models.AQIForecast, error) {
	return s.forecast, s.err
}

func TestInsight_SummaryNamesWorstDay(t *testing.T) {
	forecast := &models.AQIForecast{List: []models.AQIEntry{
		{Dt: dayUnix(t, "2026-09-10T12:00:00Z"), Main: models.AQIMain{AQI: 2}},
		{Dt: dayUnix(t, "2026-09-11T12:00:00Z"), Main: models.AQIMain{AQI: 5}},
	}}
	service := NewHealthService(&stubForecaster{forecast: forecast})

	insight, err := service.Insight(context.Background(),
		"41.38", "2.17",
		time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 11, 23, 59, 59, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(insight.Window) != 2 {
		t.Fatalf("expected 2 days, got %d", len(insight.Window))
	}
	if !strings.Contains(insight.Summary, "very poor") {
		t.Errorf("expected summary to name the worst level, got %q", insight.Summary)
	}
	if !strings.Contains(insight.Summary, "2026-09-11") {
		t.Errorf("expected summary to name the worst day, got %q", insight.Summary)
	}
}

func TestInsight_EmptyWindowSummary(t *testing.T) {
	service := NewHealthService(&stubForecaster{forecast: &models.AQIForecast{}})

	insight, err := service.Insight(context.Background(),
		"41.38", "2.17",
		time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(insight.Window) != 0 {
		t.Errorf("expected empty window, got %d days", len(insight.Window))
	}
	if insight.Summary != "No air quality data for this itinerary." {
		t.Errorf("unexpected summary %q", insight.Summary)
	}
}
