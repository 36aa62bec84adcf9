package models

// AQIForecast is the raw OpenWeather air-pollution forecast payload.
type AQIForecast struct {
	List []AQIEntry `json:"list"`
}

type AQIEntry struct {
	Dt         int64              `json:"dt"`
	Main       AQIMain            `json:"main"`
	Components map[string]float64 `json:"components"`
}

type AQIMain struct {
	AQI int `json:"aqi"`
}

// DailyAirQuality is the worst forecast entry for one calendar day inside the
// trip window.
type DailyAirQuality struct {
	Date       string             `json:"date"`
	AQI        int                `json:"aqi"`
	Label      string             `json:"label"`
	Advice     string             `json:"advice"`
	Color      string             `json:"color"`
	Components map[string]float64 `json:"components"`
}

// HealthInsight summarizes air quality over a trip window.
type HealthInsight struct {
	Window  []DailyAirQuality `json:"window"`
	Summary string            `json:"summary"`
}
