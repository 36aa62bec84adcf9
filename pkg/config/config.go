package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	FlightAPI struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"flight_api"`
	Analytics struct {
		MongoURI string `yaml:"mongo_uri"`
		DBName   string `yaml:"dbname"`
	} `yaml:"analytics"`
	OpenWeather struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"openweather"`
	ElevenLabs struct {
		APIKey  string `yaml:"api_key"`
		VoiceID string `yaml:"voice_id"`
	} `yaml:"elevenlabs"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %v", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	// Override with environment variables if set
	if port := os.Getenv("PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value: %v", err)
		}
		cfg.Server.Port = portNum
	}
	if baseURL := os.Getenv("FLIGHT_API_BASE_URL"); baseURL != "" {
		cfg.FlightAPI.BaseURL = baseURL
	}
	if apiKey := os.Getenv("API_KEY"); apiKey != "" {
		cfg.FlightAPI.APIKey = apiKey
	}
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.Analytics.MongoURI = uri
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		cfg.Analytics.DBName = dbname
	}
	if key := os.Getenv("OPENWEATHER_API_KEY"); key != "" {
		cfg.OpenWeather.APIKey = key
	}
	if key := os.Getenv("ELEVENLABS_API_KEY"); key != "" {
		cfg.ElevenLabs.APIKey = key
	}
	if voice := os.Getenv("ELEVENLABS_VOICE_ID"); voice != "" {
		cfg.ElevenLabs.VoiceID = voice
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	// Set default values
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.FlightAPI.BaseURL == "" {
		cfg.FlightAPI.BaseURL = "https://api.flightapi.io/"
	}
	if cfg.Analytics.DBName == "" {
		cfg.Analytics.DBName = "flywise"
	}
	if cfg.ElevenLabs.VoiceID == "" {
		cfg.ElevenLabs.VoiceID = "21m00Tcm4TlvDq8ikWAM"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "INFO"
	}

	// Validation
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535")
	}
	if cfg.FlightAPI.APIKey == "" {
		return nil, fmt.Errorf("API_KEY is required")
	}
	if !strings.HasSuffix(cfg.FlightAPI.BaseURL, "/") {
		cfg.FlightAPI.BaseURL += "/"
	}

	return &cfg, nil
}
