package config

import (
	"time"
)

// AppConfig carries the non-database settings: where the server listens,
// how to reach the reverse geocoder and where photos land.
type AppConfig struct {
	ListenAddr      string
	GeocoderBaseURL string
	GeocoderTimeout time.Duration
	PhotoDir        string
	PhotoBaseURL    string
}

// LoadApp reads the application settings from the environment.
func LoadApp() *AppConfig {
	timeout := 5 * time.Second
	if raw := getEnv("GEOCODER_TIMEOUT", ""); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			timeout = d
		}
	}

	return &AppConfig{
		ListenAddr:      getEnv("LISTEN_ADDR", "0.0.0.0:8080"),
		GeocoderBaseURL: getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocoderTimeout: timeout,
		PhotoDir:        getEnv("PHOTO_DIR", "./data/photos"),
		PhotoBaseURL:    getEnv("PHOTO_BASE_URL", "/photos"),
	}
}
