// Package config resolves service settings from the environment via Viper.
package config

import (
	"os"

	"github.com/spf13/viper"
)

// Service endpoint defaults.
const (
	// DefaultImagesURL is the base URL for local static button assets.
	DefaultImagesURL = "https://images.opencollective.com"

	// DefaultAPIURL is the graph API endpoint.
	DefaultAPIURL = "https://api.opencollective.com/graphql"

	// DefaultWebsiteURL is the public site used for profile links.
	DefaultWebsiteURL = "https://opencollective.com"
)

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// getOrDefault returns the configured value or the fallback.
func getOrDefault(key, fallback string) string {
	if v := GetString(key); v != "" {
		return v
	}
	return fallback
}

// ImagesURL returns the base URL for local static assets.
func ImagesURL() string {
	return getOrDefault("IMAGES_URL", DefaultImagesURL)
}

// APIURL returns the graph API endpoint.
func APIURL() string {
	return getOrDefault("API_URL", DefaultAPIURL)
}

// WebsiteURL returns the public site base URL.
func WebsiteURL() string {
	return getOrDefault("WEBSITE_URL", DefaultWebsiteURL)
}

// ShieldsURL returns the badge rendering service base URL. Empty selects
// the shields.io default.
func ShieldsURL() string {
	return GetString("SHIELDS_URL")
}

// ImageCDNURL returns the image CDN fetch base URL. Empty selects the
// production default.
func ImageCDNURL() string {
	return GetString("IMAGE_CDN_URL")
}
