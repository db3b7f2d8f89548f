package config

import "testing"

func TestImagesURLDefault(t *testing.T) {
	t.Setenv("IMAGES_URL", "")
	if got := ImagesURL(); got != DefaultImagesURL {
		t.Errorf("ImagesURL() = %q, want default %q", got, DefaultImagesURL)
	}
}

func TestImagesURLFromEnv(t *testing.T) {
	t.Setenv("IMAGES_URL", "https://images.staging.example.com")
	if got := ImagesURL(); got != "https://images.staging.example.com" {
		t.Errorf("ImagesURL() = %q, want env override", got)
	}
}

func TestShieldsURLEmptyByDefault(t *testing.T) {
	t.Setenv("SHIELDS_URL", "")
	if got := ShieldsURL(); got != "" {
		t.Errorf("ShieldsURL() = %q, want empty", got)
	}
}
