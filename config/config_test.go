package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadReadsGuideSettings(t *testing.T) {
	t.Setenv("GUIDE_ALLOWED_DOMAINS", "example.com,guides.example.org")
	t.Setenv("GUIDE_MAX_BYTES_PER_PAGE", "2048")

	cfg := Load()
	assert.Equal(t, "example.com,guides.example.org", cfg.GuideAllowedDomains)
	assert.Equal(t, 2048, cfg.GuideMaxBytes)
}

func TestLoadGuideMaxBytesFallsBackOnGarbage(t *testing.T) {
	t.Setenv("GUIDE_MAX_BYTES_PER_PAGE", "not-a-number")
	assert.Equal(t, 1500000, Load().GuideMaxBytes)

	t.Setenv("GUIDE_MAX_BYTES_PER_PAGE", "-5")
	assert.Equal(t, 1500000, Load().GuideMaxBytes)
}
