package utils_test

import (
	"testing"

	"github.com/degroeneboom/school_site_app/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Ons team":             "ons-team",
		"Foto's":               "foto-s",
		"Ouderwerkgroep":       "ouderwerkgroep",
		"  Kalender 2026  ":    "kalender-2026",
		"Café één":             "cafe-een",
		"---":                  "",
		"Praktische info!!!":   "praktische-info",
		"Zorg & ondersteuning": "zorg-ondersteuning",
	}
	for in, want := range cases {
		assert.Equal(t, want, utils.Slugify(in), "input %q", in)
	}
}
