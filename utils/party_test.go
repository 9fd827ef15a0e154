package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildParsePartyDetailsRoundTrip(t *testing.T) {
	parties := []Party{
		{Name: "Dana Ricci", Email: "dana@riccibuilders.com", Address: "14 Harbor Way, Oakland CA"},
		{Name: "M. Okafor", Email: "m.okafor@example.com", Address: ""},
		{Name: "  Padded Name  ", Email: " padded@example.com ", Address: " 1 Main St "},
	}

	for _, p := range parties {
		block := BuildPartyDetails(p)
		parsed, err := ParsePartyDetails(block)
		require.NoError(t, err)

		want := Party{
			Name:    strings.TrimSpace(p.Name),
			Email:   strings.TrimSpace(p.Email),
			Address: strings.TrimSpace(p.Address),
		}
		assert.Equal(t, want, parsed)
	}
}

func TestParsePartyDetailsIgnoresUnknownLines(t *testing.T) {
	block := "Name: Dana Ricci\nEmail: dana@example.com\nPhone: 555-0100\nnot a key value line\nAddress: 14 Harbor Way\n"
	p, err := ParsePartyDetails(block)
	require.NoError(t, err)
	assert.Equal(t, "Dana Ricci", p.Name)
	assert.Equal(t, "dana@example.com", p.Email)
	assert.Equal(t, "14 Harbor Way", p.Address)
}

func TestParsePartyDetailsCaseInsensitiveKeys(t *testing.T) {
	p, err := ParsePartyDetails("name: Dana\nEMAIL: dana@example.com\n")
	require.NoError(t, err)
	assert.Equal(t, "Dana", p.Name)
	assert.Equal(t, "dana@example.com", p.Email)
}

func TestParsePartyDetailsMissingFields(t *testing.T) {
	_, err := ParsePartyDetails("Email: dana@example.com\n")
	assert.Error(t, err)

	_, err = ParsePartyDetails("Name: Dana\nAddress: somewhere\n")
	assert.Error(t, err)

	_, err = ParsePartyDetails("")
	assert.Error(t, err)
}
