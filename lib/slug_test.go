package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"Acme Store", "acme-store"},
		{"  Acme   Store  ", "acme-store"},
		{"Bisi's Kitchen!", "bisi-s-kitchen"},
		{"UPPER CASE", "upper-case"},
		{"phone-case-123", "phone-case-123"},
		{"🌸🌸🌸", ""},
		{"", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, Slugify(c.name), "Slugify(%q)", c.name)
	}
}

func TestUniqueSlugFirstTaker(t *testing.T) {
	taken := map[string]bool{}
	exists := func(slug string) (bool, error) {
		return taken[slug], nil
	}

	slug, err := UniqueSlug("Acme Store", exists)
	require.NoError(t, err)
	assert.Equal(t, "acme-store", slug)
}

func TestUniqueSlugSuffixesOnCollision(t *testing.T) {
	taken := map[string]bool{}
	exists := func(slug string) (bool, error) {
		return taken[slug], nil
	}

	first, err := UniqueSlug("Acme Store", exists)
	require.NoError(t, err)
	taken[first] = true

	second, err := UniqueSlug("Acme Store", exists)
	require.NoError(t, err)
	taken[second] = true

	third, err := UniqueSlug("Acme Store", exists)
	require.NoError(t, err)

	assert.Equal(t, "acme-store", first)
	assert.Equal(t, "acme-store-1", second)
	assert.Equal(t, "acme-store-2", third)
}

func TestUniqueSlugEmptyNameFallsBack(t *testing.T) {
	exists := func(string) (bool, error) { return false, nil }

	slug, err := UniqueSlug("🌸🌸🌸", exists)
	require.NoError(t, err)
	assert.NotEmpty(t, slug)
}
