package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidateSlug(t *testing.T) {
	const root = "vendora.shop"

	cases := []struct {
		host     string
		expected string
	}{
		{"vendora.shop", ""},
		{"www.vendora.shop", ""},
		{"VENDORA.SHOP", ""},
		{"vendora.shop:8084", ""},
		{"acme.vendora.shop", "acme"},
		{"acme.vendora.shop:443", "acme"},
		{"Acme.Vendora.Shop", "acme"},
		{"acme.vendora.shop.", "acme"},
		{"www.sub.vendora.shop", ""},
		{"example.com", ""},
		{"localhost", ""},
		{"", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, candidateSlug(c.host, root, false), "host %q", c.host)
	}
}

func TestCandidateSlugDevMode(t *testing.T) {
	// Two-label hosts only resolve in dev mode, for acme.localhost setups
	assert.Equal(t, "acme", candidateSlug("acme.localhost", "localhost", true))
	assert.Equal(t, "acme", candidateSlug("acme.localhost:8084", "localhost", true))
	assert.Equal(t, "", candidateSlug("acme.localhost", "localhost", false))
	assert.Equal(t, "", candidateSlug("localhost:8084", "localhost", true))
}
