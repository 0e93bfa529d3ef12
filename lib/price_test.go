package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		input string
		cents uint64
	}{
		{"1500", 150000},
		{"1500.50", 150050},
		{"0", 0},
		{"0.99", 99},
		{"0.5", 50},
		{" 250 ", 25000},
	}

	for _, c := range cases {
		cents, err := ParsePrice(c.input)
		require.NoError(t, err, "ParsePrice(%q)", c.input)
		assert.Equal(t, c.cents, cents, "ParsePrice(%q)", c.input)
	}
}

func TestParsePriceRejectsGarbage(t *testing.T) {
	for _, input := range []string{
		"",
		"abc",
		"-5",
		"1,500",
		"1.999",
		".50",
		"1.5.0",
		"12e3",
	} {
		_, err := ParsePrice(input)
		assert.ErrorIs(t, err, ErrInvalidPrice, "ParsePrice(%q)", input)
	}
}
