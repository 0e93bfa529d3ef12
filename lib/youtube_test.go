package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractYoutubeID(t *testing.T) {
	cases := []struct {
		url      string
		expected string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?list=abc&v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://example.com/video", ""},
		{"https://www.youtube.com/watch?v=short", ""},
		{"", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, ExtractYoutubeID(c.url), "url %q", c.url)
	}
}
