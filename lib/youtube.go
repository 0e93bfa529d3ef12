package lib

import "regexp"

// Matches watch URLs (?v=ID) and short youtu.be/ID links
var youtubeIDPattern = regexp.MustCompile(`(?:v=|be/)([A-Za-z0-9_-]{11})`)

// ExtractYoutubeID pulls the 11-character video id out of a YouTube URL.
// Returns an empty string when the URL does not contain one.
func ExtractYoutubeID(url string) string {
	matches := youtubeIDPattern.FindStringSubmatch(url)
	if len(matches) < 2 {
		return ""
	}
	return matches[1]
}
