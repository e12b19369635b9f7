package utils

import (
	"fmt"
	"regexp"
)

var youtubeIDRegex = regexp.MustCompile(`(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// ExtractYouTubeID extracts a video ID from a YouTube URL, returning ""
// when the URL is not a recognizable YouTube link
func ExtractYouTubeID(url string) string {
	match := youtubeIDRegex.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	return match[1]
}

// SecondsToTimeFormat converts seconds to a HH:MM:SS or MM:SS display string
func SecondsToTimeFormat(seconds int) string {
	if seconds <= 0 {
		return "00:00"
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
