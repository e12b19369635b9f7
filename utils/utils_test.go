package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractYouTubeID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?list=PLx&v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://example.com/video.mp4", ""},
		{"not a url", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractYouTubeID(tc.url), tc.url)
	}
}

func TestSecondsToTimeFormat(t *testing.T) {
	assert.Equal(t, "00:00", SecondsToTimeFormat(0))
	assert.Equal(t, "00:42", SecondsToTimeFormat(42))
	assert.Equal(t, "12:05", SecondsToTimeFormat(725))
	assert.Equal(t, "01:00:01", SecondsToTimeFormat(3601))
	assert.Equal(t, "00:00", SecondsToTimeFormat(-5))
}

func TestAllowedFile(t *testing.T) {
	assert.True(t, AllowedFile("photo.PNG", "image"))
	assert.True(t, AllowedFile("notes.pdf", "document"))
	assert.False(t, AllowedFile("script.exe", "image"))
	assert.False(t, AllowedFile("photo.png", "document"))
	assert.False(t, AllowedFile("photo.png", "video"))
}
