package courseValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// looksLikePlaylist accepts full playlist URLs and bare playlist IDs
func looksLikePlaylist(locator string) bool {
	if strings.Contains(locator, "list=") {
		return true
	}
	return strings.HasPrefix(locator, "PL") && len(locator) > 10
}

// PreviewPlaylist validates the playlist locator query parameter
func PreviewPlaylist() fiber.Handler {
	return func(c *fiber.Ctx) error {
		url := strings.TrimSpace(c.Query("url"))
		if url == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Playlist URL is required!", nil)
		}
		if !looksLikePlaylist(url) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid playlist URL!", nil)
		}

		c.Locals("playlistURL", url)
		return c.Next()
	}
}

// ImportPlaylist validates the course import payload
func ImportPlaylist() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PlaylistURL      string   `json:"playlist_url"`
			Title            string   `json:"title"`
			SelectedVideoIDs []string `json:"selected_video_ids"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.PlaylistURL) == "" {
			errors["playlist_url"] = "Playlist URL is required!"
		} else if !looksLikePlaylist(reqData.PlaylistURL) {
			errors["playlist_url"] = "Invalid playlist URL!"
		}

		if len(reqData.SelectedVideoIDs) == 0 {
			errors["selected_video_ids"] = "Select at least one video to import!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedImport", reqData)
		return c.Next()
	}
}
