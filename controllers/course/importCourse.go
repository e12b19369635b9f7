package controllers

import (
	"errors"

	"lms/database"
	"lms/middleware"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// PreviewPlaylist fetches playlist metadata so the instructor can pick
// which items to import. No entities are created here.
func PreviewPlaylist(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	playlistURL := c.Locals("playlistURL").(string)

	title, items, err := utils.FetchPlaylist(playlistURL)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidPlaylist) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Playlist not found. Check the URL and try again!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Could not reach the video source. Try again later!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Playlist fetched successfully!", fiber.Map{
		"title": title,
		"items": items,
	})
}

// filterSelectedItems keeps only the selected videos, preserving the
// playlist order regardless of the order the IDs were submitted in
func filterSelectedItems(items []utils.PlaylistItem, selectedIDs []string) []utils.PlaylistItem {
	selected := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	var chosen []utils.PlaylistItem
	for _, item := range items {
		if selected[item.VideoID] {
			chosen = append(chosen, item)
		}
	}
	return chosen
}

// ImportPlaylist fetches playlist metadata again and materializes a
// course from the items the instructor selected
func ImportPlaylist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedImport").(*struct {
		PlaylistURL      string   `json:"playlist_url"`
		Title            string   `json:"title"`
		SelectedVideoIDs []string `json:"selected_video_ids"`
	})

	playlistTitle, items, err := utils.FetchPlaylist(reqData.PlaylistURL)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidPlaylist) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Playlist not found. Check the URL and try again!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Could not reach the video source. Try again later!", nil)
	}

	chosen := filterSelectedItems(items, reqData.SelectedVideoIDs)

	title := reqData.Title
	if title == "" {
		title = playlistTitle
	}

	course, err := MaterializeCourse(database.Database.Db, userID, title, chosen)
	if err != nil {
		if errors.Is(err, ErrEmptySelection) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Select at least one video to import!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to import playlist!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created from playlist!", course)
}
