package mediaController

import (
	"log"
	"path/filepath"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadMedia stores an uploaded file and records it for the
// authenticated instructor
func UploadMedia(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file provided!", nil)
	}

	fileType := c.FormValue("file_type", "image")
	if !utils.AllowedFile(file.Filename, fileType) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File type not allowed!", nil)
	}

	destDir := filepath.Join(config.AppConfig.UploadFolder, fileType)
	filePath, err := utils.SaveUploadedFile(file, destDir)
	if err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
	}

	media := models.Media{
		UserID:   userID,
		FileName: file.Filename,
		FilePath: filePath,
		FileType: fileType,
		FileSize: file.Size,
	}

	if err := database.Database.Db.Create(&media).Error; err != nil {
		log.Printf("Error saving media record: %v", err)
		utils.DeleteUploadedFile(filePath)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save media record!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "File uploaded successfully!", media)
}

// GetMediaList returns the instructor's uploaded files
func GetMediaList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var mediaList []models.Media
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at DESC").
		Find(&mediaList).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch media!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Media fetched successfully!", mediaList)
}

// DeleteMedia soft deletes a media record and removes the stored file
func DeleteMedia(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	mediaID := c.Locals("mediaID").(int)

	db := database.Database.Db

	var media models.Media
	if err := db.Where("id = ? AND is_deleted = ?", mediaID, false).First(&media).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Media not found!", nil)
	}
	if media.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this file!", nil)
	}

	if err := db.Model(&media).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete media!", nil)
	}

	if err := utils.DeleteUploadedFile(media.FilePath); err != nil {
		log.Printf("Error removing file from disk: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Media deleted successfully!", nil)
}
