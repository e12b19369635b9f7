package controllers

import (
	"log"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateSection appends a section to the end of an owned course
func CreateSection(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	if _, err := loadOwnedCourse(c, userID, courseID); err != nil {
		return err
	}

	reqData := c.Locals("validatedSection").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	})

	var maxOrder int
	database.Database.Db.Model(&courseModels.Section{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	section := courseModels.Section{
		CourseID:    uint(courseID),
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  maxOrder + 1,
	}

	if err := database.Database.Db.Create(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

// UpdateSection updates section title/description
func UpdateSection(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sectionID := c.Locals("sectionID").(int)

	var section courseModels.Section
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", sectionID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	if _, err := loadOwnedCourse(c, userID, int(section.CourseID)); err != nil {
		return err
	}

	reqData := c.Locals("validatedSection").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	})

	if reqData.Title != "" {
		section.Title = reqData.Title
	}
	if reqData.Description != "" {
		section.Description = reqData.Description
	}

	if err := database.Database.Db.Save(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully!", section)
}

// DeleteSection soft deletes a section with its lectures and renumbers
// the remaining sections contiguously from 1
func DeleteSection(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sectionID := c.Locals("sectionID").(int)

	var section courseModels.Section
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", sectionID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	if _, err := loadOwnedCourse(c, userID, int(section.CourseID)); err != nil {
		return err
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&courseModels.Lecture{}).
			Where("section_id = ?", section.ID).Update("is_deleted", true).Error; err != nil {
			return err
		}
		if err := tx.Model(&section).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return renumberSections(tx, section.CourseID)
	})
	if err != nil {
		log.Printf("Error deleting section %d: %v", sectionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", nil)
}

// CreateLecture appends a lecture to the end of a section
func CreateLecture(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sectionID := c.Locals("sectionID").(int)

	var section courseModels.Section
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", sectionID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	if _, err := loadOwnedCourse(c, userID, int(section.CourseID)); err != nil {
		return err
	}

	reqData := c.Locals("validatedLecture").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		VideoURL    string `json:"video_url"`
		Content     string `json:"content"`
		Duration    *int   `json:"duration"`
	})

	var maxOrder int
	database.Database.Db.Model(&courseModels.Lecture{}).
		Where("section_id = ? AND is_deleted = ?", sectionID, false).
		Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	lecture := courseModels.Lecture{
		SectionID:   uint(sectionID),
		Title:       reqData.Title,
		Description: reqData.Description,
		VideoURL:    reqData.VideoURL,
		Content:     reqData.Content,
		Duration:    reqData.Duration,
		OrderIndex:  maxOrder + 1,
	}

	// Recognize embeddable YouTube links
	if videoID := utils.ExtractYouTubeID(reqData.VideoURL); videoID != "" {
		lecture.VideoType = "youtube"
		lecture.VideoID = videoID
	} else if reqData.VideoURL != "" {
		lecture.VideoType = "upload"
	}

	if err := database.Database.Db.Create(&lecture).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lecture!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lecture created successfully!", lecture)
}

// UpdateLecture updates fields of a lecture
func UpdateLecture(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lectureID := c.Locals("lectureID").(int)

	var lecture courseModels.Lecture
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lectureID, false).First(&lecture).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}

	var section courseModels.Section
	if err := database.Database.Db.First(&section, lecture.SectionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	if _, err := loadOwnedCourse(c, userID, int(section.CourseID)); err != nil {
		return err
	}

	reqData := c.Locals("validatedLecture").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		VideoURL    string `json:"video_url"`
		Content     string `json:"content"`
		Duration    *int   `json:"duration"`
	})

	if reqData.Title != "" {
		lecture.Title = reqData.Title
	}
	if reqData.Description != "" {
		lecture.Description = reqData.Description
	}
	if reqData.Content != "" {
		lecture.Content = reqData.Content
	}
	if reqData.Duration != nil {
		lecture.Duration = reqData.Duration
	}
	if reqData.VideoURL != "" {
		lecture.VideoURL = reqData.VideoURL
		if videoID := utils.ExtractYouTubeID(reqData.VideoURL); videoID != "" {
			lecture.VideoType = "youtube"
			lecture.VideoID = videoID
		} else {
			lecture.VideoType = "upload"
			lecture.VideoID = ""
		}
	}

	if err := database.Database.Db.Save(&lecture).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lecture!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture updated successfully!", lecture)
}

// DeleteLecture soft deletes a lecture and renumbers the section
func DeleteLecture(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lectureID := c.Locals("lectureID").(int)

	var lecture courseModels.Lecture
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lectureID, false).First(&lecture).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}

	var section courseModels.Section
	if err := database.Database.Db.First(&section, lecture.SectionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	if _, err := loadOwnedCourse(c, userID, int(section.CourseID)); err != nil {
		return err
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&lecture).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return renumberLectures(tx, lecture.SectionID)
	})
	if err != nil {
		log.Printf("Error deleting lecture %d: %v", lectureID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lecture!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture deleted successfully!", nil)
}

// ReorderSections applies a new section ordering for a course. The
// submitted list must contain every live section exactly once; order
// indices are rewritten contiguously from 1.
func ReorderSections(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	if _, err := loadOwnedCourse(c, userID, courseID); err != nil {
		return err
	}

	reqData := c.Locals("validatedReorder").(*struct {
		OrderedIDs []uint `json:"ordered_ids"`
	})

	var count int64
	database.Database.Db.Model(&courseModels.Section{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&count)
	if int64(len(reqData.OrderedIDs)) != count {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Reorder list must contain every section exactly once!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		for i, id := range reqData.OrderedIDs {
			result := tx.Model(&courseModels.Section{}).
				Where("id = ? AND course_id = ? AND is_deleted = ?", id, courseID, false).
				Update("order_index", i+1)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section list!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sections reordered successfully!", nil)
}

// ReorderLectures applies a new lecture ordering within a section
func ReorderLectures(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sectionID := c.Locals("sectionID").(int)

	var section courseModels.Section
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", sectionID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	if _, err := loadOwnedCourse(c, userID, int(section.CourseID)); err != nil {
		return err
	}

	reqData := c.Locals("validatedReorder").(*struct {
		OrderedIDs []uint `json:"ordered_ids"`
	})

	var count int64
	database.Database.Db.Model(&courseModels.Lecture{}).
		Where("section_id = ? AND is_deleted = ?", sectionID, false).Count(&count)
	if int64(len(reqData.OrderedIDs)) != count {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Reorder list must contain every lecture exactly once!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		for i, id := range reqData.OrderedIDs {
			result := tx.Model(&courseModels.Lecture{}).
				Where("id = ? AND section_id = ? AND is_deleted = ?", id, sectionID, false).
				Update("order_index", i+1)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lecture list!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lectures reordered successfully!", nil)
}

// renumberSections rewrites section order indices contiguously from 1
func renumberSections(tx *gorm.DB, courseID uint) error {
	var sections []courseModels.Section
	if err := tx.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&sections).Error; err != nil {
		return err
	}
	for i, section := range sections {
		if section.OrderIndex != i+1 {
			if err := tx.Model(&courseModels.Section{}).Where("id = ?", section.ID).
				Update("order_index", i+1).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// renumberLectures rewrites lecture order indices contiguously from 1
func renumberLectures(tx *gorm.DB, sectionID uint) error {
	var lectures []courseModels.Lecture
	if err := tx.Where("section_id = ? AND is_deleted = ?", sectionID, false).
		Order("order_index asc").Find(&lectures).Error; err != nil {
		return err
	}
	for i, lecture := range lectures {
		if lecture.OrderIndex != i+1 {
			if err := tx.Model(&courseModels.Lecture{}).Where("id = ?", lecture.ID).
				Update("order_index", i+1).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
