package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// CreateModule appends a module to the end of an owned course
func CreateModule(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	if _, err := loadOwnedCourse(c, userID, courseID); err != nil {
		return err
	}

	reqData := c.Locals("validatedModule").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	})

	var maxOrder int
	database.Database.Db.Model(&courseModels.Module{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	module := courseModels.Module{
		CourseID:    uint(courseID),
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  maxOrder + 1,
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// UpdateModule updates module title/description
func UpdateModule(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(int)

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if _, err := loadOwnedCourse(c, userID, int(module.CourseID)); err != nil {
		return err
	}

	reqData := c.Locals("validatedModule").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	})

	if reqData.Title != "" {
		module.Title = reqData.Title
	}
	if reqData.Description != "" {
		module.Description = reqData.Description
	}

	if err := database.Database.Db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// CreateLesson appends a lesson to the end of a module
func CreateLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(int)

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if _, err := loadOwnedCourse(c, userID, int(module.CourseID)); err != nil {
		return err
	}

	reqData := c.Locals("validatedLesson").(*struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	})

	var maxOrder int
	database.Database.Db.Model(&courseModels.Lesson{}).
		Where("module_id = ? AND is_deleted = ?", moduleID, false).
		Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	lesson := courseModels.Lesson{
		ModuleID:   uint(moduleID),
		Title:      reqData.Title,
		Content:    reqData.Content,
		OrderIndex: maxOrder + 1,
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// UpdateLesson updates lesson title/content
func UpdateLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.First(&module, lesson.ModuleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if _, err := loadOwnedCourse(c, userID, int(module.CourseID)); err != nil {
		return err
	}

	reqData := c.Locals("validatedLesson").(*struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	})

	if reqData.Title != "" {
		lesson.Title = reqData.Title
	}
	if reqData.Content != "" {
		lesson.Content = reqData.Content
	}

	if err := database.Database.Db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}
