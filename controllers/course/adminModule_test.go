package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// instructorApp wires the module and lesson authoring handlers behind a
// stub auth middleware acting as the given user
func instructorApp(db *gorm.DB, userID uint) *fiber.App {
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	auth := func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	}

	app.Post("/course/:id/module", auth, courseValidator.CourseID(), courseValidator.ModuleBody(true), CreateModule)
	app.Patch("/module/:id", auth, courseValidator.ModuleID(), courseValidator.ModuleBody(false), UpdateModule)
	app.Post("/module/:id/lesson", auth, courseValidator.ModuleID(), courseValidator.LessonBody(true), CreateLesson)
	app.Patch("/lesson/:lessonId", auth, courseValidator.LessonID(), courseValidator.LessonBody(false), UpdateLesson)
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateModuleAppendsToCourse(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, instructor.ID, false)
	createModuleWithLessons(t, db, course.ID, 1)

	app := instructorApp(db, instructor.ID)

	resp, err := app.Test(jsonRequest("POST", fmt.Sprintf("/course/%d/module", course.ID), `{"title":"Advanced Topics"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var modules []courseModels.Module
	require.NoError(t, db.Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("order_index asc").Find(&modules).Error)
	require.Len(t, modules, 2)
	assert.Equal(t, "Advanced Topics", modules[1].Title)
	assert.Equal(t, 2, modules[1].OrderIndex)
}

func TestUpdateModuleTitle(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, instructor.ID, false)
	module, _ := createModuleWithLessons(t, db, course.ID, 1)
	module.Description = "original"
	require.NoError(t, db.Save(module).Error)

	app := instructorApp(db, instructor.ID)

	resp, err := app.Test(jsonRequest("PATCH", fmt.Sprintf("/module/%d", module.ID), `{"title":"Renamed Module"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated courseModels.Module
	require.NoError(t, db.First(&updated, module.ID).Error)
	assert.Equal(t, "Renamed Module", updated.Title)
	// Omitted fields stay untouched
	assert.Equal(t, "original", updated.Description)
}

func TestUpdateModuleRejectsNonOwner(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, models.RoleInstructor)
	other := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, owner.ID, false)
	module, _ := createModuleWithLessons(t, db, course.ID, 1)

	app := instructorApp(db, other.ID)

	resp, err := app.Test(jsonRequest("PATCH", fmt.Sprintf("/module/%d", module.ID), `{"title":"Hijacked"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var unchanged courseModels.Module
	require.NoError(t, db.First(&unchanged, module.ID).Error)
	assert.Equal(t, "Module", unchanged.Title)
}

func TestCreateLessonAppendsToModule(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, instructor.ID, false)
	module, _ := createModuleWithLessons(t, db, course.ID, 2)

	app := instructorApp(db, instructor.ID)

	resp, err := app.Test(jsonRequest("POST", fmt.Sprintf("/module/%d/lesson", module.ID), `{"title":"Closing Notes","content":"wrap up"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var lessons []courseModels.Lesson
	require.NoError(t, db.Where("module_id = ? AND is_deleted = ?", module.ID, false).
		Order("order_index asc").Find(&lessons).Error)
	require.Len(t, lessons, 3)
	assert.Equal(t, "Closing Notes", lessons[2].Title)
	assert.Equal(t, 3, lessons[2].OrderIndex)
}

func TestUpdateLessonContent(t *testing.T) {
	db := newTestDB(t)
	instructor := createUser(t, db, models.RoleInstructor)
	course := createCourse(t, db, instructor.ID, false)
	_, lessons := createModuleWithLessons(t, db, course.ID, 1)

	app := instructorApp(db, instructor.ID)

	resp, err := app.Test(jsonRequest("PATCH", fmt.Sprintf("/lesson/%d", lessons[0].ID), `{"content":"rewritten text"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated courseModels.Lesson
	require.NoError(t, db.First(&updated, lessons[0].ID).Error)
	assert.Equal(t, "rewritten text", updated.Content)
	assert.Equal(t, "Lesson", updated.Title)
}
