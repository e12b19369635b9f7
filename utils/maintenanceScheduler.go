package utils

import (
	"log"
	"time"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/robfig/cron/v3"
)

// logMaintenance logs maintenance events with timestamp
func logMaintenance(message string) {
	log.Printf("[MAINTENANCE %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeSoftDeleted hard-deletes rows that were soft-deleted more than
// 30 days ago
func purgeSoftDeleted() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -30)

	targets := []interface{}{
		&courseModels.Course{},
		&courseModels.Section{},
		&courseModels.Lecture{},
		&courseModels.Module{},
		&courseModels.Lesson{},
		&courseModels.Quiz{},
		&courseModels.QuizQuestion{},
		&courseModels.QuizOption{},
		&models.Media{},
	}

	for _, target := range targets {
		result := db.Unscoped().Where("is_deleted = ? AND updated_at < ?", true, cutoff).Delete(target)
		if result.Error != nil {
			logMaintenance("Error purging soft-deleted rows: " + result.Error.Error())
			continue
		}
		if result.RowsAffected > 0 {
			logMaintenance("Purged soft-deleted rows")
		}
	}
}

// refreshCourseDurations recomputes each course's aggregated duration
// from its lecture durations
func refreshCourseDurations() {
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("is_deleted = ?", false).Find(&courses).Error; err != nil {
		logMaintenance("Error fetching courses: " + err.Error())
		return
	}

	for _, course := range courses {
		var total int64
		err := db.Model(&courseModels.Lecture{}).
			Joins("JOIN sections ON sections.id = lectures.section_id").
			Where("sections.course_id = ? AND lectures.is_deleted = ? AND lectures.duration IS NOT NULL", course.ID, false).
			Select("COALESCE(SUM(lectures.duration), 0)").
			Scan(&total).Error
		if err != nil {
			logMaintenance("Error aggregating durations: " + err.Error())
			continue
		}

		if total != course.Duration {
			db.Model(&courseModels.Course{}).Where("id = ?", course.ID).Update("duration", total)
		}
	}
}

// StartMaintenanceScheduler runs nightly cleanup tasks
func StartMaintenanceScheduler() {
	c := cron.New()

	// Nightly at 03:00
	_, err := c.AddFunc("0 3 * * *", func() {
		logMaintenance("Running nightly maintenance")
		purgeSoftDeleted()
		refreshCourseDurations()
	})
	if err != nil {
		log.Printf("Failed to register maintenance job: %v", err)
		return
	}

	c.Start()
	logMaintenance("Maintenance scheduler started")
}
