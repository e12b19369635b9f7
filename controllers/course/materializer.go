package controllers

import (
	"log"

	courseModels "lms/models/course"
	"lms/utils"

	"gorm.io/gorm"
)

// MaterializeCourse converts selected playlist items into a persisted
// course hierarchy: one unpublished course, one section per item in the
// given order (OrderIndex 1..N), and exactly one lecture per section.
// The whole creation is a single transaction; on any failure nothing is
// left behind. Re-running with the same inputs creates a new,
// independent course.
func MaterializeCourse(db *gorm.DB, ownerID uint, playlistTitle string, items []utils.PlaylistItem) (*courseModels.Course, error) {
	if len(items) == 0 {
		return nil, ErrEmptySelection
	}

	var course courseModels.Course

	err := db.Transaction(func(tx *gorm.DB) error {
		course = courseModels.Course{
			Title:       playlistTitle,
			CreatorID:   ownerID,
			IsPublished: false,
		}
		if err := tx.Create(&course).Error; err != nil {
			return err
		}

		var totalDuration int64
		for i, item := range items {
			section := courseModels.Section{
				CourseID:   course.ID,
				Title:      item.Title,
				OrderIndex: i + 1,
			}
			if err := tx.Create(&section).Error; err != nil {
				return err
			}

			lecture := courseModels.Lecture{
				SectionID:  section.ID,
				Title:      item.Title,
				Content:    item.Description,
				VideoURL:   "https://www.youtube.com/watch?v=" + item.VideoID,
				VideoType:  "youtube",
				VideoID:    item.VideoID,
				Duration:   item.Duration,
				OrderIndex: 1,
			}
			if err := tx.Create(&lecture).Error; err != nil {
				return err
			}

			if item.Duration != nil {
				totalDuration += int64(*item.Duration)
			}
		}

		if totalDuration > 0 {
			if err := tx.Model(&courseModels.Course{}).Where("id = ?", course.ID).
				Update("duration", totalDuration).Error; err != nil {
				return err
			}
			course.Duration = totalDuration
		}

		return nil
	})
	if err != nil {
		log.Printf("Error materializing course from playlist: %v", err)
		return nil, ErrOperationFailed
	}

	return &course, nil
}
