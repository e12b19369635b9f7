package controllers

import "errors"

// Domain errors surfaced by the course operations. Controllers map
// these to HTTP statuses; helpers return them untranslated so tests
// can assert on them directly.
var (
	// ErrEmptySelection means materialize was called with no items
	ErrEmptySelection = errors.New("no playlist items selected")

	// ErrAlreadyEnrolled means the (user, course) enrollment already exists
	ErrAlreadyEnrolled = errors.New("user already enrolled in this course")

	// ErrCourseNotPublished means the operation needs a published course
	ErrCourseNotPublished = errors.New("course is not published")

	// ErrNotEnrolled means the operation requires an enrollment first
	ErrNotEnrolled = errors.New("user not enrolled in this course")

	// ErrOperationFailed wraps persistence failures after rollback
	ErrOperationFailed = errors.New("operation failed")
)
