// Copyright (c) 2026 SkillSync. All rights reserved.

package enrollment

import "time"

// # Entities

// Enrollment is one row of the membership ledger binding a user to a course.
//
// UserEmail is denormalized from the verified claims at enrollment time; the
// original data model keyed enrollments by email and clients still display it.
type Enrollment struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserEmail  string    `json:"userEmail"`
	CourseID   string    `json:"courseId"`
	Progress   int       `json:"progress"`
	EnrolledAt time.Time `json:"enrolledAt"`
}

// # Field Identifiers

const (
	FieldCourseID = "courseId"
	FieldProgress = "progress"
	FieldEnrolled = "enrolled"
)
