// Copyright (c) 2026 SkillSync. All rights reserved.

package progress

import "time"

// # Entities

// Record is one user's tracked position inside one course.
//
// ProgressPercent and IsCompleted are derived from the lesson counters on
// every write; they are stored so listings never recompute them. CompletedAt
// is stamped by the first write that reaches 100% and never moves afterwards,
// even if later writes drop the percentage back below 100.
type Record struct {
	ID               string     `json:"id"`
	UserID           string     `json:"userId"`
	CourseID         string     `json:"courseId"`
	LessonsCompleted int        `json:"lessonsCompleted"`
	TotalLessons     int        `json:"totalLessons"`
	ProgressPercent  int        `json:"progressPercent"`
	IsCompleted      bool       `json:"isCompleted"`
	CompletedAt      *time.Time `json:"completedDate,omitempty"`
	StartedAt        time.Time  `json:"startedAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// Percent derives the rounded completion percentage for the given counters.
func Percent(lessonsCompleted, totalLessons int) int {
	return int(float64(lessonsCompleted)/float64(totalLessons)*100 + 0.5)
}

// # Field Identifiers

const (
	FieldCourseID         = "courseId"
	FieldUserID           = "userId"
	FieldLessonsCompleted = "lessonsCompleted"
	FieldTotalLessons     = "totalLessons"
)
