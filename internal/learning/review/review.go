// Copyright (c) 2026 SkillSync. All rights reserved.

package review

import "time"

// # Entities

// Review is one user's rating and comment on a course.
//
// UserName and UserEmail are denormalized from the verified claims at
// creation time so review listings never join the accounts table.
type Review struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"courseId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary aggregates a course's reviews for the catalog page.
//
// AverageRating carries one decimal place; Distribution counts reviews per
// star from 1 to 5 (index 0 unused keys are serialized as "1".."5").
type Summary struct {
	AverageRating float64        `json:"averageRating"`
	TotalReviews  int            `json:"totalReviews"`
	Distribution  map[string]int `json:"distribution"`
}

// EmptySummary returns the zeroed aggregate with all five buckets present.
func EmptySummary() Summary {
	return Summary{
		Distribution: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0},
	}
}

// # Field Identifiers

const (
	FieldCourseID = "courseId"
	FieldRating   = "rating"
	FieldComment  = "comment"
	FieldReviewID = "reviewId"
)
