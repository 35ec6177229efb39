// Copyright (c) 2026 SkillSync. All rights reserved.

package note

import "time"

// # Entities

// Note is one private study note a user keeps against a course.
//
// Notes are visible only to their owner; ownership is bound to the user ID
// from the verified session token.
type Note struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"courseId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// # Field Identifiers

const (
	FieldCourseID = "courseId"
	FieldText     = "text"
	FieldNoteID   = "id"
)
