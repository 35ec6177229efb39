// Copyright (c) 2026 SkillSync. All rights reserved.

package certificate

import (
	"fmt"
	"time"
)

// # Entities

// Certificate is the permanent award record for one completed course.
//
// CourseName and InstructorName are frozen at issuance: a later rename of
// the course must not rewrite certificates already hanging on walls.
type Certificate struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	CourseID       string    `json:"courseId"`
	CourseName     string    `json:"courseName"`
	InstructorName string    `json:"instructorName"`
	CompletedAt    time.Time `json:"completedDate"`
	Content        string    `json:"certificateContent"`
}

// # Rendering

// certificateTemplate is the plain-text award document. The surrounding
// whitespace is trimmed at render time.
const certificateTemplate = `CERTIFICATE OF COMPLETION
================================

This is to certify that

%s

has successfully completed the course:

%s

Instructed by: %s

Date of Completion: %s

This certifies the above named person has demonstrated competency in the subject matter and is hereby awarded this Certificate of Completion.

Signed,
SkillSync Learning Platform`

// Render produces the plain-text certificate document.
func Render(learnerName, courseName, instructorName string, completedAt time.Time) string {
	return fmt.Sprintf(certificateTemplate,
		learnerName,
		courseName,
		instructorName,
		completedAt.Format("1/2/2006"),
	)
}

// # Field Identifiers

const (
	FieldCourseID = "courseId"
	FieldUserID   = "userId"
)
