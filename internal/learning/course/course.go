// Copyright (c) 2026 SkillSync. All rights reserved.

package course

import "time"

// # Entities

// Course represents a single catalog entry on the platform.
//
// InstructorID and InstructorName are denormalized from the creator's verified
// claims at creation time, so listings never need a join against the accounts
// table.
type Course struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"image"`
	Price          float64   `json:"price"`
	Duration       string    `json:"duration"`
	Category       string    `json:"category"`
	IsFeatured     bool      `json:"isFeatured"`
	InstructorID   string    `json:"instructorId"`
	InstructorName string    `json:"instructorName"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Filter narrows a catalog listing.
type Filter struct {
	// FeaturedOnly limits the listing to curated courses.
	FeaturedOnly bool
	// Category limits the listing to a single category; empty means all.
	Category string
}

// # Field Identifiers

// Field names for validation and identity mapping in the catalog domain.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldPrice       = "price"
	FieldDuration    = "duration"
	FieldCategory    = "category"
	FieldCourseID    = "courseId"
)
