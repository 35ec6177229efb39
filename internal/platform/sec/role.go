// Copyright (c) 2026 SkillSync. All rights reserved.

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted platform access
	RoleAdmin UserRole = "admin"

	// Can publish and manage their own courses
	RoleInstructor UserRole = "instructor"

	// Default role for registered learners
	RoleStudent UserRole = "student"
)

// IsValid reports whether the role is one of the known platform roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleStudent:
		return true
	}
	return false
}

// In reports whether the role is a member of the given allow-set.
//
// Authorization on this platform is allow-list based rather than
// hierarchical: an instructor is not a superset of a student, they are
// different capabilities.
func (r UserRole) In(allowed ...UserRole) bool {
	for _, candidate := range allowed {
		if r == candidate {
			return true
		}
	}
	return false
}
