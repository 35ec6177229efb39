// Copyright (c) 2026 SkillSync. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsync/api/internal/platform/sec"
)

/*
TestHashPassword_RoundTrip verifies hashing, matching, and salting.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := sec.HashPassword("Secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Secret1", hash)

	assert.True(t, sec.CheckPasswordHash("Secret1", hash))
	assert.False(t, sec.CheckPasswordHash("secret1", hash))
	assert.False(t, sec.CheckPasswordHash("", hash))

	// A second hash of the same password must differ (random salt).
	second, err := sec.HashPassword("Secret1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, second)
}

/*
TestCheckPasswordPolicy covers the account password policy: at least six
characters with an uppercase and a lowercase letter.
*/
func TestCheckPasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		ok       bool
	}{
		{"mixed_case_long_enough", "Secret1", true},
		{"exactly_six", "AbCdEf", true},
		{"unicode_counts_runes", "Ärgern", true},
		{"too_short", "AbCdE", false},
		{"all_lowercase", "secrets", false},
		{"all_uppercase", "SECRETS", false},
		{"digits_only", "123456", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, sec.CheckPasswordPolicy(tt.password))
		})
	}
}

/*
TestUserRole_In checks allow-set membership for the role gate.
*/
func TestUserRole_In(t *testing.T) {
	assert.True(t, sec.RoleInstructor.In(sec.RoleInstructor, sec.RoleAdmin))
	assert.True(t, sec.RoleAdmin.In(sec.RoleInstructor, sec.RoleAdmin))
	assert.False(t, sec.RoleStudent.In(sec.RoleInstructor, sec.RoleAdmin))
	assert.False(t, sec.RoleStudent.In())
}

/*
TestUserRole_IsValid rejects unknown role strings.
*/
func TestUserRole_IsValid(t *testing.T) {
	assert.True(t, sec.RoleStudent.IsValid())
	assert.True(t, sec.RoleInstructor.IsValid())
	assert.True(t, sec.RoleAdmin.IsValid())
	assert.False(t, sec.UserRole("superuser").IsValid())
	assert.False(t, sec.UserRole("").IsValid())
}
