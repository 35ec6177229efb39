// Copyright (c) 2026 SkillSync. All rights reserved.

package sec

import "unicode"

// # Password Policy

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// PasswordPolicyMessage is the user-visible description of the password rules.
// Frontends display it verbatim, so the wording is part of the API contract.
const PasswordPolicyMessage = "Password must be at least 6 characters and contain an uppercase and a lowercase letter"

// CheckPasswordPolicy reports whether a candidate password satisfies the
// platform policy: length >= 6, at least one uppercase letter, and at least
// one lowercase letter.
func CheckPasswordPolicy(password string) bool {
	if len([]rune(password)) < MinPasswordLength {
		return false
	}

	var hasUpper, hasLower bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}

	return hasUpper && hasLower
}
