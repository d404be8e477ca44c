package auth

import (
	"regexp"
	"strings"

	domainerror "github.com/pennywise/backend/internal/domain/error"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

const (
	minUsernameLength = 3
	maxUsernameLength = 30
	maxNameLength     = 50
)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

func checkUsername(v *domainerror.Validator, username string) {
	username = strings.TrimSpace(username)
	v.Check(len(username) >= minUsernameLength && len(username) <= maxUsernameLength,
		"username", "username must be between 3 and 30 characters")
	v.Check(username == "" || usernameRegex.MatchString(username),
		"username", "username may only contain letters, numbers and underscores")
}

func checkNames(v *domainerror.Validator, firstName, lastName string) {
	v.Check(len(strings.TrimSpace(firstName)) <= maxNameLength, "firstName", "first name cannot exceed 50 characters")
	v.Check(len(strings.TrimSpace(lastName)) <= maxNameLength, "lastName", "last name cannot exceed 50 characters")
}
