package domain

import "strings"

// Role is what a signed-in user does on the platform.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleOrganizer Role = "organizer"
)

// ParseRole accepts "student" as the legacy name of the candidate role.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "candidate", "student":
		return RoleCandidate, true
	case "organizer", "organiser":
		return RoleOrganizer, true
	}
	return "", false
}

// User is the demo session record. It is created without any credential
// check and lives only as long as the session entry in storage.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	Institution string `json:"institution,omitempty"`
}

// Initial is the avatar letter shown next to the user's name.
func (u User) Initial() string {
	for _, r := range strings.TrimSpace(u.Name) {
		return strings.ToUpper(string(r))
	}
	return ""
}
