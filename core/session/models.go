package session

import "strings"

// Roles
const (
	RoleAdmin      = "ADMIN"
	RoleManager    = "MANAGER"
	RoleInstructor = "INSTRUCTOR"
	RoleStudent    = "STUDENT"
)

var (
	// ElevatedRoles may reach the administration routes.
	ElevatedRoles = []string{RoleAdmin, RoleManager}
	AllRoles      = []string{RoleAdmin, RoleManager, RoleInstructor, RoleStudent}

	rolePriorities = map[string]int{
		RoleAdmin:      40,
		RoleManager:    30,
		RoleInstructor: 20,
		RoleStudent:    10,
	}
)

func RolePriority(role string) int {
	return rolePriorities[strings.ToUpper(role)]
}

func IsElevated(role string) bool {
	role = strings.ToUpper(role)
	for _, r := range ElevatedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Session is the client-side copy of the authenticated user's identity.
// It is created on login/registration/token-validation, mutated on profile
// edits and cleared on logout. Tokens and role survive a reload through the
// session store's persistence partition.
type Session struct {
	UserID       string `json:"userId"`
	ProfileID    string `json:"profileId"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (s Session) IsAnonymous() bool { return s.AccessToken == "" }
func (s Session) IsAdmin() bool     { return strings.ToUpper(s.Role) == RoleAdmin }
func (s Session) IsManager() bool   { return strings.ToUpper(s.Role) == RoleManager }
func (s Session) IsElevated() bool  { return IsElevated(s.Role) }
