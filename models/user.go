package models

import "github.com/golang-jwt/jwt/v5"

const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

type User struct {
	ID               string `json:"_id"`
	Name             string `json:"name"`
	Role             string `json:"role"`
	Title            string `json:"title,omitempty"`
	Email            string `json:"email"`
	Department       string `json:"department,omitempty"`
	StudentNumber    string `json:"studentNumber,omitempty"`
	IsActive         bool   `json:"isActive"`
	GoogleCalendarID string `json:"googleCalendarId,omitempty"`
}

// GoogleLinked reports whether the account carries an external calendar
// identifier.
func (u User) GoogleLinked() bool {
	return u.GoogleCalendarID != ""
}

// Actions an admin can take on a roster row.
const (
	ActionView    = "view"
	ActionEdit    = "edit"
	ActionDelete  = "delete"
	ActionHistory = "history"
)

// Fixed action set per account role. Student rows never expose edit.
var roleActions = map[string][]string{
	RoleStudent: {ActionView, ActionHistory, ActionDelete},
	RoleFaculty: {ActionView, ActionEdit, ActionHistory, ActionDelete},
	RoleAdmin:   {ActionView, ActionEdit},
}

// ActionsForRole returns a copy of the action set for the given role.
// Unknown roles get view only.
func ActionsForRole(role string) []string {
	actions, ok := roleActions[role]
	if !ok {
		actions = []string{ActionView}
	}
	out := make([]string, len(actions))
	copy(out, actions)
	return out
}

type SessionClaims struct {
	UserID        string `json:"userId"`
	Role          string `json:"role"`
	Name          string `json:"name"`
	Title         string `json:"title,omitempty"`
	Email         string `json:"email"`
	Department    string `json:"department,omitempty"`
	StudentNumber string `json:"studentNumber,omitempty"`
	jwt.RegisteredClaims
}

// SessionUser rebuilds the profile carried inside the token, used when the
// signed-in user views their own history.
func (c *SessionClaims) SessionUser() User {
	return User{
		ID:            c.UserID,
		Name:          c.Name,
		Role:          c.Role,
		Title:         c.Title,
		Email:         c.Email,
		Department:    c.Department,
		StudentNumber: c.StudentNumber,
		IsActive:      true,
	}
}
