package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huseyin4215/QRCal-sub002/formatting"
	"github.com/huseyin4215/QRCal-sub002/models"
)

// UserRow is one roster line: formatted display name plus the action set the
// admin UI may offer for that account.
type UserRow struct {
	ID           string   `json:"id"`
	DisplayName  string   `json:"displayName"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Department   string   `json:"department,omitempty"`
	IsActive     bool     `json:"isActive"`
	GoogleLinked bool     `json:"googleLinked"`
	Actions      []string `json:"actions"`
}

func buildUserRows(users []models.User) []UserRow {
	rows := make([]UserRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, UserRow{
			ID:           u.ID,
			DisplayName:  formatting.FormatUserDisplayName(u),
			Email:        u.Email,
			Role:         u.Role,
			Department:   u.Department,
			IsActive:     u.IsActive,
			GoogleLinked: u.GoogleLinked(),
			Actions:      models.ActionsForRole(u.Role),
		})
	}
	return rows
}

type listQuery struct {
	Role string `form:"role" binding:"omitempty,oneof=student faculty admin"`
}

// ListUsers serves the account roster, optionally narrowed to one role. An
// upstream failure shows an empty roster rather than an error page.
func ListUsers(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role parameter"})
		return
	}

	users, err := API.FetchUsers(c.Request.Context(), q.Role)
	if err != nil {
		log.Println("roster fetch failed:", err)
		users = nil
	}
	c.JSON(http.StatusOK, gin.H{"users": buildUserRows(users)})
}
