package controllers

import (
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/huseyin4215/QRCal-sub002/authentication"
	"github.com/huseyin4215/QRCal-sub002/filtering"
	"github.com/huseyin4215/QRCal-sub002/gateway"
	"github.com/huseyin4215/QRCal-sub002/models"
)

// API is the upstream client shared by all controllers, set once at startup.
var API *gateway.Client

func SetAPIClient(c *gateway.Client) {
	API = c
}

type historyQuery struct {
	Filter string `form:"filter" binding:"omitempty,oneof=all past upcoming"`
	Q      string `form:"q"`
}

// resolveSubject returns the user whose history is being viewed: the session
// profile for self views, an upstream lookup for views of someone else.
// Lookup failures fall back to the session profile.
func resolveSubject(c *gin.Context, claims *models.SessionClaims) models.User {
	id := c.Param("id")
	if id == "" || id == claims.UserID {
		return claims.SessionUser()
	}
	user, err := API.FetchUserByID(c.Request.Context(), id)
	if err != nil {
		log.Println("user lookup failed, falling back to session profile:", err)
		return claims.SessionUser()
	}
	return user
}

// loadAppointments picks the upstream endpoint by role and ownership:
// students and faculty load their own history directly, everything else goes
// through the full admin list narrowed client-side. Any fetch failure
// degrades to an empty history instead of an error page.
func loadAppointments(c *gin.Context, claims *models.SessionClaims, subject models.User) []models.Appointment {
	ctx := c.Request.Context()
	var (
		appointments []models.Appointment
		err          error
	)
	switch {
	case subject.ID == claims.UserID && claims.Role == models.RoleStudent:
		appointments, err = API.FetchStudentAppointments(ctx, subject.ID)
	case subject.ID == claims.UserID && claims.Role == models.RoleFaculty:
		appointments, err = API.FetchFacultyAppointments(ctx, subject.ID)
	default:
		appointments, err = API.FetchAllAppointments(ctx)
		if err == nil {
			appointments = matchAppointments(appointments, subject)
		}
	}
	if err != nil {
		log.Println("appointment fetch failed:", err)
		return nil
	}
	return appointments
}

// matchesUser decides whether an appointment belongs to the subject. The
// fallback chain is ordered: email, embedded reference id, raw id field,
// student number. The first field that matches wins.
func matchesUser(a models.Appointment, u models.User) bool {
	if u.Role == models.RoleFaculty || u.Role == models.RoleAdmin {
		ref := a.Faculty
		switch {
		case ref != nil && ref.Email != "" && ref.Email == u.Email:
			return true
		case ref != nil && ref.ID != "" && ref.ID == u.ID:
			return true
		case a.FacultyID != "" && a.FacultyID == u.ID:
			return true
		}
		return false
	}

	ref := a.Student
	switch {
	case ref != nil && ref.Email != "" && ref.Email == u.Email:
		return true
	case ref != nil && ref.ID != "" && ref.ID == u.ID:
		return true
	case a.StudentID != "" && a.StudentID == u.ID:
		return true
	case u.StudentNumber != "" && ref != nil && ref.StudentNumber == u.StudentNumber:
		return true
	}
	return false
}

// matchAppointments keeps the subject's appointments from the full list and
// sorts them newest first by date and start time.
func matchAppointments(appointments []models.Appointment, subject models.User) []models.Appointment {
	kept := make([]models.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if matchesUser(a, subject) {
			kept = append(kept, a)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		ti, _ := filtering.StartInstant(kept[i], time.Local)
		tj, _ := filtering.StartInstant(kept[j], time.Local)
		return ti.After(tj)
	})
	return kept
}

// GetAppointmentHistory serves the appointment history of the signed-in user
// or, on the admin route, of any account.
func GetAppointmentHistory(c *gin.Context) {
	claims := authentication.SessionFrom(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session required"})
		return
	}

	var q historyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter parameters"})
		return
	}
	if q.Filter == "" {
		q.Filter = filtering.BucketAll
	}

	subject := resolveSubject(c, claims)
	appointments := loadAppointments(c, claims, subject)
	now := time.Now()

	c.JSON(http.StatusOK, gin.H{
		"user":         subject,
		"appointments": filtering.Apply(appointments, q.Filter, q.Q, now),
		"counts":       filtering.CountBuckets(appointments, now),
	})
}
