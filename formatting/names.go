package formatting

import (
	"strings"

	"github.com/huseyin4215/QRCal-sub002/models"
)

// Academic titles recognized at the start of a display name, checked in
// order as plain prefix comparisons.
var honorifics = []string{"Prof.", "Doç.", "Dr.", "Öğr.Gör.", "Arş.Gör."}

// HasHonorific reports whether the name already starts with a known academic
// title, case-insensitively.
func HasHonorific(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, h := range honorifics {
		if strings.HasPrefix(lower, strings.ToLower(h)) {
			return true
		}
	}
	return false
}

// FormatUserDisplayName returns the name to show for an account. Faculty and
// admin accounts get their title prefixed; students never do.
func FormatUserDisplayName(u models.User) string {
	name := strings.TrimSpace(u.Name)
	if name == "" {
		return ""
	}
	title := strings.TrimSpace(u.Title)
	if title != "" && (u.Role == models.RoleFaculty || u.Role == models.RoleAdmin) {
		return strings.TrimSpace(title + " " + name)
	}
	return name
}

// FormatFacultyDisplayName resolves the faculty side of an appointment.
// Resolution order: embedded title+name, then the flat facultyName field
// (title-prefixed only when it does not already carry one), then an embedded
// name alone.
func FormatFacultyDisplayName(a models.Appointment) string {
	ref := a.Faculty
	if ref != nil {
		title := strings.TrimSpace(ref.Title)
		name := strings.TrimSpace(ref.Name)
		if title != "" && name != "" {
			return title + " " + name
		}
	}
	if flat := strings.TrimSpace(a.FacultyName); flat != "" {
		if HasHonorific(flat) {
			return flat
		}
		if ref != nil && strings.TrimSpace(ref.Title) != "" {
			return strings.TrimSpace(ref.Title) + " " + flat
		}
		return flat
	}
	if ref != nil && strings.TrimSpace(ref.Name) != "" {
		return strings.TrimSpace(ref.Name)
	}
	return ""
}

// FormatStudentDisplayName resolves the student side: embedded name first,
// then the flat studentName field. Students never get a title prefix.
func FormatStudentDisplayName(a models.Appointment) string {
	if a.Student != nil && strings.TrimSpace(a.Student.Name) != "" {
		return strings.TrimSpace(a.Student.Name)
	}
	return strings.TrimSpace(a.StudentName)
}
