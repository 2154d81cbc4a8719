package formatting

import (
	"testing"

	"github.com/huseyin4215/QRCal-sub002/models"
)

func TestFormatUserDisplayName(t *testing.T) {
	tests := []struct {
		name string
		user models.User
		want string
	}{
		{"student ignores title", models.User{Name: "Ayşe Yılmaz", Role: models.RoleStudent, Title: "Dr."}, "Ayşe Yılmaz"},
		{"faculty with title", models.User{Name: "Mehmet Kaya", Role: models.RoleFaculty, Title: "Prof."}, "Prof. Mehmet Kaya"},
		{"admin with title", models.User{Name: "Zeynep Demir", Role: models.RoleAdmin, Title: "Doç."}, "Doç. Zeynep Demir"},
		{"faculty without title", models.User{Name: "Mehmet Kaya", Role: models.RoleFaculty}, "Mehmet Kaya"},
		{"empty user", models.User{}, ""},
		{"whitespace trimmed", models.User{Name: "  Ali Veli  ", Role: models.RoleFaculty, Title: " Dr. "}, "Dr. Ali Veli"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatUserDisplayName(tt.user); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatFacultyDisplayName(t *testing.T) {
	tests := []struct {
		name string
		apt  models.Appointment
		want string
	}{
		{
			"embedded title and name",
			models.Appointment{Faculty: &models.FacultyRef{Title: "Prof.", Name: "Mehmet Kaya"}},
			"Prof. Mehmet Kaya",
		},
		{
			"flat name already titled stays unchanged",
			models.Appointment{FacultyName: "Dr. Mehmet Kaya"},
			"Dr. Mehmet Kaya",
		},
		{
			"flat name titled case-insensitively",
			models.Appointment{FacultyName: "DR. MEHMET KAYA"},
			"DR. MEHMET KAYA",
		},
		{
			"flat name gets embedded title",
			models.Appointment{FacultyName: "Mehmet Kaya", Faculty: &models.FacultyRef{Title: "Doç."}},
			"Doç. Mehmet Kaya",
		},
		{
			"flat name without any title",
			models.Appointment{FacultyName: "Mehmet Kaya"},
			"Mehmet Kaya",
		},
		{
			"embedded name only",
			models.Appointment{Faculty: &models.FacultyRef{Name: "Mehmet Kaya"}},
			"Mehmet Kaya",
		},
		{
			"nothing resolvable",
			models.Appointment{Faculty: &models.FacultyRef{ID: "f1"}},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFacultyDisplayName(tt.apt); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// A formatted faculty name fed back through the formatter must never gain a
// second title.
func TestFormatFacultyDisplayNameIdempotent(t *testing.T) {
	apt := models.Appointment{
		FacultyName: "Mehmet Kaya",
		Faculty:     &models.FacultyRef{Title: "Öğr.Gör."},
	}
	first := FormatFacultyDisplayName(apt)

	again := models.Appointment{
		FacultyName: first,
		Faculty:     &models.FacultyRef{Title: "Öğr.Gör."},
	}
	if got := FormatFacultyDisplayName(again); got != first {
		t.Errorf("second pass changed the name: %q -> %q", first, got)
	}
}

func TestFormatStudentDisplayName(t *testing.T) {
	tests := []struct {
		name string
		apt  models.Appointment
		want string
	}{
		{"embedded name wins", models.Appointment{Student: &models.StudentRef{Name: "Ayşe Yılmaz"}, StudentName: "other"}, "Ayşe Yılmaz"},
		{"flat name fallback", models.Appointment{StudentName: "Ayşe Yılmaz"}, "Ayşe Yılmaz"},
		{"bare reference id yields empty", models.Appointment{Student: &models.StudentRef{ID: "s1"}}, ""},
		{"nothing", models.Appointment{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatStudentDisplayName(tt.apt); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasHonorific(t *testing.T) {
	for _, name := range []string{"Prof. X", "doç. y", "DR. Z", "Öğr.Gör. A", "Arş.Gör. B"} {
		if !HasHonorific(name) {
			t.Errorf("expected %q to be recognized", name)
		}
	}
	for _, name := range []string{"Mehmet Kaya", "", "Profesyonel Danışman"} {
		if HasHonorific(name) {
			t.Errorf("did not expect %q to be recognized", name)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"2025-01-01", "01.01.2025"},
		{"2025-01-01T10:00:00Z", "01.01.2025"},
		{"", "-"},
		{"not-a-date", "-"},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.raw); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
