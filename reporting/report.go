package reporting

import (
	"errors"
	"strings"
	"time"

	"github.com/huseyin4215/QRCal-sub002/formatting"
	"github.com/huseyin4215/QRCal-sub002/models"
)

// Display fallbacks for fields nothing could resolve.
const (
	unknownPerson    = "Bilinmiyor"
	unspecifiedTopic = "Belirtilmedi"
)

var (
	// ErrInvalidInput marks a report request over a collection that never
	// materialized (nil instead of a list).
	ErrInvalidInput = errors.New("appointment list is not usable")
	// ErrEmptyInput marks a report request with nothing to export.
	ErrEmptyInput = errors.New("no appointments to report")
)

// BuildTopicLookup indexes topics by stringified id. Entries missing either
// field are skipped; later duplicate ids overwrite earlier ones.
func BuildTopicLookup(topics []models.Topic) map[string]string {
	lookup := make(map[string]string, len(topics))
	for _, t := range topics {
		id := strings.TrimSpace(string(t.ID))
		name := strings.TrimSpace(t.Name)
		if id == "" || name == "" {
			continue
		}
		lookup[id] = name
	}
	return lookup
}

// ResolveTopicName resolves the topic column for an appointment: flat
// topicName field, embedded topic name, lookup by reference id, the raw
// reference itself, and finally the unspecified fallback.
func ResolveTopicName(a models.Appointment, lookup map[string]string) string {
	if name := strings.TrimSpace(a.TopicName); name != "" {
		return name
	}
	if a.Topic != nil {
		if name := strings.TrimSpace(a.Topic.Name); name != "" {
			return name
		}
		if name := lookup[strings.TrimSpace(a.Topic.ID)]; name != "" {
			return name
		}
		if raw := strings.TrimSpace(a.Topic.Raw); raw != "" {
			return raw
		}
	}
	return unspecifiedTopic
}

func orUnknown(name string) string {
	if name == "" {
		return unknownPerson
	}
	return name
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// BuildRows converts appointments into printable report rows, one per
// appointment in input order.
func BuildRows(appointments []models.Appointment, lookup map[string]string) ([]models.ReportRow, error) {
	if appointments == nil {
		return nil, ErrInvalidInput
	}
	if len(appointments) == 0 {
		return nil, ErrEmptyInput
	}
	rows := make([]models.ReportRow, 0, len(appointments))
	for _, a := range appointments {
		rows = append(rows, models.ReportRow{
			Student: orUnknown(formatting.FormatStudentDisplayName(a)),
			Faculty: orUnknown(formatting.FormatFacultyDisplayName(a)),
			Topic:   ResolveTopicName(a, lookup),
			Date:    formatting.FormatDate(a.Date),
			Time:    orDash(a.StartTime),
			Status:  models.StatusLabel(a.Status),
		})
	}
	return rows, nil
}

// ComputeStats counts the set by exact status match and stamps the
// generation time.
func ComputeStats(appointments []models.Appointment) models.ReportStats {
	stats := models.ReportStats{Total: len(appointments), GeneratedAt: time.Now()}
	for _, a := range appointments {
		switch a.Status {
		case models.StatusApproved:
			stats.Approved++
		case models.StatusRejected:
			stats.Rejected++
		case models.StatusPending:
			stats.Pending++
		case models.StatusNoResponse:
			stats.NoResponse++
		case models.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats
}
