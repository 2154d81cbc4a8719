package filtering

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/huseyin4215/QRCal-sub002/formatting"
	"github.com/huseyin4215/QRCal-sub002/models"
)

// Buckets partition appointments by their temporal relation to "now".
const (
	BucketAll      = "all"
	BucketPast     = "past"
	BucketUpcoming = "upcoming"
)

// Counts carries the bucket tallies shown next to the filter tabs. They are
// computed over the text-unfiltered set so the totals stay stable while the
// user types a query.
type Counts struct {
	All      int `json:"all"`
	Past     int `json:"past"`
	Upcoming int `json:"upcoming"`
}

// lowerTurkish folds case with Turkish rules, so a dotted İ matches i. A
// fresh caser per call: cases.Caser is not safe for concurrent use.
func lowerTurkish(s string) string {
	return cases.Lower(language.Turkish).String(s)
}

// StartInstant combines the appointment's date and start time into a single
// instant in loc. A missing or malformed start time counts as midnight.
func StartInstant(a models.Appointment, loc *time.Location) (time.Time, bool) {
	day, ok := formatting.ParseDate(a.Date)
	if !ok {
		return time.Time{}, false
	}
	h, m := 0, 0
	if hm, err := time.Parse("15:04", strings.TrimSpace(a.StartTime)); err == nil {
		h, m = hm.Hour(), hm.Minute()
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc), true
}

// IsPast reports whether the appointment starts strictly before now.
// Appointments without a parseable date are treated as upcoming.
func IsPast(a models.Appointment, now time.Time) bool {
	at, ok := StartInstant(a, now.Location())
	if !ok {
		return false
	}
	return at.Before(now)
}

// CountBuckets tallies all/past/upcoming over the full input, independent of
// any active text query.
func CountBuckets(appointments []models.Appointment, now time.Time) Counts {
	c := Counts{All: len(appointments)}
	for _, a := range appointments {
		if IsPast(a, now) {
			c.Past++
		} else {
			c.Upcoming++
		}
	}
	return c
}

func topicText(a models.Appointment) string {
	if a.TopicName != "" {
		return a.TopicName
	}
	if a.Topic != nil {
		if a.Topic.Name != "" {
			return a.Topic.Name
		}
		return a.Topic.Raw
	}
	return ""
}

func studentEmail(a models.Appointment) string {
	if a.Student != nil {
		return a.Student.Email
	}
	return ""
}

// searchCorpus joins every displayable field of the appointment into one
// case-folded string for substring matching.
func searchCorpus(a models.Appointment) string {
	parts := []string{
		topicText(a),
		a.Description,
		formatting.FormatFacultyDisplayName(a),
		formatting.FormatStudentDisplayName(a),
		studentEmail(a),
		formatting.FormatDate(a.Date),
		a.StartTime,
		a.EndTime,
		models.StatusLabel(a.Status),
		a.RejectionReason,
		a.CancellationReason,
	}
	return lowerTurkish(strings.Join(parts, " "))
}

// Apply runs the bucket gate and then the text gate over the appointments,
// preserving input order. The bucket gate runs first since it is the cheaper
// of the two; the result does not depend on the order.
func Apply(appointments []models.Appointment, bucket, query string, now time.Time) []models.Appointment {
	q := lowerTurkish(strings.TrimSpace(query))
	out := make([]models.Appointment, 0, len(appointments))
	for _, a := range appointments {
		switch bucket {
		case BucketPast:
			if !IsPast(a, now) {
				continue
			}
		case BucketUpcoming:
			if IsPast(a, now) {
				continue
			}
		}
		if q != "" && !strings.Contains(searchCorpus(a), q) {
			continue
		}
		out = append(out, a)
	}
	return out
}
