package models

import "encoding/json"

// Appointment status codes as stored by the upstream API.
const (
	StatusPending    = "pending"
	StatusApproved   = "approved"
	StatusRejected   = "rejected"
	StatusCancelled  = "cancelled"
	StatusCompleted  = "completed"
	StatusNoResponse = "no_response"
)

var statusLabels = map[string]string{
	StatusPending:    "Beklemede",
	StatusApproved:   "Onaylandı",
	StatusRejected:   "Reddedildi",
	StatusCancelled:  "İptal Edildi",
	StatusCompleted:  "Tamamlandı",
	StatusNoResponse: "Yanıt Yok",
}

// StatusLabel maps a status code to its Turkish display text. Unknown codes
// come back unchanged.
func StatusLabel(code string) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return code
}

// FlexID decodes ids that arrive either as JSON strings or numbers and keeps
// them in stringified form.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexID(n.String())
	}
	return nil
}

type Topic struct {
	ID   FlexID `json:"_id"`
	Name string `json:"name"`
}

// TopicRef is the topic field of an appointment: either a bare reference id
// or an embedded topic object.
type TopicRef struct {
	ID   string
	Name string
	Raw  string
}

func (t *TopicRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.ID, t.Raw = s, s
		return nil
	}
	var obj struct {
		ID   FlexID `json:"_id"`
		Name string `json:"name"`
	}
	// unresolvable topics fall back to "Belirtilmedi" at render time
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	t.ID, t.Name, t.Raw = string(obj.ID), obj.Name, string(obj.ID)
	return nil
}

func (t TopicRef) MarshalJSON() ([]byte, error) {
	if t.Name != "" {
		return json.Marshal(struct {
			ID   string `json:"_id,omitempty"`
			Name string `json:"name"`
		}{t.ID, t.Name})
	}
	return json.Marshal(t.Raw)
}

// StudentRef is the student side of an appointment, either a bare id or an
// embedded object.
type StudentRef struct {
	ID            string `json:"_id"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	StudentNumber string `json:"studentNumber,omitempty"`
}

func (r *StudentRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.ID = s
		return nil
	}
	type alias StudentRef
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return nil
	}
	*r = StudentRef(a)
	return nil
}

// FacultyRef mirrors StudentRef for the faculty side and additionally
// carries the academic title.
type FacultyRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
	Email string `json:"email,omitempty"`
}

func (r *FacultyRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.ID = s
		return nil
	}
	type alias FacultyRef
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return nil
	}
	*r = FacultyRef(a)
	return nil
}

// Appointment is a read-only snapshot fetched from the upstream API. It is
// never written back.
type Appointment struct {
	ID                 string      `json:"_id"`
	Date               string      `json:"date"`
	StartTime          string      `json:"startTime"`
	EndTime            string      `json:"endTime"`
	Status             string      `json:"status"`
	Topic              *TopicRef   `json:"topic,omitempty"`
	TopicName          string      `json:"topicName,omitempty"`
	Description        string      `json:"description,omitempty"`
	RejectionReason    string      `json:"rejectionReason,omitempty"`
	CancellationReason string      `json:"cancellationReason,omitempty"`
	Student            *StudentRef `json:"student,omitempty"`
	StudentName        string      `json:"studentName,omitempty"`
	StudentID          string      `json:"studentId,omitempty"`
	Faculty            *FacultyRef `json:"faculty,omitempty"`
	FacultyName        string      `json:"facultyName,omitempty"`
	FacultyID          string      `json:"facultyId,omitempty"`
}
