package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestFetchAppointmentsBareList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/appointments/student/s1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[{"_id":"a1","date":"2025-01-01","status":"approved"}]`))
	})

	apts, err := c.FetchStudentAppointments(context.Background(), "s1")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(apts) != 1 || apts[0].ID != "a1" {
		t.Errorf("got %+v", apts)
	}
}

func TestFetchAppointmentsWrapped(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"appointments":[{"_id":"a1"},{"_id":"a2"}]}`))
	})

	apts, err := c.FetchAllAppointments(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(apts) != 2 {
		t.Errorf("expected 2 appointments, got %d", len(apts))
	}
}

func TestFetchAppointmentsUpstreamFailureFlag(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"appointments":[]}`))
	})

	if _, err := c.FetchFacultyAppointments(context.Background(), "f1"); err == nil {
		t.Error("expected an error for success:false")
	}
}

func TestFetchAppointmentsHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	if _, err := c.FetchAllAppointments(context.Background()); err == nil {
		t.Error("expected an error for status 500")
	}
}

func TestFetchUserByID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/u1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"user":{"_id":"u1","name":"Ayşe Yılmaz","role":"student"}}`))
	})

	user, err := c.FetchUserByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if user.Name != "Ayşe Yılmaz" || user.Role != "student" {
		t.Errorf("got %+v", user)
	}
}

func TestFetchUserByIDBareObject(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"_id":"u1","name":"Mehmet Kaya","role":"faculty","title":"Prof."}`))
	})

	user, err := c.FetchUserByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if user.Title != "Prof." {
		t.Errorf("got %+v", user)
	}
}

func TestFetchTopics(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"topics":[{"_id":"t1","name":"Tez"},{"_id":2,"name":"Staj"}]}`))
	})

	topics, err := c.FetchTopics(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(topics))
	}
	// numeric ids arrive stringified
	if string(topics[1].ID) != "2" {
		t.Errorf("expected stringified id, got %q", topics[1].ID)
	}
}

func TestFetchUsersWithRole(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("role"); got != "faculty" {
			t.Errorf("role query = %q", got)
		}
		w.Write([]byte(`{"success":true,"users":[{"_id":"f1","name":"Mehmet Kaya","role":"faculty"}]}`))
	})

	users, err := c.FetchUsers(context.Background(), "faculty")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(users) != 1 || users[0].ID != "f1" {
		t.Errorf("got %+v", users)
	}
}
