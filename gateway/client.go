package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/huseyin4215/QRCal-sub002/configuration"
	"github.com/huseyin4215/QRCal-sub002/models"
)

var errUpstreamFailure = errors.New("upstream reported failure")

// Client talks to the upstream appointment API. It only ever reads; every
// failure is returned to the caller, which degrades to an empty view.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) getJSON(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("upstream %s: %w", path, err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream %s: status %d", path, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("upstream %s: %w", path, err)
	}
	return body, nil
}

// cachedJSON serves from Redis when a fresh copy is there, otherwise goes
// upstream and caches the body.
func (c *Client) cachedJSON(ctx context.Context, path string) ([]byte, error) {
	if raw, err := configuration.GetRedis("upstream:" + path); err == nil && raw != "" {
		return []byte(raw), nil
	}
	body, err := c.getJSON(ctx, path)
	if err != nil {
		return nil, err
	}
	// cache write problems never fail the request
	_ = configuration.SetRedis("upstream:"+path, string(body), configuration.Cfg.CacheTTL)
	return body, nil
}

// decodeAppointments accepts both payload shapes the upstream emits: a bare
// array, or {success, appointments: [...]}.
func decodeAppointments(body []byte) ([]models.Appointment, error) {
	var bare []models.Appointment
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}
	var wrapped struct {
		Success      *bool                `json:"success"`
		Appointments []models.Appointment `json:"appointments"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	if wrapped.Success != nil && !*wrapped.Success {
		return nil, errUpstreamFailure
	}
	return wrapped.Appointments, nil
}

func (c *Client) fetchAppointments(ctx context.Context, path string) ([]models.Appointment, error) {
	body, err := c.cachedJSON(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeAppointments(body)
}

// FetchStudentAppointments loads the history a student sees of themselves.
func (c *Client) FetchStudentAppointments(ctx context.Context, id string) ([]models.Appointment, error) {
	return c.fetchAppointments(ctx, "/appointments/student/"+url.PathEscape(id))
}

// FetchFacultyAppointments loads the history a faculty member sees of
// themselves.
func (c *Client) FetchFacultyAppointments(ctx context.Context, id string) ([]models.Appointment, error) {
	return c.fetchAppointments(ctx, "/appointments/faculty/"+url.PathEscape(id))
}

// FetchAllAppointments loads every appointment; admin views narrow this down
// client-side.
func (c *Client) FetchAllAppointments(ctx context.Context) ([]models.Appointment, error) {
	return c.fetchAppointments(ctx, "/appointments")
}

// FetchUserByID resolves a profile, accepting {success, user: {...}} or a
// bare user object.
func (c *Client) FetchUserByID(ctx context.Context, id string) (models.User, error) {
	body, err := c.cachedJSON(ctx, "/users/"+url.PathEscape(id))
	if err != nil {
		return models.User{}, err
	}

	var wrapped struct {
		Success *bool        `json:"success"`
		User    *models.User `json:"user"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.User != nil {
		if wrapped.Success != nil && !*wrapped.Success {
			return models.User{}, errUpstreamFailure
		}
		return *wrapped.User, nil
	}

	var bare models.User
	if err := json.Unmarshal(body, &bare); err != nil {
		return models.User{}, fmt.Errorf("decode user: %w", err)
	}
	if bare.ID == "" {
		return models.User{}, errors.New("user not found")
	}
	return bare, nil
}

// FetchUsers loads the account roster, optionally narrowed to one role.
func (c *Client) FetchUsers(ctx context.Context, role string) ([]models.User, error) {
	path := "/users"
	if role != "" {
		path += "?role=" + url.QueryEscape(role)
	}
	body, err := c.cachedJSON(ctx, path)
	if err != nil {
		return nil, err
	}

	var bare []models.User
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}
	var wrapped struct {
		Success *bool         `json:"success"`
		Users   []models.User `json:"users"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	if wrapped.Success != nil && !*wrapped.Success {
		return nil, errUpstreamFailure
	}
	return wrapped.Users, nil
}

// FetchTopics loads the optional topic lookup list used by the PDF export.
func (c *Client) FetchTopics(ctx context.Context) ([]models.Topic, error) {
	body, err := c.cachedJSON(ctx, "/topics")
	if err != nil {
		return nil, err
	}

	var bare []models.Topic
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}
	var wrapped struct {
		Topics []models.Topic `json:"topics"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("decode topics: %w", err)
	}
	return wrapped.Topics, nil
}
