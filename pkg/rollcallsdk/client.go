package rollcallsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is a minimal Go client for the rollcall HTTP API.
// It is safe for concurrent use once the token is set.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying *http.Client (timeouts, transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient returns a Client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken sets the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the currently configured bearer token.
func (c *Client) Token() string { return c.token }

// do performs an HTTP request and decodes a JSON response into out
// (out may be nil when the caller only cares about the status).
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("rollcallsdk: marshal request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("rollcallsdk: build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rollcallsdk: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("rollcallsdk: read response: %w", err)
	}

	if err := parseErrorResponse(resp, raw); err != nil {
		return err
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("rollcallsdk: decode response: %w", err)
		}
	}
	return nil
}

// ============================================================================
// Auth
// ============================================================================

func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", req, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", req, &out)
	return out, err
}

// ============================================================================
// Committees & membership
// ============================================================================

func (c *Client) ListCommittees(ctx context.Context) ([]CommitteeSummary, error) {
	var out []CommitteeSummary
	err := c.do(ctx, http.MethodGet, "/committees", nil, &out)
	return out, err
}

func (c *Client) MyCommittees(ctx context.Context) ([]CommitteeSummary, error) {
	var out []CommitteeSummary
	err := c.do(ctx, http.MethodGet, "/committees/my", nil, &out)
	return out, err
}

func (c *Client) GetCommittee(ctx context.Context, committeeID string) (CommitteeDetail, error) {
	var out CommitteeDetail
	err := c.do(ctx, http.MethodGet, "/committees/"+url.PathEscape(committeeID), nil, &out)
	return out, err
}

func (c *Client) CreateCommittee(ctx context.Context, req CreateCommitteeRequest) (CommitteeResponse, error) {
	var out CommitteeResponse
	err := c.do(ctx, http.MethodPost, "/committees", req, &out)
	return out, err
}

func (c *Client) AddMember(ctx context.Context, committeeID, userID string) (MemberResponse, error) {
	var out MemberResponse
	path := "/committees/" + url.PathEscape(committeeID) + "/members"
	err := c.do(ctx, http.MethodPost, path, AddMemberRequest{UserID: userID}, &out)
	return out, err
}

func (c *Client) RemoveMember(ctx context.Context, committeeID, userID string) error {
	path := "/committees/" + url.PathEscape(committeeID) + "/members/" + url.PathEscape(userID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ============================================================================
// Meetings
// ============================================================================

func (c *Client) CreateMeeting(ctx context.Context, req CreateMeetingRequest) (MeetingResponse, error) {
	var out MeetingResponse
	err := c.do(ctx, http.MethodPost, "/meetings", req, &out)
	return out, err
}

func (c *Client) UpdateMeetingStatus(ctx context.Context, meetingID, status string) (MeetingResponse, error) {
	var out MeetingResponse
	path := "/meetings/" + url.PathEscape(meetingID) + "/status"
	err := c.do(ctx, http.MethodPatch, path, UpdateMeetingStatusRequest{Status: status}, &out)
	return out, err
}

// ListCommitteeMeetings pages through a committee's meetings, newest first.
// status may be empty to list all statuses.
func (c *Client) ListCommitteeMeetings(ctx context.Context, committeeID, status string, limit, offset int) (MeetingListResponse, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}

	path := "/meetings/committee/" + url.PathEscape(committeeID)
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var out MeetingListResponse
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) MyUpcomingMeetings(ctx context.Context) ([]UpcomingMeeting, error) {
	var out []UpcomingMeeting
	err := c.do(ctx, http.MethodGet, "/meetings/my-upcoming", nil, &out)
	return out, err
}

func (c *Client) GetMeeting(ctx context.Context, meetingID string) (MeetingDetail, error) {
	var out MeetingDetail
	err := c.do(ctx, http.MethodGet, "/meetings/"+url.PathEscape(meetingID), nil, &out)
	return out, err
}

// ============================================================================
// Attendance
// ============================================================================

func (c *Client) MarkAttendance(ctx context.Context, meetingID, status string) (AttendanceResponse, error) {
	var out AttendanceResponse
	err := c.do(ctx, http.MethodPost, "/attendance/mark", MarkAttendanceRequest{
		MeetingID: meetingID,
		Status:    status,
	}, &out)
	return out, err
}

func (c *Client) MyMeetingAttendance(ctx context.Context, meetingID string) (AttendanceDetail, error) {
	var out AttendanceDetail
	err := c.do(ctx, http.MethodGet, "/attendance/meeting/"+url.PathEscape(meetingID), nil, &out)
	return out, err
}

func (c *Client) MeetingAttendance(ctx context.Context, meetingID string) (MeetingRosterResponse, error) {
	var out MeetingRosterResponse
	err := c.do(ctx, http.MethodGet, "/attendance/meeting/"+url.PathEscape(meetingID)+"/all", nil, &out)
	return out, err
}

// ============================================================================
// Reports
// ============================================================================

func (c *Client) CommitteeReport(ctx context.Context, committeeID, startDate, endDate string) (CommitteeReport, error) {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)

	var out CommitteeReport
	path := "/reports/committee/" + url.PathEscape(committeeID) + "?" + q.Encode()
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// MemberReport fetches a member's attendance report. committeeID may be empty
// to cover all of the member's committees.
func (c *Client) MemberReport(ctx context.Context, userID, startDate, endDate, committeeID string) (MemberReport, error) {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	if committeeID != "" {
		q.Set("committeeId", committeeID)
	}

	var out MemberReport
	path := "/reports/member/" + url.PathEscape(userID) + "?" + q.Encode()
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// ============================================================================
// Health
// ============================================================================

func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", nil, &out)
	return out, err
}

func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", nil, &out)
	return out, err
}
