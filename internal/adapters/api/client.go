package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bnema/studyplan-cli/internal/domain"
	"github.com/bnema/studyplan-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

// TokenSource supplies the current session credential; empty means
// unauthenticated.
type TokenSource interface {
	Token() string
}

// Client talks to the study-planning backend. Protected calls carry the
// token from the TokenSource as a bearer credential.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

var _ ports.Gateway = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client, tokens TokenSource) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var decoded loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &decoded)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(decoded.AccessToken) == "" {
		return "", &domain.DataShapeError{Operation: "login", Field: "access_token"}
	}

	return decoded.AccessToken, nil
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Signup(ctx context.Context, name, email, password string) error {
	var decoded struct {
		Message string `json:"message"`
	}

	return c.do(ctx, http.MethodPost, "/auth/signup", signupRequest{Name: name, Email: email, Password: password}, &decoded)
}

type planPayload struct {
	ID      int64  `json:"id"`
	Subject string `json:"subject"`
	Hours   int    `json:"hours"`
}

func (c *Client) ListPlans(ctx context.Context) ([]domain.SavedPlan, error) {
	var decoded []planPayload
	if err := c.do(ctx, http.MethodGet, "/study/", nil, &decoded); err != nil {
		return nil, err
	}

	plans := make([]domain.SavedPlan, 0, len(decoded))
	for _, entry := range decoded {
		plans = append(plans, domain.SavedPlan{
			ID:           entry.ID,
			Subject:      entry.Subject,
			HoursPerWeek: entry.Hours,
		})
	}

	return plans, nil
}

type createPlanRequest struct {
	Subject string `json:"subject"`
	Hours   int    `json:"hours"`
}

func (c *Client) CreatePlan(ctx context.Context, subject string, hoursPerWeek int) (domain.SavedPlan, error) {
	var decoded planPayload
	err := c.do(ctx, http.MethodPost, "/study/", createPlanRequest{Subject: subject, Hours: hoursPerWeek}, &decoded)
	if err != nil {
		return domain.SavedPlan{}, err
	}

	return domain.SavedPlan{
		ID:           decoded.ID,
		Subject:      decoded.Subject,
		HoursPerWeek: decoded.Hours,
	}, nil
}

type planComputeRequest struct {
	Subject    string `json:"subject"`
	Hours      int    `json:"hours"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

type smartPlanResponse struct {
	Subject         string             `json:"subject"`
	WeeklyHours     int                `json:"weekly_hours"`
	Breakdown       map[string]float64 `json:"breakdown"`
	DailySuggestion string             `json:"daily_suggestion"`
	Tips            []string           `json:"tips"`
}

func (c *Client) SmartPlan(ctx context.Context, input domain.StudyPlanInput) (domain.SmartPlanResult, error) {
	var decoded smartPlanResponse
	err := c.do(ctx, http.MethodPost, "/smart-plan/", planComputeRequest{
		Subject:    input.Subject,
		Hours:      input.HoursPerWeek,
		Category:   string(input.Category),
		Difficulty: string(input.Difficulty),
	}, &decoded)
	if err != nil {
		return domain.SmartPlanResult{}, err
	}
	if decoded.Breakdown == nil {
		return domain.SmartPlanResult{}, &domain.DataShapeError{Operation: "smart plan", Field: "breakdown"}
	}

	return domain.SmartPlanResult{
		Subject:         decoded.Subject,
		WeeklyHours:     decoded.WeeklyHours,
		Breakdown:       decoded.Breakdown,
		DailySuggestion: decoded.DailySuggestion,
		Tips:            decoded.Tips,
	}, nil
}

type timetableResponse struct {
	Timetable map[string][]string `json:"timetable"`
	Subject   string              `json:"subject"`
}

func (c *Client) GenerateTimetable(ctx context.Context, input domain.StudyPlanInput) (domain.TimetableRecord, error) {
	var decoded timetableResponse
	err := c.do(ctx, http.MethodPost, "/ai-timetable/", planComputeRequest{
		Subject:    input.Subject,
		Hours:      input.HoursPerWeek,
		Category:   string(input.Category),
		Difficulty: string(input.Difficulty),
	}, &decoded)
	if err != nil {
		return domain.TimetableRecord{}, err
	}
	if decoded.Timetable == nil {
		return domain.TimetableRecord{}, &domain.DataShapeError{Operation: "timetable", Field: "timetable"}
	}

	subject := decoded.Subject
	if subject == "" {
		subject = input.Subject
	}

	return domain.TimetableRecord{Subject: subject, Days: decoded.Timetable}, nil
}

func (c *Client) LatestTimetable(ctx context.Context) (domain.TimetableRecord, error) {
	var decoded timetableResponse
	err := c.do(ctx, http.MethodGet, "/ai-timetable/latest", nil, &decoded)
	if err != nil {
		var statusErr *statusError
		if errors.As(err, &statusErr) && statusErr.code == http.StatusNotFound {
			return domain.TimetableRecord{}, domain.ErrTimetableNotFound
		}
		return domain.TimetableRecord{}, err
	}
	if decoded.Timetable == nil {
		return domain.TimetableRecord{}, &domain.DataShapeError{Operation: "latest timetable", Field: "timetable"}
	}

	return domain.TimetableRecord{Subject: decoded.Subject, Days: decoded.Timetable}, nil
}

func (c *Client) WeeklyProgress(ctx context.Context) (float64, error) {
	var decoded struct {
		TotalHours *float64 `json:"total_hours"`
	}
	if err := c.do(ctx, http.MethodGet, "/progress/weekly", nil, &decoded); err != nil {
		return 0, err
	}
	if decoded.TotalHours == nil {
		return 0, &domain.DataShapeError{Operation: "weekly progress", Field: "total_hours"}
	}

	return *decoded.TotalHours, nil
}

type statusError struct {
	code   int
	detail string
}

func (e *statusError) Error() string {
	if e.detail != "" {
		return fmt.Sprintf("status %d: %s", e.code, e.detail)
	}

	return fmt.Sprintf("status %d", e.code)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("User-Agent", "sp/client")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			request.Header.Set("Authorization", "Bearer "+token)
		}
	}

	response, err := c.http.Do(request)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	data, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		detail := detailFromBody(data)
		if response.StatusCode == http.StatusUnauthorized ||
			response.StatusCode == http.StatusForbidden ||
			(response.StatusCode == http.StatusBadRequest && strings.HasPrefix(path, "/auth/")) {
			return &domain.AuthError{StatusCode: response.StatusCode, Detail: detail}
		}
		return &statusError{code: response.StatusCode, detail: detail}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// detailFromBody extracts the backend's {"detail": "..."} error field.
func detailFromBody(data []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return strings.TrimSpace(string(data))
	}
	if payload.Detail != "" {
		return payload.Detail
	}

	return strings.TrimSpace(string(data))
}
