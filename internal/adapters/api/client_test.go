package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/studyplan-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func TestLoginReturnsAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user@example.com", body["email"])
		assert.Equal(t, "hunter2", body["password"])

		_, _ = fmt.Fprint(w, `{"access_token":"tok-123","token_type":"bearer"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, staticTokens(""))

	token, err := client.Login(context.Background(), "user@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestLoginSurfacesServerDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = fmt.Fprint(w, `{"detail":"Invalid credentials"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, staticTokens(""))

	_, err := client.Login(context.Background(), "user@example.com", "wrong")
	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid credentials", authErr.Detail)
	assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
}

func TestLoginMissingTokenIsShapeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"token_type":"bearer"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, staticTokens(""))

	_, err := client.Login(context.Background(), "user@example.com", "hunter2")
	var shapeErr *domain.DataShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "access_token", shapeErr.Field)
}

func TestSignupConflictSurfacesDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/signup", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = fmt.Fprint(w, `{"detail":"Email already exists"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, staticTokens(""))

	err := client.Signup(context.Background(), "Ada", "ada@example.com", "hunter2")
	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Email already exists", authErr.Detail)
}

func TestListPlansAttachesBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_, _ = fmt.Fprint(w, `[{"id":1,"subject":"Math","hours":10},{"id":2,"subject":"Physics","hours":6}]`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, staticTokens("tok-123"))

	plans, err := client.ListPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, domain.SavedPlan{ID: 1, Subject: "Math", HoursPerWeek: 10}, plans[0])
	assert.Equal(t, domain.SavedPlan{ID: 2, Subject: "Physics", HoursPerWeek: 6}, plans[1])
}

func TestCreatePlanReturnsServerAssignedID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Math", body["subject"])
		assert.Equal(t, float64(10), body["hours"])

		_, _ = fmt.Fprint(w, `{"id":7,"subject":"Math","hours":10}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, staticTokens("tok-123"))

	plan, err := client.CreatePlan(context.Background(), "Math", 10)
	require.NoError(t, err)
	assert.Equal(t, domain.SavedPlan{ID: 7, Subject: "Math", HoursPerWeek: 10}, plan)
}

func TestSmartPlanRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/smart-plan/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "problem", body["category"])
		assert.Equal(t, "hard", body["difficulty"])

		_, _ = fmt.Fprint(w, `{"subject":"Math","weekly_hours":10,"breakdown":{"Practice":6,"Revision":2,"Concept Review":2},"daily_suggestion":"1.7 hrs/day (Mon–Sat)","tips":["Daily practice improves speed and accuracy."]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, staticTokens("tok-123"))

	result, err := client.SmartPlan(context.Background(), domain.StudyPlanInput{
		Subject:      "Math",
		HoursPerWeek: 10,
		Category:     domain.CategoryProblem,
		Difficulty:   domain.DifficultyHard,
	})
	require.NoError(t, err)
	assert.Equal(t, "Math", result.Subject)
	assert.Equal(t, 10, result.WeeklyHours)
	assert.InDelta(t, 6, result.Breakdown["Practice"], 0.001)
	assert.Equal(t, "1.7 hrs/day (Mon–Sat)", result.DailySuggestion)
	assert.Equal(t, []string{"Daily practice improves speed and accuracy."}, result.Tips)
}

func TestGenerateTimetableMissingFieldIsShapeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"message":"ok"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, staticTokens("tok-123"))

	_, err := client.GenerateTimetable(context.Background(), domain.StudyPlanInput{
		Subject:      "Math",
		HoursPerWeek: 10,
		Category:     domain.CategoryTheory,
		Difficulty:   domain.DifficultyEasy,
	})
	var shapeErr *domain.DataShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "timetable", shapeErr.Field)
}

func TestGenerateTimetableFallsBackToInputSubject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"timetable":{"Monday":["Integrals"],"Sunday":["Light revision"]}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, staticTokens("tok-123"))

	record, err := client.GenerateTimetable(context.Background(), domain.StudyPlanInput{
		Subject:      "Math",
		HoursPerWeek: 10,
		Category:     domain.CategoryTheory,
		Difficulty:   domain.DifficultyEasy,
	})
	require.NoError(t, err)
	assert.Equal(t, "Math", record.Subject)
	assert.Equal(t, []string{"Integrals"}, record.Days["Monday"])
}

func TestLatestTimetableNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = fmt.Fprint(w, `{"detail":"No timetable found"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, staticTokens("tok-123"))

	_, err := client.LatestTimetable(context.Background())
	assert.ErrorIs(t, err, domain.ErrTimetableNotFound)
}

func TestLatestTimetableReturnsRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ai-timetable/latest", r.URL.Path)
		_, _ = fmt.Fprint(w, `{"timetable":{"Monday":["Ch 1"],"Tuesday":["Ch 2"]},"subject":"Physics"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, staticTokens("tok-123"))

	record, err := client.LatestTimetable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Physics", record.Subject)
	assert.Len(t, record.Days, 2)
}

func TestWeeklyProgress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/progress/weekly", r.URL.Path)
		_, _ = fmt.Fprint(w, `{"total_hours":16}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, staticTokens("tok-123"))

	hours, err := client.WeeklyProgress(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 16, hours, 0.001)
}

func TestWeeklyProgressMissingFieldIsShapeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, staticTokens("tok-123"))

	_, err := client.WeeklyProgress(context.Background())
	var shapeErr *domain.DataShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "total_hours", shapeErr.Field)
}

func TestNetworkFailureWrapsTransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", nil, staticTokens(""))

	_, err := client.ListPlans(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "perform request")
}
