package ports

import (
	"context"

	"github.com/bnema/studyplan-cli/internal/domain"
)

// Gateway is the request/response surface of the study-planning service.
// Implementations attach the session credential to protected calls.
type Gateway interface {
	Login(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, name, email, password string) error

	ListPlans(ctx context.Context) ([]domain.SavedPlan, error)
	CreatePlan(ctx context.Context, subject string, hoursPerWeek int) (domain.SavedPlan, error)

	SmartPlan(ctx context.Context, input domain.StudyPlanInput) (domain.SmartPlanResult, error)

	GenerateTimetable(ctx context.Context, input domain.StudyPlanInput) (domain.TimetableRecord, error)
	// LatestTimetable returns domain.ErrTimetableNotFound when the session
	// has no saved timetable yet.
	LatestTimetable(ctx context.Context) (domain.TimetableRecord, error)

	WeeklyProgress(ctx context.Context) (float64, error)
}
