package domain

import "strings"

type Category string

const (
	CategoryTheory    Category = "theory"
	CategoryProblem   Category = "problem"
	CategoryPractical Category = "practical"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryTheory, CategoryProblem, CategoryPractical:
		return true
	default:
		return false
	}
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// StudyPlanInput is the shared form read by the create, smart-plan and
// timetable operations at the moment they fire.
type StudyPlanInput struct {
	Subject      string
	HoursPerWeek int
	Category     Category
	Difficulty   Difficulty
}

// ValidateBasic checks the fields needed to create a saved plan.
func (in StudyPlanInput) ValidateBasic() error {
	var missing []string
	if strings.TrimSpace(in.Subject) == "" {
		missing = append(missing, "subject")
	}
	if in.HoursPerWeek <= 0 {
		missing = append(missing, "hours per week")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}

	return nil
}

// Validate checks the full form, as required by the smart-plan and
// timetable operations.
func (in StudyPlanInput) Validate() error {
	var missing []string
	if strings.TrimSpace(in.Subject) == "" {
		missing = append(missing, "subject")
	}
	if in.HoursPerWeek <= 0 {
		missing = append(missing, "hours per week")
	}
	if !in.Category.Valid() {
		missing = append(missing, "category")
	}
	if !in.Difficulty.Valid() {
		missing = append(missing, "difficulty")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}

	return nil
}

// SavedPlan is a server-owned study plan; the id is assigned on create.
type SavedPlan struct {
	ID           int64
	Subject      string
	HoursPerWeek int
}

// SmartPlanResult is the rule-based recommendation for one subject.
type SmartPlanResult struct {
	Subject         string
	WeeklyHours     int
	Breakdown       map[string]float64
	DailySuggestion string
	Tips            []string
}

// TimetableRecord is a server-computed weekly schedule. Days usually holds
// Monday through Sunday, but renderers must work with whatever keys are
// present.
type TimetableRecord struct {
	Subject string
	Days    map[string][]string
}
