package models

import "time"

type AIReport struct {
	WeekStart        string         `json:"week_start"`
	WeekEnd          string         `json:"week_end"`
	GeneratedAt      time.Time      `json:"generated_at"`
	Score            map[string]any `json:"score"`
	Summary          map[string]any `json:"summary"`
	Issues           []string       `json:"issues"`
	Suggestions      []string       `json:"suggestions"`
	RecommendedHours float64        `json:"recommended_hours"`
}

type AIReportGenerate struct {
	UserID    int64  `json:"user_id"`
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`
}

// AIReportTask acknowledges an asynchronous report generation request.
type AIReportTask struct {
	TaskID        string `json:"task_id"`
	Status        string `json:"status"`
	EstimatedTime int    `json:"estimated_time"`
}

type CoachRequest struct {
	LearningGoal           string  `json:"learning_goal"`
	WeeklyTotalHours       float64 `json:"weekly_total_hours"`
	AverageDailyHours      float64 `json:"average_daily_hours"`
	TargetDailyHours       float64 `json:"target_daily_hours"`
	ConsecutiveCheckinDays int     `json:"consecutive_checkin_days"`
	MissedCheckinDays      int     `json:"missed_checkin_days"`
}

type CoachAdvice struct {
	Advice string `json:"advice"`
}

type CheckinAnalysisRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type CheckinAnalysis struct {
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Analysis    string   `json:"analysis"`
	Suggestions []string `json:"suggestions,omitempty"`
}
