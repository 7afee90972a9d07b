package models

import "time"

// Plan statuses as reported by the server.
const (
	PlanStatusActive    = "active"
	PlanStatusCompleted = "completed"
	PlanStatusArchived  = "archived"
)

type Plan struct {
	PlanID         int64          `json:"plan_id"`
	UserID         int64          `json:"user_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	DailyGoalHours float64        `json:"daily_goal_hours"`
	StartDate      string         `json:"start_date"`
	EndDate        string         `json:"end_date,omitempty"`
	Status         string         `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	Progress       map[string]any `json:"progress,omitempty"`
}

type PlanList struct {
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Items    []Plan `json:"items"`
}

type PlanCreate struct {
	Title          string  `json:"title"`
	Description    string  `json:"description,omitempty"`
	DailyGoalHours float64 `json:"daily_goal_hours"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date,omitempty"`
}

// PlanUpdate carries only the fields to change; nil fields are omitted.
type PlanUpdate struct {
	Title          *string  `json:"title,omitempty"`
	Description    *string  `json:"description,omitempty"`
	DailyGoalHours *float64 `json:"daily_goal_hours,omitempty"`
	EndDate        *string  `json:"end_date,omitempty"`
	Status         *string  `json:"status,omitempty"`
}

// PlanFilter holds the optional query parameters of the plan list endpoint.
type PlanFilter struct {
	Status   string
	Page     int
	PageSize int
}
