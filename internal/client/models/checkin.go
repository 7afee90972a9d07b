package models

import "time"

type Checkin struct {
	CheckinID   int64     `json:"checkin_id"`
	UserID      int64     `json:"user_id"`
	PlanID      int64     `json:"plan_id"`
	PlanTitle   string    `json:"plan_title,omitempty"`
	Hours       float64   `json:"hours"`
	Content     string    `json:"content"`
	CheckinDate string    `json:"checkin_date"`
	CreatedAt   time.Time `json:"created_at"`
}

type CheckinList struct {
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Items    []Checkin `json:"items"`
}

type CheckinCreate struct {
	PlanID      int64   `json:"plan_id"`
	Hours       float64 `json:"hours"`
	Content     string  `json:"content"`
	CheckinDate string  `json:"checkin_date,omitempty"`
}

type CheckinUpdate struct {
	Hours   *float64 `json:"hours,omitempty"`
	Content *string  `json:"content,omitempty"`
}

// TodayCheckin is the aggregate the server derives for the current day.
// TotalHours is zero when nothing has been recorded yet.
type TodayCheckin struct {
	Date       string    `json:"date"`
	CheckedIn  bool      `json:"checked_in"`
	TotalHours float64   `json:"total_hours"`
	Checkins   []Checkin `json:"checkins"`
}

type DailyStats struct {
	Date         string  `json:"date"`
	Hours        float64 `json:"hours"`
	CheckinCount int     `json:"checkin_count"`
}

type CheckinStats struct {
	Period         string       `json:"period"`
	TotalHours     float64      `json:"total_hours"`
	TotalDays      int          `json:"total_days"`
	CheckinCount   int          `json:"checkin_count"`
	AvgHoursPerDay float64      `json:"avg_hours_per_day"`
	CheckinRate    float64      `json:"checkin_rate"`
	DailyStats     []DailyStats `json:"daily_stats"`
}

// CheckinFilter holds the optional query parameters of the check-in list
// and stats endpoints.
type CheckinFilter struct {
	PlanID    int64
	StartDate string
	EndDate   string
	Period    string
	Page      int
	PageSize  int
}
