package models

import "time"

type Group struct {
	GroupID     int64     `json:"group_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatorID   int64     `json:"creator_id"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// GroupList partitions the caller's groups into the ones they created and
// the ones they joined.
type GroupList struct {
	Created []Group `json:"created"`
	Joined  []Group `json:"joined"`
}

type GroupCreate struct {
	Name             string         `json:"name"`
	Description      string         `json:"description,omitempty"`
	DailyCheckinRule map[string]any `json:"daily_checkin_rule,omitempty"`
	AutoRemoveDays   int            `json:"auto_remove_days,omitempty"`
}

type GroupUpdate struct {
	Name           *string `json:"name,omitempty"`
	Description    *string `json:"description,omitempty"`
	AutoRemoveDays *int    `json:"auto_remove_days,omitempty"`
}

type GroupMember struct {
	UserID             int64     `json:"user_id"`
	Username           string    `json:"username"`
	AvatarURL          string    `json:"avatar_url,omitempty"`
	Role               string    `json:"role"`
	JoinedAt           time.Time `json:"joined_at"`
	LastCheckinDate    string    `json:"last_checkin_date,omitempty"`
	DaysWithoutCheckin int       `json:"days_without_checkin"`
}

type GroupMembers struct {
	GroupID      int64         `json:"group_id"`
	Name         string        `json:"name"`
	TotalMembers int           `json:"total_members"`
	Members      []GroupMember `json:"members"`
}

type GroupCheckinMember struct {
	UserID      int64      `json:"user_id"`
	Username    string     `json:"username"`
	Hours       float64    `json:"hours,omitempty"`
	CheckinTime *time.Time `json:"checkin_time,omitempty"`
}

type GroupCheckins struct {
	GroupID           int64                `json:"group_id"`
	Date              string               `json:"date"`
	TotalMembers      int                  `json:"total_members"`
	CheckedInCount    int                  `json:"checked_in_count"`
	NotCheckedInCount int                  `json:"not_checked_in_count"`
	CheckedIn         []GroupCheckinMember `json:"checked_in"`
	NotCheckedIn      []GroupCheckinMember `json:"not_checked_in"`
}

type GroupStats struct {
	GroupID        int64   `json:"group_id"`
	TotalMembers   int     `json:"total_members"`
	CheckedInToday int     `json:"checked_in_today"`
	CheckinRate    float64 `json:"checkin_rate"`
	TotalHours     float64 `json:"total_hours"`
}
