package models

import "time"

// Chat room lifecycle statuses.
const (
	ChatRoomStatusActive    = "active"
	ChatRoomStatusArchived  = "archived"
	ChatRoomStatusSuspended = "suspended"
)

// Join request statuses.
const (
	JoinRequestPending   = "pending"
	JoinRequestApproved  = "approved"
	JoinRequestRejected  = "rejected"
	JoinRequestCancelled = "cancelled"
)

type ChatRoom struct {
	ChatRoomID     int64     `json:"chat_room_id"`
	ChatID         string    `json:"chat_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	GroupID        int64     `json:"group_id,omitempty"`
	CreatorID      int64     `json:"creator_id"`
	MaxMembers     int       `json:"max_members"`
	CurrentMembers int       `json:"current_members"`
	IsPublic       bool      `json:"is_public"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type ChatRoomCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	GroupID     int64  `json:"group_id,omitempty"`
	MaxMembers  int    `json:"max_members,omitempty"`
	IsPublic    bool   `json:"is_public"`
}

type ChatRoomUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	MaxMembers  *int    `json:"max_members,omitempty"`
	IsPublic    *bool   `json:"is_public,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type ChatRoomSearch struct {
	ChatRooms []ChatRoom `json:"chat_rooms"`
	Total     int        `json:"total"`
	Page      int        `json:"page"`
	PageSize  int        `json:"page_size"`
}

type ChatRoomMember struct {
	UserID       int64      `json:"user_id"`
	Username     string     `json:"username"`
	AvatarURL    string     `json:"avatar_url,omitempty"`
	Role         string     `json:"role"`
	JoinedAt     time.Time  `json:"joined_at"`
	LastActiveAt *time.Time `json:"last_active_at,omitempty"`
	IsMuted      bool       `json:"is_muted"`
}

type ChatRoomMembers struct {
	ChatRoomID   int64            `json:"chat_room_id"`
	ChatID       string           `json:"chat_id"`
	Name         string           `json:"name"`
	TotalMembers int              `json:"total_members"`
	Members      []ChatRoomMember `json:"members"`
}

type JoinRequest struct {
	RequestID     int64      `json:"request_id"`
	ChatRoomID    int64      `json:"chat_room_id"`
	ChatID        string     `json:"chat_id"`
	ChatRoomName  string     `json:"chat_room_name"`
	UserID        int64      `json:"user_id"`
	Username      string     `json:"username"`
	Status        string     `json:"status"`
	Message       string     `json:"message,omitempty"`
	ReviewedBy    int64      `json:"reviewed_by,omitempty"`
	ReviewerName  string     `json:"reviewer_name,omitempty"`
	ReviewMessage string     `json:"review_message,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
}

type JoinRequestCreate struct {
	Message string `json:"message,omitempty"`
}

type JoinRequestReview struct {
	Approve       bool   `json:"approve"`
	ReviewMessage string `json:"review_message,omitempty"`
}

type ChatMessage struct {
	MessageID   int64     `json:"message_id"`
	ChatRoomID  int64     `json:"chat_room_id"`
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	Content     string    `json:"content"`
	MessageType string    `json:"message_type"`
	CreatedAt   time.Time `json:"created_at"`
}

type ChatMessageList struct {
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Messages []ChatMessage `json:"messages"`
}

type ChatMessageSend struct {
	Content     string `json:"content"`
	MessageType string `json:"message_type,omitempty"`
}

// ChatRoomFilter holds the query parameters of the chat room search endpoint.
type ChatRoomFilter struct {
	Query    string
	Page     int
	PageSize int
}

// ChatMessageFilter holds the query parameters of the message list and
// search endpoints.
type ChatMessageFilter struct {
	Query    string
	Page     int
	PageSize int
}
