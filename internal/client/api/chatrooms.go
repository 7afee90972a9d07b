package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mpetrova/studytrack/internal/client/models"
)

func (c *Client) CreateChatRoom(ctx context.Context, req models.ChatRoomCreate) (*models.ChatRoom, error) {
	var room models.ChatRoom
	if err := c.post(ctx, "/chat-rooms", req, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// SearchChatRooms finds public rooms matching the query text.
func (c *Client) SearchChatRooms(ctx context.Context, filter models.ChatRoomFilter) (*models.ChatRoomSearch, error) {
	q := url.Values{}
	if filter.Query != "" {
		q.Set("query", filter.Query)
	}
	setPage(q, filter.Page, filter.PageSize)

	var result models.ChatRoomSearch
	if err := c.get(ctx, "/chat-rooms/search", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchByChatID looks up a single room by its shareable chat identifier.
func (c *Client) SearchByChatID(ctx context.Context, chatID string) (*models.ChatRoom, error) {
	q := url.Values{}
	q.Set("chat_id", chatID)

	var room models.ChatRoom
	if err := c.get(ctx, "/chat-rooms/search-by-id", q, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *Client) MyChatRooms(ctx context.Context) ([]models.ChatRoom, error) {
	var rooms []models.ChatRoom
	if err := c.get(ctx, "/chat-rooms/my-rooms", nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *Client) GetChatRoom(ctx context.Context, roomID int64) (*models.ChatRoom, error) {
	var room models.ChatRoom
	if err := c.get(ctx, fmt.Sprintf("/chat-rooms/%d", roomID), nil, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *Client) UpdateChatRoom(ctx context.Context, roomID int64, req models.ChatRoomUpdate) (*models.ChatRoom, error) {
	var room models.ChatRoom
	if err := c.put(ctx, fmt.Sprintf("/chat-rooms/%d", roomID), req, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *Client) DeleteChatRoom(ctx context.Context, roomID int64) error {
	return c.del(ctx, fmt.Sprintf("/chat-rooms/%d", roomID))
}

func (c *Client) LeaveChatRoom(ctx context.Context, roomID int64) error {
	return c.post(ctx, fmt.Sprintf("/chat-rooms/%d/leave", roomID), nil, nil)
}

func (c *Client) ChatRoomMembers(ctx context.Context, roomID int64) (*models.ChatRoomMembers, error) {
	var members models.ChatRoomMembers
	if err := c.get(ctx, fmt.Sprintf("/chat-rooms/%d/members", roomID), nil, &members); err != nil {
		return nil, err
	}
	return &members, nil
}

func (c *Client) CreateJoinRequest(ctx context.Context, roomID int64, req models.JoinRequestCreate) (*models.JoinRequest, error) {
	var request models.JoinRequest
	if err := c.post(ctx, fmt.Sprintf("/chat-rooms/%d/join-request", roomID), req, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (c *Client) ListJoinRequests(ctx context.Context, roomID int64) ([]models.JoinRequest, error) {
	var requests []models.JoinRequest
	if err := c.get(ctx, fmt.Sprintf("/chat-rooms/%d/join-requests", roomID), nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *Client) ReviewJoinRequest(ctx context.Context, roomID, requestID int64, req models.JoinRequestReview) (*models.JoinRequest, error) {
	var request models.JoinRequest
	path := fmt.Sprintf("/chat-rooms/%d/join-requests/%d/review", roomID, requestID)
	if err := c.post(ctx, path, req, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// PendingJoinRequests lists the join requests awaiting the caller's review
// across all rooms they administer.
func (c *Client) PendingJoinRequests(ctx context.Context) ([]models.JoinRequest, error) {
	var requests []models.JoinRequest
	if err := c.get(ctx, "/chat-rooms/join-requests/pending", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *Client) ListMessages(ctx context.Context, roomID int64, filter models.ChatMessageFilter) (*models.ChatMessageList, error) {
	q := url.Values{}
	setPage(q, filter.Page, filter.PageSize)

	var list models.ChatMessageList
	if err := c.get(ctx, fmt.Sprintf("/chat-rooms/%d/messages", roomID), q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) SendMessage(ctx context.Context, roomID int64, req models.ChatMessageSend) (*models.ChatMessage, error) {
	var message models.ChatMessage
	if err := c.post(ctx, fmt.Sprintf("/chat-rooms/%d/messages", roomID), req, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *Client) DeleteMessage(ctx context.Context, roomID, messageID int64) error {
	return c.del(ctx, fmt.Sprintf("/chat-rooms/%d/messages/%d", roomID, messageID))
}

func (c *Client) SearchMessages(ctx context.Context, roomID int64, filter models.ChatMessageFilter) (*models.ChatMessageList, error) {
	q := url.Values{}
	if filter.Query != "" {
		q.Set("query", filter.Query)
	}
	setPage(q, filter.Page, filter.PageSize)

	var list models.ChatMessageList
	if err := c.get(ctx, fmt.Sprintf("/chat-rooms/%d/messages/search", roomID), q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) RecentMessages(ctx context.Context, roomID int64, limit int) ([]models.ChatMessage, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var messages []models.ChatMessage
	if err := c.get(ctx, fmt.Sprintf("/chat-rooms/%d/messages/recent", roomID), q, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
