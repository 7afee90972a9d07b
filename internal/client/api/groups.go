package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mpetrova/studytrack/internal/client/models"
)

func (c *Client) CreateGroup(ctx context.Context, req models.GroupCreate) (*models.Group, error) {
	var group models.Group
	if err := c.post(ctx, "/groups", req, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// ListGroups returns the caller's groups, partitioned into created and
// joined.
func (c *Client) ListGroups(ctx context.Context) (*models.GroupList, error) {
	var list models.GroupList
	if err := c.get(ctx, "/groups", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetGroup(ctx context.Context, groupID int64) (*models.Group, error) {
	var group models.Group
	if err := c.get(ctx, fmt.Sprintf("/groups/%d", groupID), nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *Client) UpdateGroup(ctx context.Context, groupID int64, req models.GroupUpdate) (*models.Group, error) {
	var group models.Group
	if err := c.put(ctx, fmt.Sprintf("/groups/%d", groupID), req, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *Client) DeleteGroup(ctx context.Context, groupID int64) error {
	return c.del(ctx, fmt.Sprintf("/groups/%d", groupID))
}

func (c *Client) JoinGroup(ctx context.Context, groupID int64) error {
	return c.post(ctx, fmt.Sprintf("/groups/%d/join", groupID), nil, nil)
}

func (c *Client) LeaveGroup(ctx context.Context, groupID int64) error {
	return c.post(ctx, fmt.Sprintf("/groups/%d/leave", groupID), nil, nil)
}

func (c *Client) GroupMembers(ctx context.Context, groupID int64) (*models.GroupMembers, error) {
	var members models.GroupMembers
	if err := c.get(ctx, fmt.Sprintf("/groups/%d/members", groupID), nil, &members); err != nil {
		return nil, err
	}
	return &members, nil
}

func (c *Client) RemoveGroupMember(ctx context.Context, groupID, userID int64) error {
	return c.del(ctx, fmt.Sprintf("/groups/%d/members/%d", groupID, userID))
}

// GroupCheckins reports who has and has not checked in on the given date;
// an empty date means today.
func (c *Client) GroupCheckins(ctx context.Context, groupID int64, date string) (*models.GroupCheckins, error) {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}

	var checkins models.GroupCheckins
	if err := c.get(ctx, fmt.Sprintf("/groups/%d/checkins", groupID), q, &checkins); err != nil {
		return nil, err
	}
	return &checkins, nil
}

func (c *Client) GroupStats(ctx context.Context, groupID int64) (*models.GroupStats, error) {
	var stats models.GroupStats
	if err := c.get(ctx, fmt.Sprintf("/groups/%d/stats", groupID), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
