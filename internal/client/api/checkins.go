package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mpetrova/studytrack/internal/client/models"
)

func (c *Client) CreateCheckin(ctx context.Context, req models.CheckinCreate) (*models.Checkin, error) {
	var checkin models.Checkin
	if err := c.post(ctx, "/checkins", req, &checkin); err != nil {
		return nil, err
	}
	return &checkin, nil
}

func (c *Client) ListCheckins(ctx context.Context, filter models.CheckinFilter) (*models.CheckinList, error) {
	var list models.CheckinList
	if err := c.get(ctx, "/checkins", checkinQuery(filter), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// TodayCheckin returns the server-derived aggregate for the current day.
// The result is nil when the server reports no data at all.
func (c *Client) TodayCheckin(ctx context.Context) (*models.TodayCheckin, error) {
	var today *models.TodayCheckin
	if err := c.get(ctx, "/checkins/today", nil, &today); err != nil {
		return nil, err
	}
	return today, nil
}

func (c *Client) CheckinStats(ctx context.Context, filter models.CheckinFilter) (*models.CheckinStats, error) {
	q := checkinQuery(filter)
	if filter.Period != "" {
		q.Set("period", filter.Period)
	}

	var stats models.CheckinStats
	if err := c.get(ctx, "/checkins/stats", q, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) UpdateCheckin(ctx context.Context, checkinID int64, req models.CheckinUpdate) (*models.Checkin, error) {
	var checkin models.Checkin
	if err := c.put(ctx, fmt.Sprintf("/checkins/%d", checkinID), req, &checkin); err != nil {
		return nil, err
	}
	return &checkin, nil
}

func (c *Client) DeleteCheckin(ctx context.Context, checkinID int64) error {
	return c.del(ctx, fmt.Sprintf("/checkins/%d", checkinID))
}

func checkinQuery(filter models.CheckinFilter) url.Values {
	q := url.Values{}
	if filter.PlanID > 0 {
		q.Set("plan_id", strconv.FormatInt(filter.PlanID, 10))
	}
	if filter.StartDate != "" {
		q.Set("start_date", filter.StartDate)
	}
	if filter.EndDate != "" {
		q.Set("end_date", filter.EndDate)
	}
	setPage(q, filter.Page, filter.PageSize)
	return q
}
