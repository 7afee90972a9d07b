package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mpetrova/studytrack/internal/client/models"
)

func (c *Client) CreatePlan(ctx context.Context, req models.PlanCreate) (*models.Plan, error) {
	var plan models.Plan
	if err := c.post(ctx, "/plans", req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) ListPlans(ctx context.Context, filter models.PlanFilter) (*models.PlanList, error) {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	setPage(q, filter.Page, filter.PageSize)

	var list models.PlanList
	if err := c.get(ctx, "/plans", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) UpdatePlan(ctx context.Context, planID int64, req models.PlanUpdate) (*models.Plan, error) {
	var plan models.Plan
	if err := c.put(ctx, fmt.Sprintf("/plans/%d", planID), req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) DeletePlan(ctx context.Context, planID int64) error {
	return c.del(ctx, fmt.Sprintf("/plans/%d", planID))
}
