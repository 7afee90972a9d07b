package api

import (
	"context"
	"net/url"

	"github.com/mpetrova/studytrack/internal/client/models"
)

// WeeklyReport fetches the generated report for the week starting at
// weekStart ("YYYY-MM-DD"); empty means the current week.
func (c *Client) WeeklyReport(ctx context.Context, weekStart string) (*models.AIReport, error) {
	q := url.Values{}
	if weekStart != "" {
		q.Set("week_start", weekStart)
	}

	var report models.AIReport
	if err := c.get(ctx, "/ai/weekly_report", q, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// GenerateReport asks the server to produce a fresh weekly report. The
// work is asynchronous; the returned task describes its progress.
func (c *Client) GenerateReport(ctx context.Context, req models.AIReportGenerate) (*models.AIReportTask, error) {
	var task models.AIReportTask
	if err := c.post(ctx, "/ai/generate_report", req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) LearningCoach(ctx context.Context, req models.CoachRequest) (*models.CoachAdvice, error) {
	var advice models.CoachAdvice
	if err := c.post(ctx, "/ai/learning_coach", req, &advice); err != nil {
		return nil, err
	}
	return &advice, nil
}

func (c *Client) CheckinAnalysis(ctx context.Context, req models.CheckinAnalysisRequest) (*models.CheckinAnalysis, error) {
	var analysis models.CheckinAnalysis
	if err := c.post(ctx, "/ai/checkin_analysis", req, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}
