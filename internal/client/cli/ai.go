package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mpetrova/studytrack/internal/client/models"
)

// Report fetches and prints the weekly AI report for the current week.
func (a *App) Report(ctx context.Context) error {
	if !a.requireView(ctx, "/reports") {
		return nil
	}

	report, err := a.client.WeeklyReport(ctx, "")
	if err != nil {
		printlnFn("Failed to fetch report:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Week %s — %s", report.WeekStart, report.WeekEnd))
	for _, issue := range report.Issues {
		printlnFn("Issue:", issue)
	}
	for _, s := range report.Suggestions {
		printlnFn("Suggestion:", s)
	}
	printlnFn(fmt.Sprintf("Recommended: %.1fh/day", report.RecommendedHours))
	return nil
}

// Coach asks the learning coach for advice on a stated goal.
func (a *App) Coach(ctx context.Context) error {
	if !a.requireView(ctx, "/reports") {
		return nil
	}

	goal, err := getSimpleText(a.reader, "What is your learning goal?", os.Stdout)
	if err != nil {
		return err
	}

	advice, err := a.client.LearningCoach(ctx, models.CoachRequest{LearningGoal: goal})
	if err != nil {
		printlnFn("Coach unavailable:", err.Error())
		return err
	}

	printlnFn(advice.Advice)
	return nil
}
