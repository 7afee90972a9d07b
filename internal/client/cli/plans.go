package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/mpetrova/studytrack/internal/client/models"
)

// Plans lists the user's study plans.
func (a *App) Plans(ctx context.Context) error {
	if !a.requireView(ctx, "/plans") {
		return nil
	}

	if err := a.data.FetchPlans(ctx, models.PlanFilter{}); err != nil {
		printlnFn("Failed to fetch plans:", a.data.Err())
		return err
	}

	plans := a.data.Plans()
	if len(plans) == 0 {
		printlnFn("No plans yet, use 'addplan' to create one")
		return nil
	}
	for _, p := range plans {
		printlnFn(fmt.Sprintf("#%d %s [%s] %.1fh/day since %s", p.PlanID, p.Title, p.Status, p.DailyGoalHours, p.StartDate))
	}
	return nil
}

// AddPlan interactively creates a study plan.
func (a *App) AddPlan(ctx context.Context) error {
	if !a.requireView(ctx, "/plans") {
		return nil
	}

	title, err := getSimpleText(a.reader, "Plan title", os.Stdout)
	if err != nil {
		return err
	}

	goalText, err := getSimpleText(a.reader, "Daily goal (hours)", os.Stdout)
	if err != nil {
		return err
	}
	goal, err := strconv.ParseFloat(goalText, 64)
	if err != nil {
		printlnFn("Invalid number:", goalText)
		return err
	}

	startDate, err := getSimpleText(a.reader, "Start date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	description, err := GetMultiline(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	plan, err := a.data.CreatePlan(ctx, models.PlanCreate{
		Title:          title,
		Description:    description,
		DailyGoalHours: goal,
		StartDate:      startDate,
	})
	if err != nil {
		printlnFn("Failed to create plan:", a.data.Err())
		return err
	}

	printlnFn(fmt.Sprintf("Created plan #%d %s", plan.PlanID, plan.Title))
	return nil
}

// RemovePlan deletes the plan named by its id argument.
func (a *App) RemovePlan(ctx context.Context, args []string) error {
	if !a.requireView(ctx, "/plans") {
		return nil
	}

	if len(args) == 0 {
		printlnFn("Usage: rmplan <id>")
		return nil
	}
	planID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Invalid plan id:", args[0])
		return err
	}

	if err := a.data.DeletePlan(ctx, planID); err != nil {
		printlnFn("Failed to delete plan:", a.data.Err())
		return err
	}
	printlnFn("Deleted plan", planID)
	return nil
}
