package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/mpetrova/studytrack/internal/client/models"
)

// Checkin interactively records study hours against a plan and refreshes
// today's aggregate.
func (a *App) Checkin(ctx context.Context) error {
	if !a.requireView(ctx, "/checkins") {
		return nil
	}

	planText, err := getSimpleText(a.reader, "Plan id", os.Stdout)
	if err != nil {
		return err
	}
	planID, err := strconv.ParseInt(planText, 10, 64)
	if err != nil {
		printlnFn("Invalid plan id:", planText)
		return err
	}

	hoursText, err := getSimpleText(a.reader, "Hours studied", os.Stdout)
	if err != nil {
		return err
	}
	hours, err := strconv.ParseFloat(hoursText, 64)
	if err != nil {
		printlnFn("Invalid number:", hoursText)
		return err
	}

	content, err := GetMultiline(a.reader, "Notes (optional)", os.Stdout)
	if err != nil {
		return err
	}

	checkin, err := a.data.CreateCheckin(ctx, models.CheckinCreate{
		PlanID:  planID,
		Hours:   hours,
		Content: content,
	})
	if err != nil {
		printlnFn("Failed to check in:", a.data.Err())
		return err
	}

	printlnFn(fmt.Sprintf("Recorded %.1fh on plan #%d", checkin.Hours, checkin.PlanID))
	return nil
}

// Today shows today's aggregate. The checked-in state is the server's
// derivation; zero recorded hours counts as not checked in.
func (a *App) Today(ctx context.Context) error {
	if !a.requireView(ctx, "/checkins") {
		return nil
	}

	if err := a.data.FetchTodayCheckin(ctx); err != nil {
		printlnFn("Failed to fetch today's check-in:", a.data.Err())
		return err
	}

	if !a.data.CheckedInToday() {
		printlnFn("Not checked in today")
		return nil
	}

	today := a.data.Today()
	printlnFn(fmt.Sprintf("Checked in: %.1fh over %d entries", today.TotalHours, len(today.Checkins)))
	return nil
}

// Checkins lists recent check-ins.
func (a *App) Checkins(ctx context.Context) error {
	if !a.requireView(ctx, "/checkins") {
		return nil
	}

	if err := a.data.FetchCheckins(ctx, models.CheckinFilter{}); err != nil {
		printlnFn("Failed to fetch check-ins:", a.data.Err())
		return err
	}

	checkins := a.data.Checkins()
	if len(checkins) == 0 {
		printlnFn("No check-ins yet")
		return nil
	}
	for _, c := range checkins {
		printlnFn(fmt.Sprintf("#%d %s %.1fh %s", c.CheckinID, c.CheckinDate, c.Hours, c.PlanTitle))
	}
	return nil
}

// Stats shows check-in statistics for the default period.
func (a *App) Stats(ctx context.Context) error {
	if !a.requireView(ctx, "/stats") {
		return nil
	}

	if err := a.data.FetchCheckinStats(ctx, models.CheckinFilter{Period: "week"}); err != nil {
		printlnFn("Failed to fetch stats:", a.data.Err())
		return err
	}

	s := a.data.Stats()
	printlnFn(fmt.Sprintf("%s: %.1fh total over %d days, %.1fh/day avg, %.0f%% check-in rate",
		s.Period, s.TotalHours, s.TotalDays, s.AvgHoursPerDay, s.CheckinRate*100))
	return nil
}
