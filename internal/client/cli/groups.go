package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/mpetrova/studytrack/internal/client/models"
)

// Groups lists the user's study groups, created and joined separately.
func (a *App) Groups(ctx context.Context) error {
	if !a.requireView(ctx, "/groups") {
		return nil
	}

	if err := a.data.FetchGroups(ctx); err != nil {
		printlnFn("Failed to fetch groups:", a.data.Err())
		return err
	}

	groups := a.data.Groups()
	if groups == nil || len(groups.Created)+len(groups.Joined) == 0 {
		printlnFn("No groups yet, use 'addgroup' to create one")
		return nil
	}

	if len(groups.Created) > 0 {
		printlnFn("Created:")
		for _, g := range groups.Created {
			printlnFn(fmt.Sprintf("  #%d %s (%d members)", g.GroupID, g.Name, g.MemberCount))
		}
	}
	if len(groups.Joined) > 0 {
		printlnFn("Joined:")
		for _, g := range groups.Joined {
			printlnFn(fmt.Sprintf("  #%d %s (%d members)", g.GroupID, g.Name, g.MemberCount))
		}
	}
	return nil
}

// AddGroup interactively creates a study group.
func (a *App) AddGroup(ctx context.Context) error {
	if !a.requireView(ctx, "/groups") {
		return nil
	}

	name, err := getSimpleText(a.reader, "Group name", os.Stdout)
	if err != nil {
		return err
	}

	description, err := GetMultiline(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	group, err := a.data.CreateGroup(ctx, models.GroupCreate{
		Name:        name,
		Description: description,
	})
	if err != nil {
		printlnFn("Failed to create group:", a.data.Err())
		return err
	}

	printlnFn(fmt.Sprintf("Created group #%d %s", group.GroupID, group.Name))
	return nil
}

// JoinGroup joins the group named by its id argument.
func (a *App) JoinGroup(ctx context.Context, args []string) error {
	if !a.requireView(ctx, "/groups") {
		return nil
	}

	if len(args) == 0 {
		printlnFn("Usage: join <id>")
		return nil
	}
	groupID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Invalid group id:", args[0])
		return err
	}

	if err := a.data.JoinGroup(ctx, groupID); err != nil {
		printlnFn("Failed to join group:", a.data.Err())
		return err
	}
	printlnFn("Joined group", groupID)
	return nil
}

// LeaveGroup leaves the group named by its id argument.
func (a *App) LeaveGroup(ctx context.Context, args []string) error {
	if !a.requireView(ctx, "/groups") {
		return nil
	}

	if len(args) == 0 {
		printlnFn("Usage: leave <id>")
		return nil
	}
	groupID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Invalid group id:", args[0])
		return err
	}

	if err := a.data.LeaveGroup(ctx, groupID); err != nil {
		printlnFn("Failed to leave group:", a.data.Err())
		return err
	}
	printlnFn("Left group", groupID)
	return nil
}
