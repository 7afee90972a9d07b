package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Plans(ctx context.Context) error
	AddPlan(ctx context.Context) error
	RemovePlan(ctx context.Context, args []string) error
	Checkin(ctx context.Context) error
	Today(ctx context.Context) error
	Checkins(ctx context.Context) error
	Stats(ctx context.Context) error
	Groups(ctx context.Context) error
	AddGroup(ctx context.Context) error
	JoinGroup(ctx context.Context, args []string) error
	LeaveGroup(ctx context.Context, args []string) error
	Rooms(ctx context.Context) error
	FindRoom(ctx context.Context, args []string) error
	Report(ctx context.Context) error
	Coach(ctx context.Context) error
	APIKey(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the studytrack CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - plans          — list study plans
//	  - addplan        — create a study plan
//	  - rmplan <id>    — delete a study plan
//	  - checkin        — record study hours
//	  - today          — show today's check-in aggregate
//	  - checkins       — list recent check-ins
//	  - stats          — show check-in statistics
//	  - groups         — list study groups
//	  - addgroup       — create a study group
//	  - join <id>      — join a study group
//	  - leave <id>     — leave a study group
//	  - rooms          — list joined chat rooms
//	  - findroom <id>  — look up a chat room by its share id
//	  - report         — show the weekly AI report
//	  - coach          — ask the learning coach for advice
//	  - apikey         — issue an API key
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("study %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: plans, addplan, rmplan, checkin, today, checkins, stats, groups, addgroup, join, leave, rooms, findroom, report, coach, apikey, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "plans":
			_ = a.Plans(ctx)

		case "addplan":
			_ = a.AddPlan(ctx)

		case "rmplan":
			_ = a.RemovePlan(ctx, args)

		case "checkin":
			_ = a.Checkin(ctx)

		case "today":
			_ = a.Today(ctx)

		case "checkins":
			_ = a.Checkins(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "groups":
			_ = a.Groups(ctx)

		case "addgroup":
			_ = a.AddGroup(ctx)

		case "join":
			_ = a.JoinGroup(ctx, args)

		case "leave":
			_ = a.LeaveGroup(ctx, args)

		case "rooms":
			_ = a.Rooms(ctx)

		case "findroom":
			_ = a.FindRoom(ctx, args)

		case "report":
			_ = a.Report(ctx)

		case "coach":
			_ = a.Coach(ctx)

		case "apikey":
			_ = a.APIKey(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
