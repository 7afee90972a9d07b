package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mpetrova/studytrack/internal/client/nav"
	"github.com/mpetrova/studytrack/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// requireView tries to enter the view for path. When the guard redirects to
// the login view instead, it tells the user and reports false.
func (a *App) requireView(ctx context.Context, path string) bool {
	a.enter(ctx, path)
	if a.view != path {
		printlnFn("Please login first")
		return false
	}
	return true
}

// Register prompts for a username, email and password and attempts to
// create a new account.
//
// On success it prints a confirmation and returns nil. Registration does
// not sign the user in; a separate login is required. The password byte
// slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Register(ctx, userName, email, string(password))
	if err != nil {
		printlnFn("Registration failed:", a.auth.Err())
		return err
	}

	printlnFn(fmt.Sprintf("Registered %s, you can login now", user.Username))
	a.enter(ctx, nav.LoginRoute)
	return nil
}

// Login prompts for credentials and authenticates against the server.
//
// A successful login persists the token before anything else; if the
// follow-up profile fetch fails the user stays signed in and only the
// prompt detail is missing. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	result, err := a.auth.Login(ctx, userName, string(password))
	if err != nil {
		printlnFn("Login failed:", a.auth.Err())
		return err
	}

	if result.ProfileErr != nil {
		printlnFn("Signed in, but the profile could not be loaded")
	} else {
		printlnFn("Welcome,", a.auth.User().Username)
	}

	a.enter(ctx, "/")
	return nil
}

// Logout clears the saved credential and returns to the login view.
// No network call is made.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out")
	a.enter(ctx, nav.LoginRoute)
	return nil
}

// APIKey issues a server-side API key for the current user and prints it.
func (a *App) APIKey(ctx context.Context) error {
	if !a.requireView(ctx, "/settings") {
		return nil
	}

	key, err := a.auth.CreateAPIKey(ctx)
	if err != nil {
		printlnFn("Failed to create API key:", a.auth.Err())
		return err
	}
	printlnFn("API key:", key.APIKey)
	return nil
}
