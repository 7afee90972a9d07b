package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mpetrova/studytrack/internal/client/models"
	"github.com/mpetrova/studytrack/internal/client/nav"
	"github.com/mpetrova/studytrack/internal/client/stores"
	"github.com/mpetrova/studytrack/internal/logging"
)

func stubInputs(t *testing.T, lines []string, password []byte) func() {
	t.Helper()
	i := 0
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

func muteOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			if s, ok := a.(string); ok {
				parts[i] = s
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

type fakeAuthStore struct {
	loggedIn bool
	user     *models.User
	errText  string

	loginUser string
	loginPass string
	loginRes  *stores.LoginResult
	loginErr  error

	regArgs []string
	regUser *models.User
	regErr  error

	logoutCalled bool
	logoutErr    error

	apiKey    *models.APIKey
	apiKeyErr error
}

func (f *fakeAuthStore) Login(_ context.Context, username, password string) (*stores.LoginResult, error) {
	f.loginUser, f.loginPass = username, password
	if f.loginErr == nil {
		f.loggedIn = true
	}
	return f.loginRes, f.loginErr
}

func (f *fakeAuthStore) Register(_ context.Context, username, email, password string) (*models.User, error) {
	f.regArgs = []string{username, email, password}
	return f.regUser, f.regErr
}

func (f *fakeAuthStore) Logout(context.Context) error {
	f.logoutCalled = true
	f.loggedIn = false
	return f.logoutErr
}

func (f *fakeAuthStore) CreateAPIKey(context.Context) (*models.APIKey, error) {
	return f.apiKey, f.apiKeyErr
}

func (f *fakeAuthStore) Authenticated() bool { return f.loggedIn }
func (f *fakeAuthStore) User() *models.User  { return f.user }
func (f *fakeAuthStore) Err() string         { return f.errText }

func cliLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestApp(auth *fakeAuthStore, data dataStore) *App {
	log := cliLogger()
	return &App{
		auth:   auth,
		data:   data,
		guard:  nav.NewGuard(auth, log),
		log:    log,
		view:   "/",
		reader: bufio.NewReader(strings.NewReader("")),
	}
}

func TestLogin_Success(t *testing.T) {
	muteOutput(t)
	restore := stubInputs(t, []string{"alice"}, []byte("secret"))
	defer restore()

	auth := &fakeAuthStore{
		loginRes: &stores.LoginResult{Token: "tok"},
		user:     &models.User{Username: "alice"},
	}
	a := newTestApp(auth, nil)

	require.NoError(t, a.Login(context.Background()))
	require.Equal(t, "alice", auth.loginUser)
	require.Equal(t, "secret", auth.loginPass)
	require.Equal(t, "/", a.view)
}

func TestLogin_FailureKeepsGuestView(t *testing.T) {
	out := muteOutput(t)
	restore := stubInputs(t, []string{"alice"}, []byte("wrong"))
	defer restore()

	auth := &fakeAuthStore{loginErr: errors.New("denied"), errText: "bad credentials"}
	a := newTestApp(auth, nil)
	a.view = nav.LoginRoute

	require.Error(t, a.Login(context.Background()))
	require.Equal(t, nav.LoginRoute, a.view)
	require.Contains(t, strings.Join(*out, "\n"), "bad credentials")
}

func TestLogin_ProfileFailureStillSignedIn(t *testing.T) {
	muteOutput(t)
	restore := stubInputs(t, []string{"alice"}, []byte("pw"))
	defer restore()

	auth := &fakeAuthStore{
		loginRes: &stores.LoginResult{Token: "tok", ProfileErr: errors.New("boom")},
	}
	a := newTestApp(auth, nil)

	require.NoError(t, a.Login(context.Background()))
	require.True(t, auth.loggedIn)
	require.Equal(t, "/", a.view)
}

func TestRegister_CollectsFieldsAndNavigatesToLogin(t *testing.T) {
	muteOutput(t)
	restore := stubInputs(t, []string{"carol", "c@x.io"}, []byte("pw123"))
	defer restore()

	auth := &fakeAuthStore{regUser: &models.User{Username: "carol"}}
	a := newTestApp(auth, nil)

	require.NoError(t, a.Register(context.Background()))
	require.Equal(t, []string{"carol", "c@x.io", "pw123"}, auth.regArgs)
	require.False(t, auth.loggedIn, "registration must not sign the user in")
	require.Equal(t, nav.LoginRoute, a.view)
}

func TestLogout_ReturnsToLoginView(t *testing.T) {
	muteOutput(t)

	auth := &fakeAuthStore{loggedIn: true}
	a := newTestApp(auth, nil)

	require.NoError(t, a.Logout(context.Background()))
	require.True(t, auth.logoutCalled)
	require.Equal(t, nav.LoginRoute, a.view)
}

func TestToLogin_SwitchesView(t *testing.T) {
	a := newTestApp(&fakeAuthStore{}, nil)
	a.view = "/plans"
	a.ToLogin()
	require.Equal(t, nav.LoginRoute, a.view)
}

func TestStatus(t *testing.T) {
	auth := &fakeAuthStore{}
	a := newTestApp(auth, nil)
	require.Equal(t, "(guest)", a.status())

	auth.loggedIn = true
	require.Equal(t, "(signed in)", a.status())

	auth.user = &models.User{Username: "alice"}
	require.Equal(t, "(alice)", a.status())
}
