package stores

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mpetrova/studytrack/internal/client/api"
	"github.com/mpetrova/studytrack/internal/client/models"
	"github.com/mpetrova/studytrack/internal/client/session"
	"github.com/mpetrova/studytrack/internal/logging"
)

type memStore struct {
	token      string
	saveCalls  int
	clearCalls int
}

func (m *memStore) Token(ctx context.Context) (string, error) { return m.token, nil }

func (m *memStore) Save(ctx context.Context, token string) error {
	m.saveCalls++
	m.token = token
	return nil
}

func (m *memStore) Clear(ctx context.Context) error {
	m.clearCalls++
	m.token = ""
	return nil
}

type fakeAuthAPI struct {
	LoginResult *models.AuthPayload
	LoginErr    error
	LastLogin   models.LoginRequest
	LoginCalls  int

	RegisterResult *models.User
	RegisterErr    error
	LastRegister   models.RegisterRequest

	MeResult *models.User
	MeErr    error
	MeCalls  int

	APIKeyResult *models.APIKey
	APIKeyErr    error

	during func()
}

func (f *fakeAuthAPI) Login(ctx context.Context, req models.LoginRequest) (*models.AuthPayload, error) {
	f.LoginCalls++
	f.LastLogin = req
	if f.during != nil {
		f.during()
	}
	return f.LoginResult, f.LoginErr
}

func (f *fakeAuthAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	f.LastRegister = req
	return f.RegisterResult, f.RegisterErr
}

func (f *fakeAuthAPI) Me(ctx context.Context) (*models.User, error) {
	f.MeCalls++
	return f.MeResult, f.MeErr
}

func (f *fakeAuthAPI) CreateAPIKey(ctx context.Context) (*models.APIKey, error) {
	return f.APIKeyResult, f.APIKeyErr
}

func storeLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newAuthStore(t *testing.T, fake *fakeAuthAPI) (*AuthStore, *memStore) {
	t.Helper()
	mem := &memStore{}
	sess, err := session.New(context.Background(), mem, storeLogger())
	require.NoError(t, err)
	return NewAuthStore(fake, sess, storeLogger()), mem
}

func TestAuthStore_LoginEstablishesSessionAndFetchesProfile(t *testing.T) {
	fake := &fakeAuthAPI{
		LoginResult: &models.AuthPayload{AccessToken: "tok-1"},
		MeResult:    &models.User{UserID: 7, Username: "alice"},
	}
	s, mem := newAuthStore(t, fake)

	result, err := s.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok-1", result.Token)
	require.NoError(t, result.ProfileErr)

	require.Equal(t, models.LoginRequest{Username: "alice", Password: "secret"}, fake.LastLogin)
	require.Equal(t, "tok-1", mem.token)
	require.True(t, s.Authenticated())
	require.Equal(t, "alice", s.User().Username)
	require.Empty(t, s.Err())
	require.False(t, s.Loading())
}

func TestAuthStore_LoginSurvivesProfileFetchFailure(t *testing.T) {
	fake := &fakeAuthAPI{
		LoginResult: &models.AuthPayload{AccessToken: "tok-2"},
		MeErr:       errors.New("boom"),
	}
	s, mem := newAuthStore(t, fake)

	result, err := s.Login(context.Background(), "bob", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok-2", result.Token)
	require.Error(t, result.ProfileErr)

	require.Equal(t, "tok-2", mem.token)
	require.True(t, s.Authenticated())
	require.Nil(t, s.User())
}

func TestAuthStore_LoginFailureRecordsServerDetail(t *testing.T) {
	fake := &fakeAuthAPI{
		LoginErr: &api.Error{Status: http.StatusUnauthorized, Detail: "bad credentials"},
	}
	s, mem := newAuthStore(t, fake)

	_, err := s.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	require.Equal(t, "bad credentials", s.Err())
	require.False(t, s.Loading())
	require.False(t, s.Authenticated())
	require.Zero(t, mem.saveCalls)
	require.Zero(t, fake.MeCalls)
}

func TestAuthStore_LoginFailureFallbackMessage(t *testing.T) {
	fake := &fakeAuthAPI{LoginErr: errors.New("dial tcp: connection refused")}
	s, _ := newAuthStore(t, fake)

	_, err := s.Login(context.Background(), "alice", "pw")
	require.Error(t, err)
	require.Equal(t, "login failed", s.Err())
}

func TestAuthStore_LoadingDuringLogin(t *testing.T) {
	fake := &fakeAuthAPI{
		LoginResult: &models.AuthPayload{AccessToken: "tok"},
		MeResult:    &models.User{UserID: 1},
	}
	s, _ := newAuthStore(t, fake)

	var loadingDuring bool
	fake.during = func() { loadingDuring = s.Loading() }

	_, err := s.Login(context.Background(), "u", "p")
	require.NoError(t, err)
	require.True(t, loadingDuring)
	require.False(t, s.Loading())
}

func TestAuthStore_ErrorClearedOnNextAction(t *testing.T) {
	fake := &fakeAuthAPI{LoginErr: errors.New("down")}
	s, _ := newAuthStore(t, fake)

	_, err := s.Login(context.Background(), "u", "p")
	require.Error(t, err)
	require.NotEmpty(t, s.Err())

	fake.LoginErr = nil
	fake.LoginResult = &models.AuthPayload{AccessToken: "tok"}
	fake.MeResult = &models.User{UserID: 1}

	var errDuring string
	fake.during = func() { errDuring = s.Err() }

	_, err = s.Login(context.Background(), "u", "p")
	require.NoError(t, err)
	require.Empty(t, errDuring, "previous error must be cleared before the call goes out")
	require.Empty(t, s.Err())
}

func TestAuthStore_Register(t *testing.T) {
	fake := &fakeAuthAPI{RegisterResult: &models.User{UserID: 3, Username: "carol"}}
	s, mem := newAuthStore(t, fake)

	user, err := s.Register(context.Background(), "carol", "c@x.io", "pw")
	require.NoError(t, err)
	require.Equal(t, int64(3), user.UserID)
	require.Equal(t, models.RegisterRequest{Username: "carol", Email: "c@x.io", Password: "pw"}, fake.LastRegister)

	require.False(t, s.Authenticated(), "registration must not establish a session")
	require.Zero(t, mem.saveCalls)
}

func TestAuthStore_RegisterFailure(t *testing.T) {
	fake := &fakeAuthAPI{RegisterErr: &api.Error{Status: http.StatusConflict, Detail: "username taken"}}
	s, _ := newAuthStore(t, fake)

	_, err := s.Register(context.Background(), "carol", "c@x.io", "pw")
	require.Error(t, err)
	require.Equal(t, "username taken", s.Err())
}

func TestAuthStore_LogoutClearsWithoutNetwork(t *testing.T) {
	fake := &fakeAuthAPI{
		LoginResult: &models.AuthPayload{AccessToken: "tok"},
		MeResult:    &models.User{UserID: 1},
	}
	s, mem := newAuthStore(t, fake)

	_, err := s.Login(context.Background(), "u", "p")
	require.NoError(t, err)

	callsBefore := fake.LoginCalls + fake.MeCalls
	require.NoError(t, s.Logout(context.Background()))

	require.False(t, s.Authenticated())
	require.Nil(t, s.User())
	require.Equal(t, 1, mem.clearCalls)
	require.Equal(t, callsBefore, fake.LoginCalls+fake.MeCalls, "logout must not issue network calls")
}

func TestAuthStore_CreateAPIKey(t *testing.T) {
	fake := &fakeAuthAPI{APIKeyResult: &models.APIKey{APIKey: "sk-abc"}}
	s, _ := newAuthStore(t, fake)

	key, err := s.CreateAPIKey(context.Background())
	require.NoError(t, err)
	require.Equal(t, "sk-abc", key.APIKey)
}
