package stores

import (
	"context"

	"github.com/mpetrova/studytrack/internal/client/models"
	"github.com/mpetrova/studytrack/internal/client/session"
	"github.com/mpetrova/studytrack/internal/logging"
)

// authAPI is the slice of the API surface the auth store consumes.
type authAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthPayload, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Me(ctx context.Context) (*models.User, error)
	CreateAPIKey(ctx context.Context) (*models.APIKey, error)
}

// AuthStore owns the user profile and drives the login/register/logout
// state machine. The credential itself lives in the session; the store
// never duplicates it.
type AuthStore struct {
	state

	api     authAPI
	session *session.Session
	log     logging.Logger

	user *models.User
}

func NewAuthStore(api authAPI, sess *session.Session, log logging.Logger) *AuthStore {
	return &AuthStore{api: api, session: sess, log: log}
}

// User returns the fetched profile, nil when it has not been loaded.
// A nil profile does not imply an invalid session.
func (s *AuthStore) User() *models.User { return s.user }

// Authenticated reports credential presence, delegated to the session.
func (s *AuthStore) Authenticated() bool { return s.session.Authenticated() }

// Token returns the current bearer token, delegated to the session.
func (s *AuthStore) Token() string { return s.session.Token() }

// LoginResult reports the two outcomes of a login independently: the
// primary result (the issued token) and the best-effort profile fetch.
// A non-nil ProfileErr does not invalidate the login.
type LoginResult struct {
	Token      string
	ProfileErr error
}

// Login authenticates and establishes the session. Once the credential is
// persisted the login is considered successful; the subsequent profile
// fetch is best-effort and its failure is reported via ProfileErr without
// reverting authentication.
func (s *AuthStore) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	s.begin()
	defer s.end()

	payload, err := s.api.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, s.fail(err, "login failed")
	}

	if err := s.session.Establish(ctx, payload.AccessToken); err != nil {
		return nil, s.fail(err, "login failed")
	}

	result := &LoginResult{Token: payload.AccessToken}

	if err := s.FetchUserInfo(ctx); err != nil {
		s.log.Warn(ctx, "profile fetch failed after login", "error", err)
		result.ProfileErr = err
	}

	return result, nil
}

// Register creates an account. It does not establish a session.
func (s *AuthStore) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	s.begin()
	defer s.end()

	user, err := s.api.Register(ctx, models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, s.fail(err, "registration failed")
	}
	return user, nil
}

// FetchUserInfo loads the authenticated user's profile. On failure it
// records the error and re-raises; callers that must survive a failed
// profile fetch (Login) catch it themselves.
func (s *AuthStore) FetchUserInfo(ctx context.Context) error {
	user, err := s.api.Me(ctx)
	if err != nil {
		s.err = errText(err, "failed to fetch user info")
		return err
	}
	s.user = user
	return nil
}

// CreateAPIKey issues an API key for the current user.
func (s *AuthStore) CreateAPIKey(ctx context.Context) (*models.APIKey, error) {
	s.begin()
	defer s.end()

	key, err := s.api.CreateAPIKey(ctx)
	if err != nil {
		return nil, s.fail(err, "failed to create api key")
	}
	return key, nil
}

// Logout clears the session and the profile. Synchronous; no network call.
func (s *AuthStore) Logout(ctx context.Context) error {
	err := s.session.Logout(ctx)
	s.user = nil
	return err
}
