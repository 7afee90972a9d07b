package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/mpetrova/studytrack/internal/client/api"
	"github.com/mpetrova/studytrack/internal/client/config"
	"github.com/mpetrova/studytrack/internal/client/models"
	"github.com/mpetrova/studytrack/internal/client/nav"
	"github.com/mpetrova/studytrack/internal/client/repositories/credentials"
	"github.com/mpetrova/studytrack/internal/client/session"
	"github.com/mpetrova/studytrack/internal/client/stores"
	"github.com/mpetrova/studytrack/internal/logging"

	_ "modernc.org/sqlite"
)

// authStore is the slice of the auth store the CLI drives.
type authStore interface {
	Login(ctx context.Context, username, password string) (*stores.LoginResult, error)
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CreateAPIKey(ctx context.Context) (*models.APIKey, error)
	Authenticated() bool
	User() *models.User
	Err() string
}

// dataStore is the slice of the data store the CLI drives.
type dataStore interface {
	FetchPlans(ctx context.Context, filter models.PlanFilter) error
	CreatePlan(ctx context.Context, req models.PlanCreate) (*models.Plan, error)
	DeletePlan(ctx context.Context, planID int64) error
	Plans() []models.Plan

	CreateCheckin(ctx context.Context, req models.CheckinCreate) (*models.Checkin, error)
	FetchCheckins(ctx context.Context, filter models.CheckinFilter) error
	Checkins() []models.Checkin
	FetchTodayCheckin(ctx context.Context) error
	Today() *models.TodayCheckin
	CheckedInToday() bool
	FetchCheckinStats(ctx context.Context, filter models.CheckinFilter) error
	Stats() *models.CheckinStats

	FetchGroups(ctx context.Context) error
	CreateGroup(ctx context.Context, req models.GroupCreate) (*models.Group, error)
	JoinGroup(ctx context.Context, groupID int64) error
	LeaveGroup(ctx context.Context, groupID int64) error
	Groups() *models.GroupList

	Err() string
}

// App is the interactive client. It owns the session, the stores and the
// current view, and implements session.Navigator so a detected expiry lands
// the user back on the login view.
type App struct {
	config  *config.Config
	session *session.Session
	auth    authStore
	data    dataStore
	client  *api.Client
	guard   *nav.Guard
	log     logging.Logger

	view   string
	reader *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := credentials.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	repo := credentials.NewSQLiteRepository(db)

	sess, err := session.New(ctx, repo, log)
	if err != nil {
		return nil, err
	}

	apiClient := api.New(c.ServerBaseURL, c.RequestTimeout, sess, log)
	apiClient.OnSessionExpired(sess.HandleExpired)

	app := &App{
		config:  c,
		session: sess,
		auth:    stores.NewAuthStore(apiClient, sess, log),
		data:    stores.NewDataStore(apiClient, log),
		client:  apiClient,
		guard:   nav.NewGuard(sess, log),
		log:     log,
		view:    "/",
		reader:  bufio.NewReader(os.Stdin),
	}
	sess.SetNavigator(app)
	return app, nil
}

// ToLogin implements session.Navigator: a forced teardown switches the
// active view to the login entry point.
func (a *App) ToLogin() {
	a.view = nav.LoginRoute
}

// enter moves to the requested view, or to wherever the guard redirects.
func (a *App) enter(ctx context.Context, path string) {
	a.view = a.guard.Resolve(ctx, path)
}

func (a *App) isLoggedIn() bool {
	return a.auth.Authenticated()
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	a.enter(ctx, "/")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// status renders the prompt suffix: the username when the profile is
// loaded, otherwise a bare marker of the session state.
func (a *App) status() string {
	if !a.isLoggedIn() {
		return "(guest)"
	}
	if u := a.auth.User(); u != nil {
		return "(" + u.Username + ")"
	}
	return "(signed in)"
}
