package nav

import (
	"context"

	"github.com/mpetrova/studytrack/internal/logging"
)

// Credentials is the slice of the session the guard consults. Presence is
// all it checks: validating the token is the server's job, and a stale
// credential is torn down by the first rejected request.
type Credentials interface {
	Authenticated() bool
}

// Guard gates entry into protected views.
type Guard struct {
	creds Credentials
	log   logging.Logger
}

func NewGuard(creds Credentials, log logging.Logger) *Guard {
	return &Guard{creds: creds, log: log}
}

// Resolve returns the path the client should actually show for a requested
// path: the path itself when entry is allowed, or LoginRoute when the view
// requires a credential and none is present. Unknown paths are allowed
// through unchanged; the front end renders its own not-found view.
func (g *Guard) Resolve(ctx context.Context, path string) string {
	route := Lookup(path)
	if route == nil || !route.RequiresAuth {
		return path
	}
	if g.creds.Authenticated() {
		return path
	}
	g.log.Debug(ctx, "redirecting unauthenticated visitor", "path", path)
	return LoginRoute
}

// Allowed reports whether the requested path can be entered as-is.
func (g *Guard) Allowed(ctx context.Context, path string) bool {
	return g.Resolve(ctx, path) == path
}
