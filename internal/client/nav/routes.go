// Package nav holds the client's view table and the guard that decides
// whether a view may be entered with the current session state.
package nav

// LoginRoute is where the guard sends unauthenticated visitors.
const LoginRoute = "/auth/login"

// Route describes one navigable view.
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
}

// Routes is the client's view table. Auth views are open; everything that
// shows user data requires a credential to be present.
var Routes = []Route{
	{Path: "/", Name: "home", RequiresAuth: true},
	{Path: LoginRoute, Name: "login"},
	{Path: "/auth/register", Name: "register"},
	{Path: "/plans", Name: "plans", RequiresAuth: true},
	{Path: "/checkins", Name: "checkins", RequiresAuth: true},
	{Path: "/stats", Name: "stats", RequiresAuth: true},
	{Path: "/groups", Name: "groups", RequiresAuth: true},
	{Path: "/chat-rooms", Name: "chatrooms", RequiresAuth: true},
	{Path: "/reports", Name: "reports", RequiresAuth: true},
	{Path: "/settings", Name: "settings", RequiresAuth: true},
}

// Lookup returns the route for path, nil when the path is unknown.
func Lookup(path string) *Route {
	for i := range Routes {
		if Routes[i].Path == path {
			return &Routes[i]
		}
	}
	return nil
}
