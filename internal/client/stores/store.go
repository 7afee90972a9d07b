// Package stores holds the client-side reactive state: the authentication
// store and the data store for plans, check-ins and groups. Every action
// follows the same discipline: clear the error and raise the loading flag
// before the first network call, record a human-readable error and re-raise
// on failure, and drop the loading flag on every path. The in-memory
// collections are caches of server state, never authoritative; mutations
// re-fetch instead of patching locally.
//
// Stores are not safe for concurrent use. The intended caller is a single
// interactive front end that dispatches one action at a time; actions
// within a store are strictly sequential.
package stores

import (
	"github.com/mpetrova/studytrack/internal/client/api"
)

// state is the per-store scalar state shared by all stores.
type state struct {
	loading bool
	err     string
}

// begin starts an action: loading up, previous error cleared.
func (s *state) begin() {
	s.loading = true
	s.err = ""
}

// end finishes an action regardless of outcome; always deferred.
func (s *state) end() {
	s.loading = false
}

// fail records the human-readable cause and returns err unchanged so the
// caller can re-raise it.
func (s *state) fail(err error, fallback string) error {
	s.err = errText(err, fallback)
	return err
}

// Loading reports whether an action is in flight.
func (s *state) Loading() bool { return s.loading }

// Err returns the last failure message, empty after a successful action.
func (s *state) Err() string { return s.err }

// errText prefers the server-provided detail over the per-action fallback.
func errText(err error, fallback string) string {
	if detail := api.Detail(err); detail != "" {
		return detail
	}
	return fallback
}
