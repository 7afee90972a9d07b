// Package api is the typed surface of the studytrack HTTP API. A single
// Client carries the cross-cutting request policies (bearer credential
// injection, fixed timeout, error classification); the per-resource files
// map every remote operation to a plain function from inputs to a typed
// payload.
package api
