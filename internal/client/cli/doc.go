// Package cli provides the interactive studytrack command-line client.
//
// It wires configuration, the local credential store, the API client, and an
// interactive REPL over the auth and data stores. Typical flow: restore the
// saved session, show the prompt, and execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout against the studytrack API
//   - Study plans: list, create, delete
//   - Check-ins: record hours, today's aggregate, history, stats
//   - Study groups: list, create, join, leave
//   - Chat rooms: list joined rooms, look one up by its share id
//   - AI: weekly report and learning coach advice
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
