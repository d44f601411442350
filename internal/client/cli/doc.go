// Package cli provides the interactive forms command-line client.
//
// The CLI is one "tab": the identity triple is kept in a local SQLite
// metadata table while the process runs and cleared on logout and on exit.
// Every command talks to the backend through the api facade; the prompt
// shows the view the user is currently on, resolved through the shared
// route table.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
