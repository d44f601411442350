// Package session holds the session identity triple (user id, bearer token,
// role) and the stores that persist it.
//
// The identity is passed explicitly to every backend call; nothing in the
// client reads it from ambient global state. A Store is written once per
// successful login or registration (Save writes the triple as one unit) and
// emptied explicitly on logout or token expiry (Clear).
//
// Implementations:
//   - MemoryStore: process-local, for tests and throwaway sessions.
//   - MetadataStore: the CLI's SQLite metadata table.
//   - web.BoltSessions: one record per browser cookie (package web).
//
// Stores do not serialise writers: when two writers race, the last Save wins.
package session
