// Package services contains the client-side controllers behind the login and
// registration pages.
//
// A form helper owns its form data and two status flags (loading, error) and
// exposes Submit. Submit moves the helper idle → submitting → idle: on
// success it persists the session identity triple and then navigates; on
// failure it stores a human-readable message and stays put. Request failures
// are never returned from Submit, they only land in Error().
//
// At most one submission per helper is in flight. A Submit that overlaps a
// running one returns ErrSubmitInFlight without touching any state.
package services
