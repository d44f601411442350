// Package api is the client-side facade of the forms backend REST API.
//
// # Overview
//
// Client exposes one method per backend operation. Each method builds the
// request path by interpolating its identifiers verbatim into a fixed
// template, issues exactly one request with a fixed HTTP method and returns
// the backend response untouched (see Response). There are no retries, no
// request deduplication and no caching: every read goes to the backend.
//
// # Authentication
//
// Every method except Register and Login takes the caller's session.Identity
// and sends "Authorization: Bearer <token>" built from it on every call. An
// empty token is still sent as "Bearer ".
//
// # Error Handling
//
// Transport failures, timeouts and non-2xx responses are all reported as a
// *RequestError that matches ErrRequestFailed with errors.Is. The facade
// does not interpret status codes; MessageOf extracts the backend's
// human-readable "message" field when there is one.
//
// # Known defect
//
// DeleteAuthorizedUsers targets templates/{id}/addAuthorizedUsers, the same
// path as AddAuthorizedUsers. This mirrors the deployed frontend and is kept
// until the backend exposes and documents a removal endpoint.
package api
