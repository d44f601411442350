// Package models contains the JSON shapes exchanged with the forms backend.
//
// The client never validates these records: well-formedness is the
// backend's job. They exist so page views can render responses and build
// request bodies without juggling raw maps.
package models
