// Package web is the server-rendered frontend of the forms client.
//
// A browser is identified by the forms_session cookie; the identity triple
// for that cookie lives in a bolt file, so "closing the tab" maps to the
// cookie going away. Pages are mounted from the shared route table and talk
// to the backend only through the api facade.
package web
