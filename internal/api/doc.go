// Package api provides the HTTP handlers for the todo REST API.
//
// Handlers decode and validate request bodies, call the todo service, and
// translate outcomes into JSON responses. Store errors are mapped to status
// codes in errors.go; clients only ever see sanitized messages.
package api
