// Package api contains the HTTP handlers that translate between the wire
// contract and the application services. Handlers validate input at the
// boundary, map sentinel errors to status codes, and never leak internal
// error detail to clients.
package api
