// Package store defines the persistence interfaces and transaction
// helpers used by the service layer. Concrete implementations live in
// internal/platform/postgres.
package store
