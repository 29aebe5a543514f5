// Package mocks provides hand-rolled test doubles for the interfaces
// defined across the application. Each mock exposes optional function
// fields for per-test behavior plus default response values.
package mocks
