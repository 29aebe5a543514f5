// Package service contains the application services that coordinate
// domain logic, generation, and persistence. Services own transaction
// boundaries; stores own individual statements.
package service
