// Package services holds domain services: stateless domain logic that spans
// multiple aggregates and therefore belongs to none of them.
//
// TimeAccountant derives the time-accounting metrics of a shift from its
// orders and reports. All derivations are pure functions, so the shift
// closing pipeline can re-run them at any time without drift.
package services
