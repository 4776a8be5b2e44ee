// Package services provides the domain services that measure work orders
// against their templates.
//
// The package includes:
//   - CompletionCalculator: completion percentage and per task type quota progress of one order
//   - StatisticsCalculator: status distribution and per day average completion over many orders
//
// Completion is done tasks over the template's total quota. It is never
// clamped at 100; only presentation may clamp it.
package services
