// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the production tracking system. It implements
// logic that does not naturally belong to a single aggregate root.
//
// The package includes:
//   - TransitionEngine: computes the next production status for a scan event
//   - BatchPolicy: classifies candidate print batches against the standard size
//
// Both services are stateless and pure; all persistence concerns live in the
// application layer and its ports.
package services
