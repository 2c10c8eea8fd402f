// Package item provides domain entities and business logic for production item
// tracking. It implements the ProductionItem aggregate root and the ordered
// workflow Status enumeration.
//
// The package includes:
//   - ProductionItem: The aggregate root owning identity, status, and scan history
//   - Status: The fixed, ordered production workflow enumeration
//
// Key business rules:
//   - Items start in NotStarted and can only be started by the Office station
//   - Status moves strictly forward along the workflow, never backwards
//   - Ready is terminal and is only produced by Office finalization
//   - The station of the most recent scan is recorded with every transition
package item
