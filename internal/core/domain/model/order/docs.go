// Package order provides domain entities and business logic for order-level
// lifecycle management in the production tracking system. It implements the Order
// aggregate root with an independent, coarser status enumeration than the per-item
// production workflow.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, priority, and lifecycle
//   - Status: A state machine enforcing valid order status transitions
//   - Priority: The scheduling tag surfaced to the floor
//
// Key business rules:
//   - Order status follows Pending -> Approved -> Processing -> ReadyToShip ->
//     Shipped -> Completed, with Cancelled reachable before shipping
//   - Item scans never mutate order status directly; the rollup triggers do
//   - MarkReadyToShip is idempotent so concurrent completion rollups stay benign
package order
