// Package order provides the Order aggregate and its lifecycle vocabulary.
//
// The package includes:
//   - Order: the aggregate root holding an immutable placement (items, total,
//     address, payment) and a mutable status with its tracking log
//   - Status: the six lifecycle labels, parsed from and rendered to strings
//   - TrackingStep: one append-only entry of the tracking log
//   - Draft: a validated submission ready to become an Order
//
// Key business rules:
//   - An order always has at least one line item and a positive total
//   - New orders start in Confirmed with a single order_placed step
//   - The estimated delivery time is fixed at placement + 30 minutes
//   - Every status change appends exactly one tracking step; the log is never
//     truncated, reordered or deduplicated
//   - Transitions out of Delivered and Cancelled are allowed; IsTerminal only
//     reports them
package order
