// Package services provides domain services that drive the order aggregate
// through its lifecycle with a controlled notion of time.
//
// The package includes:
//   - OrderLifecycle: places orders and advances their status, stamping every
//     tracking step with an injected clock
//
// Keeping the clock here rather than in the aggregate lets command handlers
// stay free of time.Now and lets tests pin every timestamp.
package services
