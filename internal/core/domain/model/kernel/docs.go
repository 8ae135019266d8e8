// Package kernel provides the shared value objects of the orders domain.
//
// The package includes:
//   - UUID: the identifier assigned to an order when it is first stored
//   - Money: a strictly positive decimal amount used for prices and totals
//
// Both types are immutable and their zero values are invalid, so a value that
// skipped its constructor is caught by Validate before it reaches the store.
package kernel
