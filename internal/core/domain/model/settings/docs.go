// Package settings provides the seller-owned carrier configuration aggregates:
// carrier account credentials with the auto-ship switch and default courier,
// and the write-once pickup address.
//
// Key business rules:
//   - There is exactly one carrier configuration row for the shop; it is
//     loaded explicitly and injected into the orchestrator at call time
//   - The password never leaves the aggregate through a query response
//   - The cached token is observability state only; every carrier call mints
//     a fresh token
//   - A seller's pickup address is write-once; updates are refused once set
package settings
