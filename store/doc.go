// Package store provides the DynamoDB data access layer for railway-delay
// notification user records.
//
// A single table holds one record per subscribed user plus one reserved
// record keyed [RailwayUserID] that carries the system-wide railway delay
// state. The [Store] translates between [UserRecord] and the table's item
// representation and performs exactly one DynamoDB call per operation.
//
// # Operations
//
//   - [Store.Create] - register a user with fresh timestamps
//   - [Store.Update] - rewrite a user's delay payload and updated_time
//   - [Store.UpdateRailway] - update the reserved railway record
//   - [Store.Delete] - remove a user record (idempotent)
//   - [Store.Get] - point lookup, nil when absent
//   - [Store.GetRailway] - lookup of the reserved record, which must exist
//   - [Store.ScanUsers] - all ordinary users, railway record filtered server-side
//
// # Errors
//
// DynamoDB client failures are returned to the caller unchanged: this layer
// performs no wrapping, no retries, and no logging. The one business error is
// [ErrRailwayNotRegistered], returned by [Store.GetRailway] when the reserved
// record is missing.
//
// # Consistency
//
// The Store holds no mutable state beyond the client handle and is safe for
// concurrent use. Isolation is whatever DynamoDB provides for single-item
// operations; there are no client-side locks or cross-item transactions.
package store
