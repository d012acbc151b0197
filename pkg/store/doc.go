// Package store defines the persistence engine boundary for EntityKit.
//
// A Store performs the physical reads and writes and owns the contract with
// the lifecycle dispatcher: it fires the matching "before" phase ahead of
// each physical operation, aborts with ErrCancelled when a listener cancels,
// and fires the matching "after" phase only once the operation durably
// succeeded.
//
// Implementations live in the gorm (PostgreSQL) and memory subpackages.
package store
