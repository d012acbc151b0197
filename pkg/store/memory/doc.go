// Package memory implements the EntityKit store as an in-process map. It is
// used by tests and the demo command; it honors the same lifecycle contract
// as the SQL engine, including identity assignment on first insert.
package memory
