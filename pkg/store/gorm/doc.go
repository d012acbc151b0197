// Package gorm implements the EntityKit store on PostgreSQL via GORM.
//
// Every operation wraps the physical read or write with the lifecycle
// dispatcher's before/after phases. GORM remains responsible for SQL
// generation, connection handling, and type mapping; this package only
// implements the event-dispatch contract around it.
package gorm
