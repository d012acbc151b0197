// Package main provides entityctl, the EntityKit command line interface.
//
// EntityKit is an entity persistence toolkit built around a lifecycle event
// dispatcher. Every insert, update, delete, and load runs through ordered
// pre and post phases that listeners and entity hooks can observe or cancel.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/lifecycle: Event types, phase tokens, listeners, and the dispatcher
//   - pkg/store: Persistence interface and its SQL and in-memory engines
//   - pkg/model: Example entity models
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/audit: RFC 5424 audit trail for completed operations
//   - pkg/db: Database connection utilities
//   - pkg/config: Configuration management
//
// # Quick Start
//
//	# Run database migrations
//	entityctl db migrate
//
//	# Start the server
//	entityctl server
//
//	# Walk through the lifecycle phases without a database
//	entityctl demo
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - ENTITYKIT_AUDIT_DATABASE_URL: Audit trail connection string (optional)
//   - ENTITYKIT_PORT: Server listen port
//   - ENTITYKIT_LOG_LEVEL: Logging verbosity
package main
