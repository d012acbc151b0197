// Package config provides configuration management for EntityKit.
//
// This package handles loading and validating server configuration
// from a YAML file and environment variables.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Environment variables (primary)
//   - entitykit.yml (optional, path set by ENTITYKIT_CONFIG_PATH)
//
// # Key Configuration Options
//
//   - DATABASE_URL / ENTITYKIT_DATABASE_URL: Entity database connection
//   - ENTITYKIT_AUDIT_DATABASE_URL: Audit trail database connection
//   - ENTITYKIT_PORT: Server listen port
//   - ENTITYKIT_LOG_LEVEL: Logging verbosity
//   - ENTITYKIT_AUTO_TIMESTAMPS: Toggle created-at/updated-at stamping
package config
