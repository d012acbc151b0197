// Package audit provides an audit trail for entity lifecycle operations.
//
// A Listener implementing the dispatcher's custom-listener capability pair
// observes completed operations (the post phases) and records them through a
// Logger in RFC5424 syslog format and, when configured, a database-backed
// Store.
//
// # Usage
//
//	auditStore, _ := audit.NewStore()
//	dispatcher.RegisterCustomListener(audit.NewListener(auditStore))
//
// Audit events are recorded in a structured format suitable for change
// monitoring and compliance requirements.
package audit
