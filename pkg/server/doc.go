// Package server provides the HTTP server for the EntityKit API.
//
// This package implements the HTTP server that exposes entity persistence
// over REST. It uses gorilla/mux for routing and provides middleware for
// authentication and request logging.
//
// # Server Setup
//
//	srv := server.NewServer(entityStore, events, cfg)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Store: Entity persistence backed by the lifecycle dispatcher
//   - Events: The lifecycle dispatcher itself, for listener registration
//   - Config: Server configuration
//   - Router: HTTP request router
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers:
//
//   - /status - Health and version information
//   - /people - Person creation and validation
//   - /people/{name} - Person retrieval, update, and deletion
package server
