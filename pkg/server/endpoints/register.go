package endpoints

import (
	"github.com/entitykit/entitykit/pkg/server"
	"github.com/entitykit/entitykit/pkg/server/middleware"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoint(srv)
	RegisterPeopleEndpoints(srv)
}

// RegisterProtected registers all API endpoints and wraps the entity routes
// in bearer token authentication. The status endpoint stays public.
func RegisterProtected(srv *server.Server) {
	RegisterStatusEndpoint(srv)

	auth := middleware.NewBearerAuthenticator(srv.Config.APITokenSecret)
	sub := srv.Router.PathPrefix("/people").Subrouter()
	sub.Use(auth.Middleware)
	registerPeopleRoutes(srv, sub)
}
