package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/entitykit/entitykit/pkg/config"
	"github.com/entitykit/entitykit/pkg/lifecycle"
	"github.com/entitykit/entitykit/pkg/store"
)

type Server struct {
	Store  store.Store
	Events *lifecycle.Dispatcher
	Config *config.Config
	Router *mux.Router
	srv    *http.Server
}

func NewServer(
	entityStore store.Store,
	events *lifecycle.Dispatcher,
	cfg *config.Config,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    cfg.Addr(),
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Store:  entityStore,
		Events: events,
		Config: cfg,
		Router: router,
		srv:    srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
