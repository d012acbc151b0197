package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/entitykit/entitykit/pkg/lifecycle"
	"github.com/entitykit/entitykit/pkg/model"
	"github.com/entitykit/entitykit/pkg/server"
	"github.com/entitykit/entitykit/pkg/store"
)

// ErrorResponse represents an error response body
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidateRequest represents the body of a validation request
type ValidateRequest struct {
	Person     model.Person `json:"person"`
	Properties []string     `json:"properties"`
}

// RegisterPeopleEndpoints registers the person CRUD endpoints
func RegisterPeopleEndpoints(s *server.Server) {
	registerPeopleRoutes(s, s.Router.PathPrefix("/people").Subrouter())
}

func registerPeopleRoutes(s *server.Server, r *mux.Router) {
	r.HandleFunc("", handleCreatePerson(s.Store)).Methods("POST")
	r.HandleFunc("/validate", handleValidatePerson(s.Store)).Methods("POST")
	r.HandleFunc("/{name}", handleGetPerson(s.Store)).Methods("GET")
	r.HandleFunc("/{name}", handleUpdatePerson(s.Store)).Methods("PUT")
	r.HandleFunc("/{name}", handleDeletePerson(s.Store)).Methods("DELETE")
}

func handleCreatePerson(entityStore store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var person model.Person
		if err := json.NewDecoder(r.Body).Decode(&person); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		if err := entityStore.Insert(r.Context(), &person); err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, person)
	}
}

func handleGetPerson(entityStore store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["name"]

		var person model.Person
		if err := entityStore.Load(r.Context(), &person, "name = ?", name); err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, person)
	}
}

func handleUpdatePerson(entityStore store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["name"]

		var person model.Person
		if err := entityStore.Load(r.Context(), &person, "name = ?", name); err != nil {
			writeStoreError(w, err)
			return
		}

		var update model.Person
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		if update.Email != "" {
			person.Email = update.Email
		}

		if err := entityStore.Update(r.Context(), &person); err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, person)
	}
}

func handleDeletePerson(entityStore store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["name"]

		var person model.Person
		if err := entityStore.Load(r.Context(), &person, "name = ?", name); err != nil {
			writeStoreError(w, err)
			return
		}

		if err := entityStore.Delete(r.Context(), &person); err != nil {
			writeStoreError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleValidatePerson(entityStore store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ValidateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		if err := entityStore.Validate(r.Context(), &req.Person, req.Properties); err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "valid"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeStoreError maps store and listener errors onto HTTP statuses. A
// cancelled or rejected operation is the client's fault, not the server's.
func writeStoreError(w http.ResponseWriter, err error) {
	var listenerErr *lifecycle.ListenerError

	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrDuplicate):
		writeError(w, http.StatusConflict, "already exists")
	case errors.As(err, &listenerErr):
		writeError(w, http.StatusUnprocessableEntity, listenerErr.Error())
	case errors.Is(err, store.ErrCancelled):
		writeError(w, http.StatusUnprocessableEntity, "operation cancelled")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
