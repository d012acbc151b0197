package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entitykit/entitykit/pkg/config"
	"github.com/entitykit/entitykit/pkg/lifecycle"
	"github.com/entitykit/entitykit/pkg/model"
	"github.com/entitykit/entitykit/pkg/server"
	"github.com/entitykit/entitykit/pkg/store/memory"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	events := lifecycle.NewDispatcher()
	require.NoError(t, events.RegisterEntity(&model.Person{}))

	cfg := &config.Config{Host: "127.0.0.1", Port: 0}
	srv := server.NewServer(memory.NewStore(events), events, cfg)
	RegisterAll(srv)
	return srv
}

func doRequest(srv *server.Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)
	return w
}

func TestCreatePerson(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(srv, "POST", "/people", `{"name":"Fred","email":"Fred@Example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var person model.Person
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &person))
	assert.Equal(t, "Fred", person.Name)
	// BeforeInsert lowercases the email
	assert.Equal(t, "fred@example.com", person.Email)
	assert.False(t, person.CreatedAt.IsZero())
	assert.False(t, person.UpdatedAt.IsZero())
}

func TestCreatePersonRejected(t *testing.T) {
	srv := newTestServer(t)

	// A blank name fails the entity's own BeforeInsert hook
	w := doRequest(srv, "POST", "/people", `{"name":"","email":"x@example.com"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "name")
}

func TestCreatePersonCancelled(t *testing.T) {
	srv := newTestServer(t)
	err := srv.Events.RegisterListener(lifecycle.TokenBeforeInsert, func(ev *lifecycle.Event) error {
		ev.Cancel()
		return nil
	})
	require.NoError(t, err)

	w := doRequest(srv, "POST", "/people", `{"name":"Fred","email":"fred@example.com"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "cancelled")

	w = doRequest(srv, "GET", "/people/Fred", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePersonMalformedBody(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(srv, "POST", "/people", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPerson(t *testing.T) {
	srv := newTestServer(t)
	doRequest(srv, "POST", "/people", `{"name":"Fred","email":"fred@example.com"}`)

	w := doRequest(srv, "GET", "/people/Fred", "")
	require.Equal(t, http.StatusOK, w.Code)

	var person model.Person
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &person))
	assert.Equal(t, "Fred", person.Name)

	w = doRequest(srv, "GET", "/people/Wilma", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePerson(t *testing.T) {
	srv := newTestServer(t)
	doRequest(srv, "POST", "/people", `{"name":"Fred","email":"fred@example.com"}`)

	w := doRequest(srv, "PUT", "/people/Fred", `{"email":"fred@bedrock.example"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var person model.Person
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &person))
	assert.Equal(t, "fred@bedrock.example", person.Email)

	w = doRequest(srv, "PUT", "/people/Wilma", `{"email":"wilma@bedrock.example"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePerson(t *testing.T) {
	srv := newTestServer(t)
	doRequest(srv, "POST", "/people", `{"name":"Fred","email":"fred@example.com"}`)

	w := doRequest(srv, "DELETE", "/people/Fred", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(srv, "GET", "/people/Fred", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(srv, "DELETE", "/people/Fred", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidatePerson(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(srv, "POST", "/people/validate", `{"person":{"name":"Fred","email":"fred@example.com"}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "valid")

	w = doRequest(srv, "POST", "/people/validate", `{"person":{"name":"Fred","email":"not-an-email"},"properties":["email"]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "email")
}
