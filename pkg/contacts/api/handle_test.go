package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatrapp/chatr/pkg/contacts"
	"github.com/chatrapp/chatr/pkg/token"
)

func newTestServer(t *testing.T) (*httptest.Server, *token.Service) {
	t.Helper()

	repo := contacts.NewInMemRepository()
	repo.AddMember(1, "ada", "ada@example.com", "Ada", "Lovelace")
	repo.AddMember(2, "charles", "charles@example.com", "Charles", "Babbage")

	tokens := token.NewService("test-secret")
	handle := NewHandle(contacts.NewService(repo))

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(token.Verifier(tokens.JWTAuth()))
		r.Use(token.Authenticator)
		r.Mount("/contacts", handle.Routes())
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, tokens
}

func doAs(t *testing.T, srv *httptest.Server, tokens *token.Service, memberID int64, email, method, path string) *http.Response {
	t.Helper()

	signed, err := tokens.IssueToken(email, memberID)
	require.NoError(t, err)

	req, err := http.NewRequest(method, srv.URL+path, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestContactsRequireToken(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/contacts/current")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestContactsLifecycle(t *testing.T) {
	srv, tokens := newTestServer(t)

	// Ada requests Charles.
	resp := doAs(t, srv, tokens, 1, "ada@example.com", http.MethodPost, "/contacts/charles@example.com")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created CreateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.True(t, created.Success)

	// Duplicate in the reverse direction conflicts.
	resp = doAs(t, srv, tokens, 2, "charles@example.com", http.MethodPost, "/contacts/ada@example.com")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Ada cannot accept her own request.
	connPath := "/contacts/accept/" + strconv.FormatInt(created.ConnectionID, 10)
	resp = doAs(t, srv, tokens, 1, "ada@example.com", http.MethodPut, connPath)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Charles accepts.
	resp = doAs(t, srv, tokens, 2, "charles@example.com", http.MethodPut, connPath)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Both sides now see each other.
	resp = doAs(t, srv, tokens, 1, "ada@example.com", http.MethodGet, "/contacts/current")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed ListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	resp.Body.Close()
	require.Len(t, listed.Contacts, 1)
	assert.Equal(t, "charles", listed.Contacts[0].Username)
}

func TestContactsNonNumericID(t *testing.T) {
	srv, tokens := newTestServer(t)

	resp := doAs(t, srv, tokens, 1, "ada@example.com", http.MethodPut, "/contacts/accept/abc")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Malformed parameter: connId must be a number", out.Message)
}
