package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestLoginSuccess(t *testing.T) {
	srv, a := newTestServer(t)

	_, _, err := a.AuthService.Register("staff@gracechapel.org", "a-sufficiently-long-pass", "Pat", "Deacon")
	require.NoError(t, err)

	resp := postJSON(t, srv.URL+"/auth/login", map[string]string{
		"email":    "staff@gracechapel.org",
		"password": "a-sufficiently-long-pass",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeJSON(t, resp)
	assert.Equal(t, "login successful", out["message"])
	assert.NotEmpty(t, out["token"])

	user, ok := out["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "staff@gracechapel.org", user["email"])
	// The hash never leaves the server
	_, leaked := user["passwordHash"]
	assert.False(t, leaked)
	_, leaked = user["password_hash"]
	assert.False(t, leaked)
}

func TestLoginBadCredentials(t *testing.T) {
	srv, a := newTestServer(t)

	_, _, err := a.AuthService.Register("staff@gracechapel.org", "a-sufficiently-long-pass", "", "")
	require.NoError(t, err)

	// Wrong password and unknown email produce the exact same response
	for _, creds := range []map[string]string{
		{"email": "staff@gracechapel.org", "password": "not-the-right-one!"},
		{"email": "ghost@gracechapel.org", "password": "a-sufficiently-long-pass"},
	} {
		resp := postJSON(t, srv.URL+"/auth/login", creds)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		out := decodeJSON(t, resp)
		assert.Equal(t, "Invalid credentials", out["error"])
	}
}

func TestLoginMissingFields(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/auth/login", map[string]string{"email": "staff@gracechapel.org"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decodeJSON(t, resp)
	assert.Equal(t, "email and password are required", out["error"])
}

func TestRegisterThenVerify(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/auth/register", map[string]string{
		"email":     "new@gracechapel.org",
		"password":  "a-sufficiently-long-pass",
		"firstName": "Sam",
		"lastName":  "Elder",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeJSON(t, resp)
	assert.Equal(t, "registration successful", out["message"])
	token, ok := out["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	verifyResp := doRequest(t, http.MethodGet, srv.URL+"/auth/verify", token, nil, "")
	require.Equal(t, http.StatusOK, verifyResp.StatusCode)
	verified := decodeJSON(t, verifyResp)
	assert.Equal(t, true, verified["valid"])
	user, ok := verified["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "new@gracechapel.org", user["email"])
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/auth/register", map[string]string{
		"email":    "new@gracechapel.org",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decodeJSON(t, resp)
	assert.Equal(t, "password must be at least 12 characters", out["error"])
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	srv, a := newTestServer(t)

	_, _, err := a.AuthService.Register("staff@gracechapel.org", "a-sufficiently-long-pass", "", "")
	require.NoError(t, err)

	resp := postJSON(t, srv.URL+"/auth/register", map[string]string{
		"email":    "staff@gracechapel.org",
		"password": "another-long-secret-987!",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decodeJSON(t, resp)
	assert.Equal(t, "email already exists", out["error"])
}
