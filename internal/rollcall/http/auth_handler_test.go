package http_test

import (
	"net/http"
	"testing"

	"github.com/quorumhq/rollcall/pkg/rollcallsdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	baseURL := newTestServer(t)

	client := rollcallsdk.NewClient(baseURL)
	resp, err := client.Register(t.Context(), rollcallsdk.RegisterRequest{
		Email:    "Alice@Example.com",
		Name:     "Alice",
		Password: testPassword,
	})
	require.NoError(t, err)

	// Emails are normalised to lower case.
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Equal(t, "MEMBER", resp.User.Role)
	assert.NotEmpty(t, resp.Token)

	login, err := client.Login(t.Context(), rollcallsdk.LoginRequest{
		Email:    "alice@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
	assert.NotEmpty(t, login.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	baseURL := newTestServer(t)

	client := rollcallsdk.NewClient(baseURL)
	_, err := client.Register(t.Context(), rollcallsdk.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: testPassword,
	})
	require.NoError(t, err)

	// Duplicate registration is a 400, not 409.
	_, err = client.Register(t.Context(), rollcallsdk.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice Again",
		Password: testPassword,
	})
	requireAPIError(t, err, http.StatusBadRequest, rollcallsdk.ErrorCodeBadRequest)
}

func TestLoginBadCredentials(t *testing.T) {
	baseURL := newTestServer(t)

	client := rollcallsdk.NewClient(baseURL)

	// Unknown email and wrong password are indistinguishable.
	_, err := client.Login(t.Context(), rollcallsdk.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	requireAPIError(t, err, http.StatusUnauthorized, rollcallsdk.ErrorCodeUnauthenticated)

	_, err = client.Login(t.Context(), rollcallsdk.LoginRequest{
		Email:    testAdminEmail,
		Password: "wrong-password",
	})
	requireAPIError(t, err, http.StatusUnauthorized, rollcallsdk.ErrorCodeUnauthenticated)
}

func TestRequestsWithoutToken(t *testing.T) {
	baseURL := newTestServer(t)

	client := rollcallsdk.NewClient(baseURL)

	_, err := client.ListCommittees(t.Context())
	require.Error(t, err)

	var apiErr *rollcallsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}
