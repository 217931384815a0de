package rollcall_test

import (
	"testing"

	"github.com/quorumhq/rollcall/pkg/rollcallsdk"
	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check endpoint works without auth.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupRollcallContainer(t)
	defer cleanup()

	client := rollcallsdk.NewClient(baseURL)

	health, err := client.Livez(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Version)

	t.Logf("Livez endpoint is healthy")
}

// TestReadyzEndpoint verifies the readiness check reports its dependencies.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupRollcallContainer(t)
	defer cleanup()

	client := rollcallsdk.NewClient(baseURL)

	health, err := client.Readyz(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)

	t.Logf("Readyz endpoint is healthy")
}

// TestAuthRequired verifies that API endpoints reject anonymous requests.
func TestAuthRequired(t *testing.T) {
	baseURL, cleanup := setupRollcallContainer(t)
	defer cleanup()

	client := rollcallsdk.NewClient(baseURL)

	_, err := client.ListCommittees(t.Context())
	require.Error(t, err, "Anonymous committee listing should be rejected")

	var apiErr *rollcallsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.StatusCode)
}
