package http_test

import (
	"testing"

	"github.com/quorumhq/rollcall/pkg/rollcallsdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL := newTestServer(t)
	client := rollcallsdk.NewClient(baseURL)

	live, err := client.Livez(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "ok", live.Status)
	assert.Equal(t, "test", live.Version)
	assert.Nil(t, live.Checks)

	ready, err := client.Readyz(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	assert.Equal(t, "ok", ready.Checks.Database)
	assert.Equal(t, "ok", ready.Checks.Signer)
}
