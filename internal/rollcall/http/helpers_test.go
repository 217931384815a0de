package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "github.com/quorumhq/rollcall/internal/rollcall/http"
	"github.com/quorumhq/rollcall/internal/rollcall/service"
	"github.com/quorumhq/rollcall/internal/rollcall/store/drivers/sqlite"
	"github.com/quorumhq/rollcall/pkg/cryptox"
	"github.com/quorumhq/rollcall/pkg/jwtx"
	"github.com/quorumhq/rollcall/pkg/rollcallsdk"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer        = "rollcall-test"
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "Admin123!"
	testPassword      = "Member123!"
)

// newTestServer wires the full HTTP stack against an in-memory store, seeds
// an admin account and returns the server's base URL.
func newTestServer(t *testing.T) string {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSigner("test-key", pemKey)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := httpapi.NewRouter(
		signer,
		jwtx.NewVerifier(signer.PublicKey(), testIssuer),
		"test",
		st,
		logger,
	)

	authService := &service.AuthService{
		Store:  st,
		Signer: signer,
		Issuer: testIssuer,
	}
	router.AuthService = authService
	router.CommitteeService = &service.CommitteeService{Store: st}
	router.MembershipService = &service.MembershipService{Store: st}
	router.MeetingService = &service.MeetingService{Store: st}
	router.AttendanceService = &service.AttendanceService{Store: st}
	router.ReportService = &service.ReportService{Store: st}
	router.ApplyRoutes()

	require.NoError(t, authService.SeedAdmin(context.Background(), testAdminEmail, "Administrator", testAdminPassword))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv.URL
}

// adminClient logs in as the seeded admin.
func adminClient(t *testing.T, baseURL string) *rollcallsdk.Client {
	t.Helper()

	client := rollcallsdk.NewClient(baseURL)
	resp, err := client.Login(t.Context(), rollcallsdk.LoginRequest{
		Email:    testAdminEmail,
		Password: testAdminPassword,
	})
	require.NoError(t, err)
	require.Equal(t, "ADMIN", resp.User.Role)

	client.SetToken(resp.Token)
	return client
}

// memberClient registers a fresh member account.
func memberClient(t *testing.T, baseURL, email, name string) (*rollcallsdk.Client, string) {
	t.Helper()

	client := rollcallsdk.NewClient(baseURL)
	resp, err := client.Register(t.Context(), rollcallsdk.RegisterRequest{
		Email:    email,
		Name:     name,
		Password: testPassword,
	})
	require.NoError(t, err)
	require.Equal(t, "MEMBER", resp.User.Role)

	client.SetToken(resp.Token)
	return client, resp.User.ID
}

// newCommittee creates a committee with a fixed schedule.
func newCommittee(t *testing.T, admin *rollcallsdk.Client, name string) rollcallsdk.Committee {
	t.Helper()

	resp, err := admin.CreateCommittee(t.Context(), rollcallsdk.CreateCommitteeRequest{
		Name:        name,
		Description: "test committee",
		MeetingDay:  "Tuesday",
		MeetingTime: "18:30",
	})
	require.NoError(t, err)
	return resp.Committee
}

// newMeeting creates a meeting for today in the given status.
func newMeeting(t *testing.T, admin *rollcallsdk.Client, committeeID, status string) rollcallsdk.MeetingWithCommittee {
	t.Helper()

	created, err := admin.CreateMeeting(t.Context(), rollcallsdk.CreateMeetingRequest{
		CommitteeID: committeeID,
		Date:        time.Now().UTC().Format("2006-01-02"),
		Notes:       "weekly sync",
	})
	require.NoError(t, err)

	if status == "" || status == "SCHEDULED" {
		return created.Meeting
	}

	updated, err := admin.UpdateMeetingStatus(t.Context(), created.Meeting.ID, status)
	require.NoError(t, err)
	return updated.Meeting
}

// requireAPIError asserts err carries the expected code and HTTP status.
func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)

	var apiErr *rollcallsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
