// Package rollcallsdk contains the wire types shared between the rollcall
// service and its clients, the typed API errors the handlers emit, and a
// small Go client for driving the HTTP API.
//
// The server side imports this package for request/response shapes so the
// handlers and any Go consumers can never drift apart. The Client is what the
// integration tests use, and what a CLI or bot would build on:
//
//	c := rollcallsdk.NewClient("http://localhost:8080")
//	auth, err := c.Login(ctx, rollcallsdk.LoginRequest{
//		Email:    "chair@example.com",
//		Password: "...",
//	})
//	if err != nil {
//		return err
//	}
//	c.SetToken(auth.Token)
//
//	report, err := c.CommitteeReport(ctx, committeeID, "2026-01-01", "2026-06-30")
package rollcallsdk
