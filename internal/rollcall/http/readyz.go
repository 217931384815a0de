package http

import (
	"net/http"
	"time"

	"github.com/quorumhq/rollcall/internal/rollcall/store"
	"github.com/quorumhq/rollcall/pkg/httpx"
	"github.com/quorumhq/rollcall/pkg/jwtx"
	"github.com/quorumhq/rollcall/pkg/rollcallsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the database and token signer
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	rollcallsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	rollcallsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	signer *jwtx.Signer,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &rollcallsdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// Check the token signer has usable key material
		if err := signer.Validate(); err != nil {
			checks.Signer = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := rollcallsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
