package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/dotes/internal/accounts/service"
	"github.com/aussiebroadwan/dotes/internal/accounts/store"
	"github.com/aussiebroadwan/dotes/pkg/accountsdk"
	"github.com/aussiebroadwan/dotes/pkg/httpx"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe endpoint returning basic service health status, uptime, and version information
//	@Description	This endpoint always returns 200 OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	accountsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := accountsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}
		httpx.WriteJSON(w, http.StatusOK, response)
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for the database and token signer
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	accountsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	accountsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	identity *service.IdentityService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &accountsdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: unreachable"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// Tokens cannot be verified without a configured codec
		if identity == nil || identity.Verifier == nil {
			checks.Signer = "error: not configured"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := accountsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
