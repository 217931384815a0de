package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/quorumhq/rollcall/internal/rollcall/service"
	"github.com/quorumhq/rollcall/internal/rollcall/store"
	"github.com/quorumhq/rollcall/pkg/httpx"
	"github.com/quorumhq/rollcall/pkg/jwtx"
	"github.com/quorumhq/rollcall/pkg/slogx"

	_ "github.com/quorumhq/rollcall/api/rollcall" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.Signer
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	AuthService       *service.AuthService
	CommitteeService  *service.CommitteeService
	MembershipService *service.MembershipService
	MeetingService    *service.MeetingService
	AttendanceService *service.AttendanceService
	ReportService     *service.ReportService
}

func NewRouter(
	signer *jwtx.Signer,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerCommittees()
	r.registerMeetings()
	r.registerAttendance()
	r.registerReports()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Rollcall Attendance Service API
//	@version		0.1.0
//	@description	Committee meeting attendance tracking: memberships with soft delete, meeting lifecycles, single-correction attendance records and reporting.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with token verification, identity resolution and a per-user
// rate limit.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig, extra ...httpx.Middleware) http.Handler {
	mws := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		identityMiddleware(r.AuthService),
	}
	mws = append(mws, extra...)
	mws = append(mws, httpx.RateLimitByUser(limit))
	return httpx.Chain(h, mws...)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential endpoints get strict per-IP limits to slow brute force.
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerCommittees() {
	h := &CommitteesHandler{
		CommitteeService:  r.CommitteeService,
		MembershipService: r.MembershipService,
	}

	r.Mux.Handle("GET /committees",
		r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /committees/my",
		r.secured(http.HandlerFunc(h.HandleListMine), httpx.LenientLimit))
	r.Mux.Handle("GET /committees/{id}",
		r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))

	// Mutations are admin only.
	r.Mux.Handle("POST /committees",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit, requireAdmin))
	r.Mux.Handle("POST /committees/{id}/members",
		r.secured(http.HandlerFunc(h.HandleAddMember), httpx.ModerateLimit, requireAdmin))
	r.Mux.Handle("DELETE /committees/{id}/members/{userId}",
		r.secured(http.HandlerFunc(h.HandleRemoveMember), httpx.ModerateLimit, requireAdmin))
}

func (r *Router) registerMeetings() {
	h := &MeetingsHandler{
		MeetingService:    r.MeetingService,
		MembershipService: r.MembershipService,
		AttendanceService: r.AttendanceService,
	}

	r.Mux.Handle("GET /meetings/committee/{committeeId}",
		r.secured(http.HandlerFunc(h.HandleListForCommittee), httpx.LenientLimit))
	r.Mux.Handle("GET /meetings/my-upcoming",
		r.secured(http.HandlerFunc(h.HandleUpcoming), httpx.LenientLimit))
	r.Mux.Handle("GET /meetings/{id}",
		r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))

	r.Mux.Handle("POST /meetings",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit, requireAdmin))
	r.Mux.Handle("PATCH /meetings/{id}/status",
		r.secured(http.HandlerFunc(h.HandleUpdateStatus), httpx.ModerateLimit, requireAdmin))
}

func (r *Router) registerAttendance() {
	h := &AttendanceHandler{AttendanceService: r.AttendanceService}

	r.Mux.Handle("POST /attendance/mark",
		r.secured(http.HandlerFunc(h.HandleMark), httpx.ModerateLimit))
	r.Mux.Handle("GET /attendance/meeting/{meetingId}",
		r.secured(http.HandlerFunc(h.HandleGetOwn), httpx.LenientLimit))
	r.Mux.Handle("GET /attendance/meeting/{meetingId}/all",
		r.secured(http.HandlerFunc(h.HandleRoster), httpx.LenientLimit))
}

func (r *Router) registerReports() {
	h := &ReportsHandler{ReportService: r.ReportService}

	r.Mux.Handle("GET /reports/committee/{id}",
		r.secured(http.HandlerFunc(h.HandleCommitteeReport), httpx.ModerateLimit))
	r.Mux.Handle("GET /reports/member/{userId}",
		r.secured(http.HandlerFunc(h.HandleMemberReport), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
