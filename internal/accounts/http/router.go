package http

import (
	"log/slog"
	"net/http"
	"time"

	_ "github.com/aussiebroadwan/dotes/api/accounts" // Swagger docs
	"github.com/aussiebroadwan/dotes/internal/accounts/metrics"
	"github.com/aussiebroadwan/dotes/internal/accounts/service"
	"github.com/aussiebroadwan/dotes/internal/accounts/store"
	"github.com/aussiebroadwan/dotes/pkg/httpx"
	"github.com/aussiebroadwan/dotes/pkg/slogx"

	httpSwagger "github.com/swaggo/http-swagger"
)

// RateLimits are the per-route profiles. A profile with zero requests
// disables limiting for its routes.
type RateLimits struct {
	// Strict covers credential endpoints (login, register)
	Strict httpx.RateLimitConfig
	// Moderate covers authenticated mutations
	Moderate httpx.RateLimitConfig
	// Lenient covers reads and probes
	Lenient httpx.RateLimitConfig
}

// DefaultRateLimits returns the production profiles.
func DefaultRateLimits() RateLimits {
	return RateLimits{
		Strict:   httpx.PerMinute(5),
		Moderate: httpx.PerMinute(20),
		Lenient:  httpx.PerMinute(100),
	}
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	limits       RateLimits

	store           store.Store
	AccountService  *service.AccountService
	IdentityService *service.IdentityService
	Metrics         *metrics.Metrics // Optional: /metrics is only served when set
}

func NewRouter(
	buildVersion string,
	st store.Store,
	limits RateLimits,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		limits:       limits,
		store:        st,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerAccount()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())

	if r.Metrics != nil {
		// Innermost, so it sees the pattern the mux matched
		r.middlewares = append(r.middlewares, r.Metrics.HTTPMiddleware)
		r.Mux.Handle("GET /metrics", r.Metrics.Handler())
	}

	r.Mux.Handle("/", http.HandlerFunc(notFound))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Dotes Account Service API
//	@version		0.1.0
//	@description	Multi-tenant account service. Users log in with email and password and receive a 30 minute HS256 access token.
//	@description
//	@description				Every user belongs to exactly one workspace and is either an admin or a member of it.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/dotes
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	AccessToken
//	@in							header
//	@name						X-Access-Token
//	@description				Access token returned by POST /login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// handle registers h for each method on path, plus an envelope 405 for
// every other method.
func (r *Router) handle(path string, h http.Handler, methods ...string) {
	for _, m := range methods {
		r.Mux.Handle(m+" "+path, h)
	}
	r.Mux.Handle(path, methodNotAllowed(methods...))
}

func (r *Router) registerAuth() {
	// POST /login - strict rate limit by IP (credential guessing)
	r.handle("/login",
		httpx.Chain(&LoginHandler{AccountService: r.AccountService},
			httpx.RateLimitByIP(r.limits.Strict),
		),
		http.MethodPost,
	)

	// POST /register - optional identity, strict rate limit by IP
	r.handle("/register",
		httpx.Chain(&RegisterHandler{AccountService: r.AccountService},
			OptionalIdentity(r.IdentityService),
			httpx.RateLimitByIP(r.limits.Strict),
		),
		http.MethodPost,
	)
}

func (r *Router) registerAccount() {
	// PUT|POST /update_password - moderate rate limit by user
	r.handle("/update_password",
		httpx.Chain(&UpdatePasswordHandler{AccountService: r.AccountService},
			RequiredIdentity(r.IdentityService),
			httpx.RateLimitByUser(r.limits.Moderate),
		),
		http.MethodPost, http.MethodPut,
	)

	// GET /profile - lenient rate limit by user
	r.handle("/profile",
		httpx.Chain(&ProfileHandler{},
			RequiredIdentity(r.IdentityService),
			httpx.RateLimitByUser(r.limits.Lenient),
		),
		http.MethodGet,
	)

	// GET /get_all_users - lenient rate limit by user
	r.handle("/get_all_users",
		httpx.Chain(&UsersHandler{AccountService: r.AccountService},
			RequiredIdentity(r.IdentityService),
			httpx.RateLimitByUser(r.limits.Lenient),
		),
		http.MethodGet,
	)
}

func (r *Router) registerAdmin() {
	// PUT|POST /update_user/{email} - moderate rate limit by user
	r.handle("/update_user/{email}",
		httpx.Chain(&UpdateUserHandler{AccountService: r.AccountService},
			RequiredIdentity(r.IdentityService),
			httpx.RateLimitByUser(r.limits.Moderate),
		),
		http.MethodPost, http.MethodPut,
	)

	// DELETE /delete_user/{email} - moderate rate limit by user
	r.handle("/delete_user/{email}",
		httpx.Chain(&DeleteUserHandler{AccountService: r.AccountService},
			RequiredIdentity(r.IdentityService),
			httpx.RateLimitByUser(r.limits.Moderate),
		),
		http.MethodDelete,
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}", IndexHandler())

	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.IdentityService),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
}
