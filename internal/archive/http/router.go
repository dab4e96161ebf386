package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/docstash/docstash/internal/archive/service"
	"github.com/docstash/docstash/internal/archive/store"
	"github.com/docstash/docstash/pkg/httpx"
	"github.com/docstash/docstash/pkg/jwtx"
	"github.com/docstash/docstash/pkg/slogx"

	_ "github.com/docstash/docstash/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	AuthService      *service.AuthService
	PasswordService  *service.PasswordService
	UploadService    *service.UploadService
	ArchiveService   *service.ArchiveService
	WorkspaceService *service.WorkspaceService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUser()
	r.registerArchives()
	r.registerWorkspaces()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			DocStash Archive Service API
//	@version		0.1.0
//	@description	Multi-tenant document archive backend: account and credential lifecycle plus chunked file ingestion.
//	@description
//	@description	Access tokens are HS256 JWTs carried as "Bearer {token}".
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

// secured wraps h with token verification, the active-account gate and a
// per-subject rate limit.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		RequireActiveUser(r.AuthService),
		httpx.RateLimitBySubject(limit),
	)
}

func (r *Router) registerAuth() {
	// Credential endpoints get the strict per-IP limit to slow brute force.
	r.Mux.Handle("POST /api/v1/auth/login",
		httpx.Chain(&LoginHandler{AuthService: r.AuthService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /api/v1/auth/register",
		httpx.Chain(&RegisterHandler{AuthService: r.AuthService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Verification is pure CPU work, no DB, so a moderate limit suffices.
	r.Mux.Handle("POST /api/v1/auth/verify/token",
		httpx.Chain(&VerifyTokenHandler{AuthService: r.AuthService},
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUser() {
	r.Mux.Handle("GET /api/v1/user/me",
		r.secured(&ProfileHandler{}, httpx.LenientLimit))

	r.Mux.Handle("POST /api/v1/user/forgot-password",
		httpx.Chain(&ForgotPasswordHandler{PasswordService: r.PasswordService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("PUT /api/v1/user/reset-password",
		httpx.Chain(&ResetPasswordHandler{PasswordService: r.PasswordService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("PUT /api/v1/user/change-password",
		r.secured(&ChangePasswordHandler{PasswordService: r.PasswordService}, httpx.ModerateLimit))

	r.Mux.Handle("DELETE /api/v1/user/profile",
		r.secured(&DeactivateHandler{PasswordService: r.PasswordService}, httpx.ModerateLimit))
}

func (r *Router) registerArchives() {
	h := &ArchivesHandler{ArchiveService: r.ArchiveService}

	r.Mux.Handle("GET /api/v1/archives",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/v1/archives/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/archives",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/v1/archives/{id}",
		r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))

	r.Mux.Handle("POST /api/v1/archives/upload",
		httpx.Chain(&UploadHandler{UploadService: r.UploadService},
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerWorkspaces() {
	h := &WorkspacesHandler{WorkspaceService: r.WorkspaceService}

	r.Mux.Handle("GET /api/v1/workspaces",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/v1/workspaces/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/workspaces",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
