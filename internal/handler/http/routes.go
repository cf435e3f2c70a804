package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.maxBodyBytes > 0 {
		router.Use(middleware.RequestSize(h.maxBodyBytes))
	}
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.NotFound(apiNotFound)
		r.MethodNotAllowed(apiNotFound)

		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			// routes without authorization
			r.Post("/register", h.register)
			r.Post("/login", h.login)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/logout", h.logout)
				r.Get("/me", h.me)
				r.Post("/change-password", h.changePassword)
			})
		})

		r.Route("/sync", func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.pull)
			r.Put("/", h.push)
			r.Get("/pull", h.pull)
			r.Post("/push", h.legacyPush)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.auth, h.requireAdmin)
			r.Get("/stats", h.stats)
			r.Get("/users", h.listUsers)
			r.Patch("/users/{id}/ban", h.toggleBan)
			r.Patch("/users/{id}/reset-password", h.resetPassword)
			r.Delete("/users/{id}", h.deleteUser)
			r.Post("/invite-codes", h.createInviteCodes)
			r.Get("/invite-codes", h.listInviteCodes)
			r.Delete("/invite-codes/{id}", h.deleteInviteCode)
		})
	})

	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	if h.adminDir != "" {
		admin := newStaticSite(h.adminDir, "/admin", 0)
		router.Get("/admin", http.RedirectHandler("/admin/", http.StatusMovedPermanently).ServeHTTP)
		router.Get("/admin/*", admin.ServeHTTP)
		router.Head("/admin/*", admin.ServeHTTP)
	}
	if h.staticDir != "" {
		web := newStaticSite(h.staticDir, "", webAssetMaxAge)
		router.Get("/*", web.ServeHTTP)
		router.Head("/*", web.ServeHTTP)
	}

	return router
}
