package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/sanjaygurung/wildfolio/internal/auth"
	"github.com/sanjaygurung/wildfolio/internal/blog"
	"github.com/sanjaygurung/wildfolio/internal/contact"
	"github.com/sanjaygurung/wildfolio/internal/donation"
	"github.com/sanjaygurung/wildfolio/internal/gallery"
	"github.com/sanjaygurung/wildfolio/internal/joinrequest"
	"github.com/sanjaygurung/wildfolio/internal/paymentmethod"
	"github.com/sanjaygurung/wildfolio/internal/settings"
	"github.com/sanjaygurung/wildfolio/internal/transport/middleware"
	"github.com/sanjaygurung/wildfolio/internal/transport/swagger"
)

// Handlers bundles every HTTP handler the router mounts. Fields left nil
// have their routes skipped, which keeps partial wiring possible in tests.
type Handlers struct {
	Auth          *auth.Handler
	Donation      *donation.Handler
	PaymentMethod *paymentmethod.Handler
	Blog          *blog.Handler
	Gallery       *gallery.Handler
	Contact       *contact.Handler
	JoinRequest   *joinrequest.Handler
	Settings      *settings.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORSWithOrigins(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// OpenAPI spec and Swagger UI live at root, outside the API prefix.
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if h.Auth != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", h.Auth.Login)
				sr.Post("/refresh", h.Auth.RefreshToken)
				sr.Post("/logout", h.Auth.Logout)
			})
		}

		// Public site surface: anything the front end renders without a
		// session goes here.
		if h.Donation != nil {
			r.Post("/donations", h.Donation.SubmitDonation)
			r.Get("/donors", h.Donation.ListDonors)
			r.Get("/donors/{id}", h.Donation.GetDonor)
			r.Get("/donation-stats", h.Donation.GetStats)
		}
		if h.PaymentMethod != nil {
			r.Get("/payment-methods", h.PaymentMethod.ListPublic)
		}
		if h.Blog != nil {
			r.Get("/blog", h.Blog.ListPublished)
			r.Get("/blog/{slug}", h.Blog.GetBySlug)
		}
		if h.Gallery != nil {
			r.Get("/gallery", h.Gallery.List)
		}
		if h.Contact != nil {
			r.Post("/contact", h.Contact.Submit)
		}
		if h.JoinRequest != nil {
			r.Post("/join-requests", h.JoinRequest.Submit)
		}
		if h.Settings != nil {
			r.Get("/settings", h.Settings.Get)
		}

		// Admin surface, all behind token auth.
		if h.Auth != nil {
			r.Route("/admin", func(ar chi.Router) {
				ar.Use(h.Auth.AuthMiddleware)

				ar.Get("/users/me", h.Auth.Me)

				if h.Donation != nil {
					ar.Get("/donations", h.Donation.ListDonations)
					ar.Patch("/donations/{id}/status", h.Donation.UpdateStatus)
				}
				if h.PaymentMethod != nil {
					ar.Route("/payment-methods", func(pr chi.Router) {
						pr.Get("/", h.PaymentMethod.ListAdmin)
						pr.Post("/", h.PaymentMethod.Create)
						pr.Patch("/{id}", h.PaymentMethod.Update)
						pr.Delete("/{id}", h.PaymentMethod.Delete)
					})
				}
				if h.Blog != nil {
					ar.Route("/blog", func(br chi.Router) {
						br.Get("/", h.Blog.ListAll)
						br.Post("/", h.Blog.Create)
						br.Patch("/{id}", h.Blog.Update)
						br.Delete("/{id}", h.Blog.Delete)
					})
				}
				if h.Gallery != nil {
					ar.Route("/gallery", func(gr chi.Router) {
						gr.Post("/", h.Gallery.Create)
						gr.Patch("/{id}", h.Gallery.Update)
						gr.Delete("/{id}", h.Gallery.Delete)
					})
				}
				if h.Contact != nil {
					ar.Route("/contact", func(cr chi.Router) {
						cr.Get("/", h.Contact.List)
						cr.Patch("/{id}/read", h.Contact.MarkRead)
						cr.Delete("/{id}", h.Contact.Delete)
					})
				}
				if h.JoinRequest != nil {
					ar.Get("/join-requests", h.JoinRequest.List)
					ar.Patch("/join-requests/{id}/status", h.JoinRequest.UpdateStatus)
				}
				if h.Settings != nil {
					ar.Patch("/settings", h.Settings.Update)
				}
			})
		}
	})
}
