package handlers

import (
	"net/http"

	_ "github.com/bigshare/bigpoints/docs"
	adminhandlers "github.com/bigshare/bigpoints/internal/handlers/admin"
	authhandlers "github.com/bigshare/bigpoints/internal/handlers/auth"
	earningshandlers "github.com/bigshare/bigpoints/internal/handlers/earnings"
	profilehandlers "github.com/bigshare/bigpoints/internal/handlers/profile"
	"github.com/bigshare/bigpoints/internal/service"
	"github.com/bigshare/bigpoints/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type EarningsHandler interface {
	GetEarnings(w http.ResponseWriter, r *http.Request)
	GetMonthlyEarnings(w http.ResponseWriter, r *http.Request)
	ReportUsage(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	SaveWallet(w http.ResponseWriter, r *http.Request)
	GetReferrals(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)
	GetDailyTotals(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	EarningsHandler EarningsHandler
	ProfileHandler  ProfileHandler
	AdminHandler    AdminHandler

	adminEmail string
}

func New(s *service.Services, adminEmail string) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		EarningsHandler: earningshandlers.New(s.EarningService),
		ProfileHandler:  profilehandlers.New(s.ProfileService),
		AdminHandler:    adminhandlers.New(s.StatService),
		adminEmail:      adminEmail,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Post("/api/usage", h.EarningsHandler.ReportUsage)
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/earnings", func(r chi.Router) {
				r.Get("/", h.EarningsHandler.GetEarnings)
				r.Get("/monthly", h.EarningsHandler.GetMonthlyEarnings)
			})
			r.Post("/wallet", h.ProfileHandler.SaveWallet)
			r.Get("/referrals", h.ProfileHandler.GetReferrals)
		})
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware, auth.AdminMiddleware(h.adminEmail))
		r.Get("/summary", h.AdminHandler.GetSummary)
		r.Get("/monthly", h.AdminHandler.GetMonthlyReport)
		r.Get("/daily", h.AdminHandler.GetDailyTotals)
	})

	return r
}
