package handlers

import (
	"net/http"

	_ "github.com/tripkoin/cityguide/docs"
	"github.com/tripkoin/cityguide/internal/config"
	adminhandlers "github.com/tripkoin/cityguide/internal/handlers/admin"
	authhandlers "github.com/tripkoin/cityguide/internal/handlers/auth"
	campaignhandlers "github.com/tripkoin/cityguide/internal/handlers/campaigns"
	placehandlers "github.com/tripkoin/cityguide/internal/handlers/places"
	rewardhandlers "github.com/tripkoin/cityguide/internal/handlers/rewards"
	"github.com/tripkoin/cityguide/internal/service"
	"github.com/tripkoin/cityguide/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type RewardHandler interface {
	ClaimReward(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type PlaceHandler interface {
	GetPlaces(w http.ResponseWriter, r *http.Request)
}

type CampaignHandler interface {
	GetCampaigns(w http.ResponseWriter, r *http.Request)
	GetCampaign(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
	GrantCoins(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	RewardHandler   RewardHandler
	PlaceHandler    PlaceHandler
	CampaignHandler CampaignHandler
	AdminHandler    AdminHandler
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		RewardHandler:   rewardhandlers.New(s.RewardService, cfg),
		PlaceHandler:    placehandlers.New(s.PlaceService),
		CampaignHandler: campaignhandlers.New(s.CampaignService),
		AdminHandler:    adminhandlers.New(s.StatsService, s.GrantService),
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
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/rewards", func(r chi.Router) {
				r.Post("/claim", h.RewardHandler.ClaimReward)
				r.Get("/balance", h.RewardHandler.GetBalance)
				r.Get("/transactions", h.RewardHandler.GetTransactions)
			})
			r.Get("/places", h.PlaceHandler.GetPlaces)
			r.Route("/campaigns", func(r chi.Router) {
				r.Get("/", h.CampaignHandler.GetCampaigns)
				r.Get("/{id}", h.CampaignHandler.GetCampaign)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminMiddleware)
				r.Get("/stats", h.AdminHandler.GetStats)
				r.Post("/grant", h.AdminHandler.GrantCoins)
			})
		})
	})

	return r
}
