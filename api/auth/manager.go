package auth

import (
	"vendora_server/api/middleware"
	"vendora_server/services"
	"vendora_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger      *gecho.Logger
	authService *services.AuthService
	cfg         *structs.Config
	mw          *middleware.Middleware
}

func NewAuthRoutesManager(
	logger *gecho.Logger,
	authService *services.AuthService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:      logger,
		authService: authService,
		cfg:         cfg,
		mw:          mw,
	}
}

func (arm *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", arm.HandleRegister)
		r.Post("/login", arm.HandleLogin)
		r.Post("/logout", arm.HandleLogout)
		r.Post("/refresh", arm.HandleRefresh)

		// OTP issuance is brute-forceable, so these fail closed
		r.Group(func(r chi.Router) {
			r.Use(arm.mw.StrictRateLimitMiddleware(arm.cfg.RateLimit.AuthLimit, arm.cfg.RateLimit.AuthWindow))
			r.Post("/verify", arm.HandleVerifyOTP)
			r.Post("/resend", arm.HandleResendOTP)
		})

		r.Group(func(r chi.Router) {
			r.Use(arm.mw.UserAuthMiddleware)
			r.Get("/me", arm.HandleMe)
		})
	})
}
