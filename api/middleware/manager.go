package middleware

import (
	"vendora_server/services"
	"vendora_server/structs"

	"github.com/MonkyMars/gecho"
)

type Middleware struct {
	cfg          *structs.Config
	logger       *gecho.Logger
	authService  *services.AuthService
	cacheService *services.CacheService
	storeService *services.StoreService
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, sm *services.ServiceManager) *Middleware {
	return &Middleware{
		cfg:          cfg,
		logger:       logger,
		authService:  sm.AuthService,
		cacheService: sm.CacheService,
		storeService: sm.StoreService,
	}
}
