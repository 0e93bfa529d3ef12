package storefront

import (
	"vendora_server/api/middleware"
	"vendora_server/services"
	"vendora_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// StorefrontRoutesManager serves the public tenant pages: the storefront
// itself and the order hand-off to the seller's contact channel.
type StorefrontRoutesManager struct {
	logger            *gecho.Logger
	storefrontService *services.StorefrontService
	storeService      *services.StoreService
	engagementService *services.EngagementService
	cfg               *structs.Config
	mw                *middleware.Middleware
}

func NewStorefrontRoutesManager(
	logger *gecho.Logger,
	storefrontService *services.StorefrontService,
	storeService *services.StoreService,
	engagementService *services.EngagementService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *StorefrontRoutesManager {
	return &StorefrontRoutesManager{
		logger:            logger,
		storefrontService: storefrontService,
		storeService:      storeService,
		engagementService: engagementService,
		cfg:               cfg,
		mw:                mw,
	}
}

func (sfm *StorefrontRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/shop/{slug}", func(r chi.Router) {
		r.Get("/", sfm.HandleGetStorefront)
		r.Post("/order", sfm.HandleOrderClick)
	})
}
