package marketplace

import (
	"vendora_server/api/middleware"
	"vendora_server/services"
	"vendora_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type MarketplaceRoutesManager struct {
	logger             *gecho.Logger
	marketplaceService *services.MarketplaceService
	searchService      *services.SearchService
	cfg                *structs.Config
	mw                 *middleware.Middleware
}

func NewMarketplaceRoutesManager(
	logger *gecho.Logger,
	marketplaceService *services.MarketplaceService,
	searchService *services.SearchService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *MarketplaceRoutesManager {
	return &MarketplaceRoutesManager{
		logger:             logger,
		marketplaceService: marketplaceService,
		searchService:      searchService,
		cfg:                cfg,
		mw:                 mw,
	}
}

func (mrm *MarketplaceRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/marketplace", func(r chi.Router) {
		r.Get("/", mrm.HandleGetFeed)
		r.Get("/highlights", mrm.HandleGetHighlights)
	})
	r.Get("/search", mrm.HandleSearch)
}
