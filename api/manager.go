package api

import (
	"vendora_server/api/auth"
	"vendora_server/api/health"
	"vendora_server/api/items"
	"vendora_server/api/marketplace"
	"vendora_server/api/middleware"
	"vendora_server/api/notifications"
	"vendora_server/api/reports"
	"vendora_server/api/storefront"
	"vendora_server/api/stores"
	"vendora_server/services"
	"vendora_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	authRoutes         *auth.AuthRoutesManager
	storeRoutes        *stores.StoreRoutesManager
	itemRoutes         *items.ItemRoutesManager
	storefrontRoutes   *storefront.StorefrontRoutesManager
	marketplaceRoutes  *marketplace.MarketplaceRoutesManager
	notificationRoutes *notifications.NotificationRoutesManager
	reportRoutes       *reports.ReportRoutesManager
	healthRoutes       *health.HealthRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	sm *services.ServiceManager,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *routerManager {
	return &routerManager{
		authRoutes:         auth.NewAuthRoutesManager(logger, sm.AuthService, cfg, mw),
		storeRoutes:        stores.NewStoreRoutesManager(logger, sm.StoreService, sm.ItemService, sm.MediaService, sm.CommentService, cfg, mw),
		itemRoutes:         items.NewItemRoutesManager(logger, sm.ItemService, sm.EngagementService, sm.CommentService, sm.MediaService, cfg, mw),
		storefrontRoutes:   storefront.NewStorefrontRoutesManager(logger, sm.StorefrontService, sm.StoreService, sm.EngagementService, cfg, mw),
		marketplaceRoutes:  marketplace.NewMarketplaceRoutesManager(logger, sm.MarketplaceService, sm.SearchService, cfg, mw),
		notificationRoutes: notifications.NewNotificationRoutesManager(logger, sm.NotificationService, sm.StoreService, cfg, mw),
		reportRoutes:       reports.NewReportRoutesManager(logger, sm.ReportService, sm.StoreService, cfg, mw),
		healthRoutes:       health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.authRoutes.RegisterRoutes(r)
	rm.storeRoutes.RegisterRoutes(r)
	rm.itemRoutes.RegisterRoutes(r)
	rm.storefrontRoutes.RegisterRoutes(r)
	rm.marketplaceRoutes.RegisterRoutes(r)
	rm.notificationRoutes.RegisterRoutes(r)
	rm.reportRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
