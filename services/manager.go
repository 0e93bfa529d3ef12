package services

import (
	"vendora_server/database"
	"vendora_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService         *AuthService
	EmailService        *EmailService
	CacheService        *CacheService
	HealthService       *HealthService
	StoreService        *StoreService
	ItemService         *ItemService
	MediaService        *MediaService
	EngagementService   *EngagementService
	SearchService       *SearchService
	MarketplaceService  *MarketplaceService
	StorefrontService   *StorefrontService
	CommentService      *CommentService
	NotificationService *NotificationService
	ReportService       *ReportService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	authService := NewAuthService(cfg, logger, db, cacheService, emailService)
	healthService := NewHealthService(logger, db, cacheService)
	mediaService := NewMediaService(logger, cfg, db)
	storeService := NewStoreService(logger, db, cacheService, mediaService)
	itemService := NewItemService(logger, db, cacheService, mediaService)
	notificationService := NewNotificationService(logger, db, emailService)
	engagementService := NewEngagementService(logger, NewEngagementStore(db), notificationService)
	searchService := NewSearchService(logger, NewSearchSource(db))
	marketplaceService := NewMarketplaceService(logger, db, cacheService)
	storefrontService := NewStorefrontService(logger, storeService, mediaService, engagementService, cacheService)
	commentService := NewCommentService(logger, db, notificationService)
	reportService := NewReportService(logger, db, notificationService)

	return &ServiceManager{
		AuthService:         authService,
		EmailService:        emailService,
		CacheService:        cacheService,
		HealthService:       healthService,
		StoreService:        storeService,
		ItemService:         itemService,
		MediaService:        mediaService,
		EngagementService:   engagementService,
		SearchService:       searchService,
		MarketplaceService:  marketplaceService,
		StorefrontService:   storefrontService,
		CommentService:      commentService,
		NotificationService: notificationService,
		ReportService:       reportService,
	}
}
