package services

import (
	"context"
	"time"
	"vendora_server/database"
	"vendora_server/lib"
	"vendora_server/structs"
	"vendora_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// storeScopedTables are the tables holding rows keyed to a store by
// store_id. Store teardown scrubs them alongside the item-scoped rows;
// gallery media and store-wide notifications live only here.
var storeScopedTables = []any{
	(*tables.Media)(nil),
	(*tables.Notification)(nil),
	(*tables.Report)(nil),
}

// StoreService manages tenant storefronts: creation, profile updates, slug
// assignment and owner-facing stats.
type StoreService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
	mediaService *MediaService
}

func NewStoreService(logger *gecho.Logger, db *database.DB, cacheService *CacheService, mediaService *MediaService) *StoreService {
	return &StoreService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
		mediaService: mediaService,
	}
}

// slugExists reports whether any store already claims the slug
func (ss *StoreService) slugExists(ctx context.Context) func(string) (bool, error) {
	return func(slug string) (bool, error) {
		return database.Query[tables.Store](ss.db).Where("slug", slug).Exists(ctx)
	}
}

// CreateStore opens a storefront for the owner. Each account gets one
// store; the slug is derived from the brand name and deduplicated with a
// numeric suffix.
func (ss *StoreService) CreateStore(ctx context.Context, ownerID uuid.UUID, req *structs.CreateStoreRequest) (*tables.Store, error) {
	existing, err := database.Query[tables.Store](ss.db).Where("owner_id", ownerID).First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if existing != nil {
		return nil, lib.ErrConflict
	}

	slug, err := lib.UniqueSlug(req.BrandName, ss.slugExists(ctx))
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	channel := tables.ContactChannel(req.ContactChannel)
	if channel == "" {
		channel = tables.ContactWhatsapp
	}

	store := &tables.Store{
		OwnerId:        ownerID,
		BrandName:      req.BrandName,
		BrandLogo:      ss.mediaService.ResolveImage(ctx, req.LogoData, req.LogoURL),
		Bio:            req.Bio,
		WhatsappNumber: req.WhatsappNumber,
		ContactChannel: channel,
		Slug:           slug,
	}

	store, err = database.Query[tables.Store](ss.db).Insert(ctx, store)
	if err != nil {
		mappedErr := lib.MapPgError(err)
		if lib.IsUniqueViolation(mappedErr) {
			// Lost a race on the slug; the caller can simply retry
			ss.logger.Warn("Slug raced during store creation", gecho.Field("slug", slug))
		} else {
			ss.logger.Error("Failed to create store", gecho.Field("error", err), gecho.Field("owner_id", ownerID))
		}
		return nil, mappedErr
	}

	ss.logger.Info("Store created",
		gecho.Field("store_id", store.Id),
		gecho.Field("slug", store.Slug),
	)

	if err := ss.cacheService.InvalidateMarketplaceCache(); err != nil {
		ss.logger.Warn("Failed to invalidate marketplace cache", gecho.Field("error", err))
	}

	return store, nil
}

// UpdateStore applies a partial profile update. The slug is regenerated
// only when the brand name actually changes; bio or contact edits never
// break existing links.
func (ss *StoreService) UpdateStore(ctx context.Context, ownerID, storeID uuid.UUID, req *structs.UpdateStoreRequest) (*tables.Store, error) {
	store, err := ss.getOwnedStore(ctx, ownerID, storeID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{"updated_at": time.Now()}

	if req.BrandName != nil && *req.BrandName != store.BrandName {
		updates["brand_name"] = *req.BrandName

		slug, err := lib.UniqueSlug(*req.BrandName, ss.slugExists(ctx))
		if err != nil {
			return nil, lib.MapPgError(err)
		}
		updates["slug"] = slug
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.WhatsappNumber != nil {
		updates["whatsapp_number"] = *req.WhatsappNumber
	}
	if req.ContactChannel != nil {
		updates["contact_channel"] = *req.ContactChannel
	}
	if req.LogoData != "" || req.LogoURL != "" {
		if logo := ss.mediaService.ResolveImage(ctx, req.LogoData, req.LogoURL); logo != "" {
			updates["brand_logo"] = logo
		}
	}

	if _, err := database.UpdateByID[tables.Store](ss.db, ctx, store.Id, updates); err != nil {
		return nil, lib.MapPgError(err)
	}

	// The public page under the old slug is stale either way
	if err := ss.cacheService.InvalidateStorefrontCache(store.Slug); err != nil {
		ss.logger.Warn("Failed to invalidate storefront cache", gecho.Field("error", err), gecho.Field("slug", store.Slug))
	}

	return database.FindByID[tables.Store](ss.db, ctx, store.Id)
}

// DeleteStore tears down the storefront and everything under it. The
// dependent rows and the store go in one transaction so a failure cannot
// leave orphaned listings behind.
func (ss *StoreService) DeleteStore(ctx context.Context, ownerID, storeID uuid.UUID) error {
	store, err := ss.getOwnedStore(ctx, ownerID, storeID)
	if err != nil {
		return err
	}

	err = database.Transaction(ctx, func(txCtx context.Context, tx bun.Tx) error {
		for _, dep := range itemScopedTables {
			if _, err := tx.NewDelete().Model(dep).
				Where("item_id IN (SELECT id FROM items WHERE store_id = ?)", store.Id).
				Exec(txCtx); err != nil {
				return err
			}
		}
		for _, dep := range storeScopedTables {
			if _, err := tx.NewDelete().Model(dep).Where("store_id = ?", store.Id).Exec(txCtx); err != nil {
				return err
			}
		}
		if _, err := tx.NewDelete().Model((*tables.Item)(nil)).Where("store_id = ?", store.Id).Exec(txCtx); err != nil {
			return err
		}
		_, err := tx.NewDelete().Model((*tables.Store)(nil)).Where("id = ?", store.Id).Exec(txCtx)
		return err
	})
	if err != nil {
		return lib.MapPgError(err)
	}

	if err := ss.cacheService.InvalidateStorefrontCache(store.Slug); err != nil {
		ss.logger.Warn("Failed to invalidate storefront cache", gecho.Field("error", err), gecho.Field("slug", store.Slug))
	}
	if err := ss.cacheService.InvalidateMarketplaceCache(); err != nil {
		ss.logger.Warn("Failed to invalidate marketplace cache", gecho.Field("error", err))
	}

	ss.logger.Info("Store deleted", gecho.Field("store_id", store.Id), gecho.Field("slug", store.Slug))
	return nil
}

// GetStoreBySlug loads a storefront with its items for public rendering
func (ss *StoreService) GetStoreBySlug(ctx context.Context, slug string) (*tables.Store, error) {
	store, err := database.Query[tables.Store](ss.db).
		Where("slug", slug).
		Relation("Items").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if store == nil {
		return nil, lib.ErrNotFound
	}
	return store, nil
}

// GetStoreByOwner loads the account's storefront for dashboard use
func (ss *StoreService) GetStoreByOwner(ctx context.Context, ownerID uuid.UUID) (*tables.Store, error) {
	store, err := database.Query[tables.Store](ss.db).
		Where("owner_id", ownerID).
		Relation("Items").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if store == nil {
		return nil, lib.ErrNotFound
	}
	return store, nil
}

// StoreStats is the owner dashboard summary
type StoreStats struct {
	TotalViews  uint64 `json:"total_views"`
	TotalOrders uint64 `json:"total_orders"`
	ItemCount   int    `json:"item_count"`
	TotalLikes  int    `json:"total_likes"`
}

// GetStats aggregates engagement counters for the owner dashboard
func (ss *StoreService) GetStats(ctx context.Context, ownerID uuid.UUID) (*StoreStats, error) {
	store, err := database.Query[tables.Store](ss.db).Where("owner_id", ownerID).First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if store == nil {
		return nil, lib.ErrNotFound
	}

	itemCount, err := database.Query[tables.Item](ss.db).Where("store_id", store.Id).Count(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	totalLikes, err := database.RawQueryOne[int](ss.db, ctx,
		"SELECT count(*) FROM item_likes WHERE item_id IN (SELECT id FROM items WHERE store_id = ?)", store.Id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	stats := &StoreStats{
		TotalViews:  store.TotalViews,
		TotalOrders: store.TotalOrders,
		ItemCount:   itemCount,
	}
	if totalLikes != nil {
		stats.TotalLikes = *totalLikes
	}
	return stats, nil
}

// RecordOrderClick bumps the share-link counter when a buyer follows the
// contact channel link
func (ss *StoreService) RecordOrderClick(ctx context.Context, storeID uuid.UUID) error {
	_, err := database.Query[tables.Store](ss.db).Where("id", storeID).Increment(ctx, "total_orders", 1)
	return lib.MapPgError(err)
}

func (ss *StoreService) getOwnedStore(ctx context.Context, ownerID, storeID uuid.UUID) (*tables.Store, error) {
	store, err := database.FindByID[tables.Store](ss.db, ctx, storeID)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if store == nil {
		return nil, lib.ErrNotFound
	}
	if store.OwnerId != ownerID {
		return nil, lib.ErrForbidden
	}
	return store, nil
}
