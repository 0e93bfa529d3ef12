package services

import (
	"context"
	"strings"
	"time"
	"vendora_server/database"
	"vendora_server/lib"
	"vendora_server/structs"
	"vendora_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// itemScopedTables are the tables holding rows keyed to a listing by
// item_id. Listing deletion and store teardown scrub all of them in the
// same transaction as the parent row; anything added here must carry an
// item_id column.
var itemScopedTables = []any{
	(*tables.Media)(nil),
	(*tables.ItemView)(nil),
	(*tables.ItemLike)(nil),
	(*tables.Comment)(nil),
	(*tables.Notification)(nil),
}

// ItemService manages a store's listings. Item slugs are unique across all
// stores and never change once assigned, so shared links keep working.
type ItemService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
	mediaService *MediaService
}

func NewItemService(logger *gecho.Logger, db *database.DB, cacheService *CacheService, mediaService *MediaService) *ItemService {
	return &ItemService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
		mediaService: mediaService,
	}
}

func (is *ItemService) itemSlugExists(ctx context.Context) func(string) (bool, error) {
	return func(slug string) (bool, error) {
		return database.Query[tables.Item](is.db).Where("slug", slug).Exists(ctx)
	}
}

// CreateItem lists a new item under the owner's store. An empty price is
// allowed (price on request); a malformed one is a hard validation error.
func (is *ItemService) CreateItem(ctx context.Context, store *tables.Store, req *structs.CreateItemRequest) (*tables.Item, error) {
	var priceCents *uint64
	if req.Price != "" {
		cents, err := lib.ParsePrice(req.Price)
		if err != nil {
			return nil, err
		}
		priceCents = &cents
	}

	slug, err := lib.UniqueSlug(req.Name, is.itemSlugExists(ctx))
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = "NGN"
	}

	item := &tables.Item{
		StoreId:     store.Id,
		Name:        req.Name,
		PriceCents:  priceCents,
		Currency:    currency,
		Description: req.Description,
		ImageURL:    is.mediaService.ResolveImage(ctx, req.ImageData, req.ImageURL),
		Slug:        slug,
	}

	item, err = database.Query[tables.Item](is.db).Insert(ctx, item)
	if err != nil {
		mappedErr := lib.MapPgError(err)
		is.logger.Error("Failed to create item",
			gecho.Field("error", err),
			gecho.Field("store_id", store.Id),
		)
		return nil, mappedErr
	}

	is.logger.Info("Item listed",
		gecho.Field("item_id", item.Id),
		gecho.Field("store_id", store.Id),
		gecho.Field("slug", item.Slug),
	)

	is.invalidateCaches(store.Slug)

	return item, nil
}

// UpdateItem applies a partial edit. The slug is deliberately left alone
// even when the name changes.
func (is *ItemService) UpdateItem(ctx context.Context, store *tables.Store, itemID uuid.UUID, req *structs.UpdateItemRequest) (*tables.Item, error) {
	item, err := is.getStoreItem(ctx, store.Id, itemID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{"updated_at": time.Now()}

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		if *req.Price == "" {
			updates["price_cents"] = nil
		} else {
			cents, err := lib.ParsePrice(*req.Price)
			if err != nil {
				return nil, err
			}
			updates["price_cents"] = cents
		}
	}
	if req.Currency != nil {
		updates["currency"] = strings.ToUpper(*req.Currency)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImageData != "" || req.ImageURL != "" {
		if image := is.mediaService.ResolveImage(ctx, req.ImageData, req.ImageURL); image != "" {
			updates["image_url"] = image
		}
	}

	if _, err := database.UpdateByID[tables.Item](is.db, ctx, item.Id, updates); err != nil {
		return nil, lib.MapPgError(err)
	}

	is.invalidateCaches(store.Slug)

	return database.FindByID[tables.Item](is.db, ctx, item.Id)
}

// DeleteItem removes a listing together with its media and engagement rows.
// No foreign keys cascade for us, so the dependent tables are scrubbed in
// the same transaction as the item.
func (is *ItemService) DeleteItem(ctx context.Context, store *tables.Store, itemID uuid.UUID) error {
	item, err := is.getStoreItem(ctx, store.Id, itemID)
	if err != nil {
		return err
	}

	err = database.Transaction(ctx, func(txCtx context.Context, tx bun.Tx) error {
		for _, dep := range itemScopedTables {
			if _, err := tx.NewDelete().Model(dep).Where("item_id = ?", item.Id).Exec(txCtx); err != nil {
				return err
			}
		}
		_, err := tx.NewDelete().Model((*tables.Item)(nil)).Where("id = ?", item.Id).Exec(txCtx)
		return err
	})
	if err != nil {
		return lib.MapPgError(err)
	}

	is.invalidateCaches(store.Slug)
	is.logger.Info("Item removed", gecho.Field("item_id", item.Id), gecho.Field("store_id", store.Id))
	return nil
}

// GetItemBySlug loads an item with its store and media for public rendering
func (is *ItemService) GetItemBySlug(ctx context.Context, slug string) (*tables.Item, error) {
	item, err := database.Query[tables.Item](is.db).
		Where("slug", slug).
		Relation("Store").
		Relation("Media").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if item == nil {
		return nil, lib.ErrNotFound
	}
	return item, nil
}

// ListStoreItems returns a store's listings, newest first, paginated
func (is *ItemService) ListStoreItems(ctx context.Context, storeID uuid.UUID, page, pageSize int) (*database.PaginationResult[tables.Item], error) {
	query := database.Query[tables.Item](is.db).
		Where("store_id", storeID).
		OrderBy("created_at", "DESC")

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return result, nil
}

func (is *ItemService) getStoreItem(ctx context.Context, storeID, itemID uuid.UUID) (*tables.Item, error) {
	item, err := database.FindByID[tables.Item](is.db, ctx, itemID)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if item == nil {
		return nil, lib.ErrNotFound
	}
	if item.StoreId != storeID {
		return nil, lib.ErrForbidden
	}
	return item, nil
}

func (is *ItemService) invalidateCaches(storeSlug string) {
	if err := is.cacheService.InvalidateStorefrontCache(storeSlug); err != nil {
		is.logger.Warn("Failed to invalidate storefront cache", gecho.Field("error", err), gecho.Field("slug", storeSlug))
	}
	if err := is.cacheService.InvalidateMarketplaceCache(); err != nil {
		is.logger.Warn("Failed to invalidate marketplace cache", gecho.Field("error", err))
	}
}
