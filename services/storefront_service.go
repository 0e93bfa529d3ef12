package services

import (
	"context"
	"encoding/json"
	"vendora_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// StorefrontPage is the public payload for one tenant's page. It contains
// nothing identity-specific, so the whole payload can be cached by slug.
type StorefrontPage struct {
	Store     StorefrontStore        `json:"store"`
	Items     []StorefrontItem       `json:"items"`
	Gallery   []tables.RenderableRef `json:"gallery"`
	ShareLink string                 `json:"share_link"`
}

type StorefrontStore struct {
	BrandName      string `json:"brand_name"`
	BrandLogo      string `json:"brand_logo,omitempty"`
	Bio            string `json:"bio,omitempty"`
	Slug           string `json:"slug"`
	ContactChannel string `json:"contact_channel"`
}

type StorefrontItem struct {
	Item      tables.Item            `json:"item"`
	Media     []tables.RenderableRef `json:"media"`
	LikeCount int                    `json:"like_count"`
}

// StorefrontService assembles cached public pages for tenant storefronts
type StorefrontService struct {
	logger            *gecho.Logger
	storeService      *StoreService
	mediaService      *MediaService
	engagementService *EngagementService
	cacheService      *CacheService
}

func NewStorefrontService(logger *gecho.Logger, storeService *StoreService, mediaService *MediaService, engagementService *EngagementService, cacheService *CacheService) *StorefrontService {
	return &StorefrontService{
		logger:            logger,
		storeService:      storeService,
		mediaService:      mediaService,
		engagementService: engagementService,
		cacheService:      cacheService,
	}
}

// GetPage returns the storefront page for a slug, served from cache when
// fresh. Writes to the store or its items invalidate the cached copy.
func (sf *StorefrontService) GetPage(ctx context.Context, slug string) (*StorefrontPage, error) {
	if cached, err := sf.cacheService.GetStorefrontCache(slug); err == nil && cached != "" {
		page := &StorefrontPage{}
		if err := json.Unmarshal([]byte(cached), page); err == nil {
			return page, nil
		}
	}

	store, err := sf.storeService.GetStoreBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	itemIDs := make([]uuid.UUID, 0, len(store.Items))
	for _, item := range store.Items {
		itemIDs = append(itemIDs, item.Id)
	}
	mediaByItem, err := sf.mediaService.ListMediaForItems(ctx, itemIDs)
	if err != nil {
		sf.logger.Warn("Failed to load item media for storefront",
			gecho.Field("slug", slug),
			gecho.Field("error", err),
		)
		mediaByItem = map[uuid.UUID][]tables.Media{}
	}

	gallery, err := sf.mediaService.ListStoreGallery(ctx, store.Id)
	if err != nil {
		sf.logger.Warn("Failed to load store gallery for storefront",
			gecho.Field("slug", slug),
			gecho.Field("error", err),
		)
	}

	likeCounts := make(map[uuid.UUID]int, len(store.Items))
	for _, item := range store.Items {
		count, err := sf.engagementService.LikeCount(ctx, item.Id)
		if err != nil {
			sf.logger.Warn("Failed to load like count for storefront",
				gecho.Field("item_id", item.Id),
				gecho.Field("error", err),
			)
		}
		likeCounts[item.Id] = count
	}

	page := buildStorefrontPage(store, mediaByItem, gallery, likeCounts)

	if payload, err := json.Marshal(page); err == nil {
		if err := sf.cacheService.SetStorefrontCache(slug, payload); err != nil {
			sf.logger.Warn("Failed to cache storefront page", gecho.Field("slug", slug), gecho.Field("error", err))
		}
	}

	return page, nil
}

// buildStorefrontPage assembles the public payload from already-loaded
// rows. Item media keeps its per-item position order; gallery media is the
// store's own imagery, listed items aside.
func buildStorefrontPage(store *tables.Store, mediaByItem map[uuid.UUID][]tables.Media, gallery []tables.Media, likeCounts map[uuid.UUID]int) *StorefrontPage {
	page := &StorefrontPage{
		Store: StorefrontStore{
			BrandName:      store.BrandName,
			BrandLogo:      store.BrandLogo,
			Bio:            store.Bio,
			Slug:           store.Slug,
			ContactChannel: string(store.ContactChannel),
		},
		Items:     make([]StorefrontItem, 0, len(store.Items)),
		Gallery:   make([]tables.RenderableRef, 0, len(gallery)),
		ShareLink: store.ShareLink(),
	}

	for _, m := range gallery {
		page.Gallery = append(page.Gallery, m.Renderable())
	}

	for _, item := range store.Items {
		entry := StorefrontItem{Item: item, Media: []tables.RenderableRef{}}
		for _, m := range mediaByItem[item.Id] {
			entry.Media = append(entry.Media, m.Renderable())
		}
		entry.LikeCount = likeCounts[item.Id]
		page.Items = append(page.Items, entry)
	}

	return page
}
