package services

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"
	"vendora_server/database"
	"vendora_server/lib"
	"vendora_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

const (
	// Per-store cap before mixing, so one prolific seller cannot flood a page
	fairMixPerStoreCap = 4

	marketplacePageSize = 18
	marketplaceAPISize  = 12
	marketplacePoolSize = 2000
)

// MarketplaceFeed is one page of mixed items
type MarketplaceFeed struct {
	Items []tables.Item `json:"items"`
	Page  int           `json:"page"`
	Total int           `json:"total"`
}

// MarketplaceService assembles the cross-store discovery feed with
// fair-mix sampling and short-lived caching.
type MarketplaceService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewMarketplaceService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *MarketplaceService {
	return &MarketplaceService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// FairMixSample caps each store's contribution and randomizes the result.
// Each store's items are shuffled, at most perStoreCap survive, and the
// combined list is shuffled again so the output is not grouped by store.
func FairMixSample(pool []tables.Item, perStoreCap int, rng *rand.Rand) []tables.Item {
	if perStoreCap < 1 || len(pool) == 0 {
		return []tables.Item{}
	}

	byStore := make(map[uuid.UUID][]tables.Item)
	order := []uuid.UUID{}
	for _, item := range pool {
		if _, seen := byStore[item.StoreId]; !seen {
			order = append(order, item.StoreId)
		}
		byStore[item.StoreId] = append(byStore[item.StoreId], item)
	}

	// Shuffle the store order too so ties between stores don't always
	// resolve in insertion order
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	mixed := make([]tables.Item, 0, len(order)*perStoreCap)
	for _, storeID := range order {
		group := byStore[storeID]
		rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})
		if len(group) > perStoreCap {
			group = group[:perStoreCap]
		}
		mixed = append(mixed, group...)
	}

	rng.Shuffle(len(mixed), func(i, j int) {
		mixed[i], mixed[j] = mixed[j], mixed[i]
	})

	return mixed
}

// GetFeed returns one page of the marketplace feed. Pages are cached
// briefly; a cache hit skips both the pool query and the sampling.
func (ms *MarketplaceService) GetFeed(ctx context.Context, page int) (*MarketplaceFeed, error) {
	if page < 1 {
		page = 1
	}

	if cached, err := ms.cacheService.GetMarketplaceCache(page); err == nil && cached != "" {
		feed := &MarketplaceFeed{}
		if err := json.Unmarshal([]byte(cached), feed); err == nil {
			return feed, nil
		}
		// Corrupt cache entry: fall through and rebuild
	}

	mixed, err := ms.sampledPool(ctx)
	if err != nil {
		return nil, err
	}

	start := (page - 1) * marketplacePageSize
	if start > len(mixed) {
		start = len(mixed)
	}
	end := start + marketplacePageSize
	if end > len(mixed) {
		end = len(mixed)
	}

	feed := &MarketplaceFeed{
		Items: mixed[start:end],
		Page:  page,
		Total: len(mixed),
	}

	if payload, err := json.Marshal(feed); err == nil {
		if err := ms.cacheService.SetMarketplaceCache(page, payload); err != nil {
			ms.logger.Warn("Failed to cache marketplace feed", gecho.Field("error", err), gecho.Field("page", page))
		}
	}

	return feed, nil
}

// GetHighlights returns the truncated sample used by lightweight API
// consumers (home page widgets, mobile preview)
func (ms *MarketplaceService) GetHighlights(ctx context.Context) ([]tables.Item, error) {
	mixed, err := ms.sampledPool(ctx)
	if err != nil {
		return nil, err
	}

	if len(mixed) > marketplaceAPISize {
		mixed = mixed[:marketplaceAPISize]
	}
	return mixed, nil
}

func (ms *MarketplaceService) sampledPool(ctx context.Context) ([]tables.Item, error) {
	pool, err := database.Query[tables.Item](ms.db).
		Relation("Store").
		OrderBy("created_at", "DESC").
		Limit(marketplacePoolSize).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	return FairMixSample(pool, fairMixPerStoreCap, newFeedRand()), nil
}

func newFeedRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
