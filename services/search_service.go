package services

import (
	"context"
	"sort"
	"strings"
	"vendora_server/database"
	"vendora_server/lib"
	"vendora_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

const (
	searchScoreThreshold = 60
	searchItemCap        = 15
	searchStoreCap       = 10
	searchCandidatePool  = 1000
)

// ScoredItem is an item search hit with its match score
type ScoredItem struct {
	Item  tables.Item `json:"item"`
	Score int         `json:"score"`
}

// ScoredStore is a store search hit with its match score
type ScoredStore struct {
	Store tables.Store `json:"store"`
	Score int          `json:"score"`
}

// SearchResults carries both result lists for a marketplace query
type SearchResults struct {
	Query  string        `json:"query"`
	Items  []ScoredItem  `json:"items"`
	Stores []ScoredStore `json:"stores"`
}

// SearchSource supplies ranking candidates and the substring-matched rows
// for the fallback scan. It exists so the ranking and fallback-trigger
// logic can be tested against an in-memory implementation.
type SearchSource interface {
	RecentItems(ctx context.Context, limit int) ([]tables.Item, error)
	RecentStores(ctx context.Context, limit int) ([]tables.Store, error)
	ItemsMatching(ctx context.Context, query string, limit int) ([]tables.Item, error)
	StoresMatching(ctx context.Context, query string, limit int) ([]tables.Store, error)
}

// SearchService ranks items and stores against free-text queries. Matching
// is tolerant of misspellings; when nothing clears the score threshold it
// degrades to a plain substring scan.
type SearchService struct {
	logger *gecho.Logger
	source SearchSource
}

func NewSearchService(logger *gecho.Logger, source SearchSource) *SearchService {
	return &SearchService{
		logger: logger,
		source: source,
	}
}

// Search runs the marketplace search. Items match on name and description,
// stores on brand name. Results are ranked by score, capped per kind.
func (srv *SearchService) Search(ctx context.Context, query string) (*SearchResults, error) {
	query = strings.TrimSpace(query)
	results := &SearchResults{Query: query, Items: []ScoredItem{}, Stores: []ScoredStore{}}
	if query == "" {
		return results, nil
	}

	items, err := srv.source.RecentItems(ctx, searchCandidatePool)
	if err != nil {
		return nil, err
	}

	stores, err := srv.source.RecentStores(ctx, searchCandidatePool)
	if err != nil {
		return nil, err
	}

	results.Items = rankItems(query, items)
	results.Stores = rankStores(query, stores)

	// Nothing cleared the threshold: fall back to a plain substring scan
	// over the whole table, so rows outside the recency-capped candidate
	// pool still surface. Fallback hits carry no meaningful ordering.
	if len(results.Items) == 0 && len(results.Stores) == 0 {
		results.Items, results.Stores, err = srv.substringFallback(ctx, query)
		if err != nil {
			return nil, err
		}
	}

	srv.logger.Debug("Search executed",
		gecho.Field("query", query),
		gecho.Field("item_hits", len(results.Items)),
		gecho.Field("store_hits", len(results.Stores)),
	)

	return results, nil
}

func rankItems(query string, items []tables.Item) []ScoredItem {
	hits := []ScoredItem{}
	for _, item := range items {
		score := lib.FuzzyScore(query, item.Name)
		if s := lib.FuzzyScore(query, item.Description); s > score {
			score = s
		}
		if score >= searchScoreThreshold {
			hits = append(hits, ScoredItem{Item: item, Score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if len(hits) > searchItemCap {
		hits = hits[:searchItemCap]
	}
	return hits
}

func rankStores(query string, stores []tables.Store) []ScoredStore {
	hits := []ScoredStore{}
	for _, store := range stores {
		score := lib.FuzzyScore(query, store.BrandName)
		if score >= searchScoreThreshold {
			hits = append(hits, ScoredStore{Store: store, Score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if len(hits) > searchStoreCap {
		hits = hits[:searchStoreCap]
	}
	return hits
}

func (srv *SearchService) substringFallback(ctx context.Context, query string) ([]ScoredItem, []ScoredStore, error) {
	items, err := srv.source.ItemsMatching(ctx, query, searchItemCap)
	if err != nil {
		return nil, nil, err
	}

	stores, err := srv.source.StoresMatching(ctx, query, searchStoreCap)
	if err != nil {
		return nil, nil, err
	}

	scoredItems := make([]ScoredItem, 0, len(items))
	for _, item := range items {
		scoredItems = append(scoredItems, ScoredItem{Item: item})
	}
	scoredStores := make([]ScoredStore, 0, len(stores))
	for _, store := range stores {
		scoredStores = append(scoredStores, ScoredStore{Store: store})
	}

	return scoredItems, scoredStores, nil
}

// pgSearchSource is the production SearchSource on top of the query builder
type pgSearchSource struct {
	db *database.DB
}

// NewSearchSource returns the database-backed search source
func NewSearchSource(db *database.DB) SearchSource {
	return &pgSearchSource{db: db}
}

func (ps *pgSearchSource) RecentItems(ctx context.Context, limit int) ([]tables.Item, error) {
	items, err := database.Query[tables.Item](ps.db).
		Relation("Store").
		OrderBy("created_at", "DESC").
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return items, nil
}

func (ps *pgSearchSource) RecentStores(ctx context.Context, limit int) ([]tables.Store, error) {
	stores, err := database.Query[tables.Store](ps.db).
		OrderBy("created_at", "DESC").
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return stores, nil
}

func (ps *pgSearchSource) ItemsMatching(ctx context.Context, query string, limit int) ([]tables.Item, error) {
	pattern := "%" + query + "%"
	items, err := database.Query[tables.Item](ps.db).
		Relation("Store").
		WhereRaw("(i.name ILIKE ? OR i.description ILIKE ?)", pattern, pattern).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return items, nil
}

func (ps *pgSearchSource) StoresMatching(ctx context.Context, query string, limit int) ([]tables.Store, error) {
	pattern := "%" + query + "%"
	stores, err := database.Query[tables.Store](ps.db).
		WhereRaw("s.brand_name ILIKE ?", pattern).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return stores, nil
}
