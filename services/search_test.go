package services

import (
	"context"
	"strings"
	"testing"
	"vendora_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
)

func namedItems(names ...string) []tables.Item {
	items := make([]tables.Item, 0, len(names))
	for _, name := range names {
		items = append(items, tables.Item{Id: uuid.New(), Name: name})
	}
	return items
}

func TestRankItemsThreshold(t *testing.T) {
	items := namedItems("Phone Case", "Garden Hose", "Leather Wallet")

	hits := rankItems("fone", items)

	assert.Len(t, hits, 1)
	assert.Equal(t, "Phone Case", hits[0].Item.Name)
	assert.GreaterOrEqual(t, hits[0].Score, searchScoreThreshold)
}

func TestRankItemsMatchesDescription(t *testing.T) {
	items := []tables.Item{
		{Id: uuid.New(), Name: "Bundle A", Description: "includes a phone case and charger"},
	}

	hits := rankItems("phone case", items)

	assert.Len(t, hits, 1)
	assert.Equal(t, 100, hits[0].Score)
}

func TestRankItemsOrderedByScore(t *testing.T) {
	items := namedItems("phone", "phonf case")

	hits := rankItems("phone", items)

	assert.Len(t, hits, 2)
	assert.Equal(t, "phone", hits[0].Item.Name)
	assert.GreaterOrEqual(t, hits[0].Score, hits[1].Score)
}

func TestRankItemsCap(t *testing.T) {
	names := make([]string, 0, searchItemCap+5)
	for i := 0; i < searchItemCap+5; i++ {
		names = append(names, "Phone Case")
	}

	hits := rankItems("phone", namedItems(names...))

	assert.Len(t, hits, searchItemCap)
}

func TestRankItemsNoHits(t *testing.T) {
	hits := rankItems("xyz123", namedItems("Phone Case", "Garden Hose"))
	assert.Empty(t, hits)
}

func TestRankStores(t *testing.T) {
	stores := []tables.Store{
		{Id: uuid.New(), BrandName: "Acme Store"},
		{Id: uuid.New(), BrandName: "Bisi's Kitchen"},
	}

	hits := rankStores("acme", stores)

	assert.Len(t, hits, 1)
	assert.Equal(t, "Acme Store", hits[0].Store.BrandName)
}

// memSearchSource serves a fixed item/store set. The recent methods honor
// the candidate-pool limit the way the real source does, so rows beyond it
// only surface through the substring scan.
type memSearchSource struct {
	items         []tables.Item
	stores        []tables.Store
	fallbackCalls int
}

func (ms *memSearchSource) RecentItems(_ context.Context, limit int) ([]tables.Item, error) {
	if len(ms.items) > limit {
		return ms.items[:limit], nil
	}
	return ms.items, nil
}

func (ms *memSearchSource) RecentStores(_ context.Context, limit int) ([]tables.Store, error) {
	if len(ms.stores) > limit {
		return ms.stores[:limit], nil
	}
	return ms.stores, nil
}

func (ms *memSearchSource) ItemsMatching(_ context.Context, query string, limit int) ([]tables.Item, error) {
	ms.fallbackCalls++
	hits := []tables.Item{}
	for _, item := range ms.items {
		if strings.Contains(strings.ToLower(item.Name), strings.ToLower(query)) && len(hits) < limit {
			hits = append(hits, item)
		}
	}
	return hits, nil
}

func (ms *memSearchSource) StoresMatching(_ context.Context, query string, limit int) ([]tables.Store, error) {
	hits := []tables.Store{}
	for _, store := range ms.stores {
		if strings.Contains(strings.ToLower(store.BrandName), strings.ToLower(query)) && len(hits) < limit {
			hits = append(hits, store)
		}
	}
	return hits, nil
}

func newTestSearch(source *memSearchSource) *SearchService {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithLogLevel(gecho.ParseLogLevel("error"))))
	return NewSearchService(logger, source)
}

func TestSearchSkipsFallbackWhenRanked(t *testing.T) {
	source := &memSearchSource{items: namedItems("Phone Case", "Garden Hose")}
	srv := newTestSearch(source)

	results, err := srv.Search(context.Background(), "fone")

	require.NoError(t, err)
	assert.Len(t, results.Items, 1)
	assert.Zero(t, source.fallbackCalls)
}

func TestSearchGarbageQueryYieldsEmptyResults(t *testing.T) {
	source := &memSearchSource{
		items:  namedItems("Phone Case", "Garden Hose"),
		stores: []tables.Store{{Id: uuid.New(), BrandName: "Acme Store"}},
	}
	srv := newTestSearch(source)

	results, err := srv.Search(context.Background(), "xyz123")

	require.NoError(t, err)
	assert.Empty(t, results.Items)
	assert.Empty(t, results.Stores)
	assert.Equal(t, 1, source.fallbackCalls)
}

func TestSearchFallbackReachesBeyondCandidatePool(t *testing.T) {
	// A listing older than the ranking pool never gets scored, but a
	// substring query should still find it through the fallback scan.
	names := make([]string, 0, searchCandidatePool+1)
	for i := 0; i < searchCandidatePool; i++ {
		names = append(names, "Garden Hose")
	}
	names = append(names, "Vintage Gramophone")
	source := &memSearchSource{items: namedItems(names...)}
	srv := newTestSearch(source)

	results, err := srv.Search(context.Background(), "gramophone")

	require.NoError(t, err)
	require.Len(t, results.Items, 1)
	assert.Equal(t, "Vintage Gramophone", results.Items[0].Item.Name)
	assert.Equal(t, 0, results.Items[0].Score)
}

func TestSearchEmptyQueryQueriesNothing(t *testing.T) {
	source := &memSearchSource{items: namedItems("Phone Case")}
	srv := newTestSearch(source)

	results, err := srv.Search(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, results.Items)
	assert.Empty(t, results.Stores)
	assert.Zero(t, source.fallbackCalls)
}
