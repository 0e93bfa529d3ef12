package services

import (
	"testing"
	"vendora_server/structs/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStorefrontPage(t *testing.T) {
	itemA := uuid.New()
	itemB := uuid.New()
	store := &tables.Store{
		Id:             uuid.New(),
		BrandName:      "Bisi's Kitchen",
		Slug:           "bisi-s-kitchen",
		WhatsappNumber: "2348012345678",
		ContactChannel: tables.ContactWhatsapp,
		Items: []tables.Item{
			{Id: itemA, Name: "Jollof Pack"},
			{Id: itemB, Name: "Suya Skewers"},
		},
	}
	mediaByItem := map[uuid.UUID][]tables.Media{
		itemA: {
			{Kind: tables.MediaFile, FileURL: "https://cdn.example.com/jollof-1.jpg"},
			{Kind: tables.MediaYoutube, YoutubeId: "dQw4w9WgXcQ"},
		},
	}
	gallery := []tables.Media{
		{Kind: tables.MediaFile, FileURL: "https://cdn.example.com/kitchen.jpg"},
	}
	likeCounts := map[uuid.UUID]int{itemA: 3}

	page := buildStorefrontPage(store, mediaByItem, gallery, likeCounts)

	assert.Equal(t, "Bisi's Kitchen", page.Store.BrandName)
	assert.Equal(t, "https://wa.me/2348012345678", page.ShareLink)

	require.Len(t, page.Items, 2)
	require.Len(t, page.Items[0].Media, 2)
	assert.Equal(t, "image", page.Items[0].Media[0].Type)
	assert.Equal(t, "youtube", page.Items[0].Media[1].Type)
	assert.Equal(t, 3, page.Items[0].LikeCount)

	// The second item has no media or likes; empty, not nil, so the
	// cached JSON renders [] instead of null.
	assert.NotNil(t, page.Items[1].Media)
	assert.Empty(t, page.Items[1].Media)
	assert.Zero(t, page.Items[1].LikeCount)

	// Store-level gallery media rides along with the listings
	require.Len(t, page.Gallery, 1)
	assert.Equal(t, "https://cdn.example.com/kitchen.jpg", page.Gallery[0].URL)
}

func TestBuildStorefrontPageEmptyStore(t *testing.T) {
	store := &tables.Store{
		Id:             uuid.New(),
		BrandName:      "Acme Store",
		Slug:           "acme-store",
		WhatsappNumber: "2348000000000",
		ContactChannel: tables.ContactTelegram,
	}

	page := buildStorefrontPage(store, nil, nil, nil)

	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Gallery)
	assert.Empty(t, page.Gallery)
	assert.Equal(t, "https://t.me/2348000000000", page.ShareLink)
}
