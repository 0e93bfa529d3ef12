package services

import (
	"testing"
	"vendora_server/lib"
	"vendora_server/structs"
	"vendora_server/structs/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckMediaTarget(t *testing.T) {
	ownerStore := uuid.New()
	otherStore := uuid.New()
	item := &tables.Item{Id: uuid.New(), StoreId: ownerStore}

	t.Run("own listing accepted", func(t *testing.T) {
		assert.NoError(t, checkMediaTarget(item, ownerStore))
	})

	t.Run("foreign listing rejected", func(t *testing.T) {
		// A store owner must not be able to plant media on someone
		// else's product page by guessing the item id.
		assert.ErrorIs(t, checkMediaTarget(item, otherStore), lib.ErrNotFound)
	})

	t.Run("missing listing rejected", func(t *testing.T) {
		assert.ErrorIs(t, checkMediaTarget(nil, ownerStore), lib.ErrNotFound)
	})
}

func TestBuildMediaYoutube(t *testing.T) {
	storeID := uuid.New()

	media, err := buildMedia(storeID, &structs.AttachMediaRequest{
		YoutubeURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})

	require.NoError(t, err)
	assert.Equal(t, tables.MediaYoutube, media.Kind)
	assert.Equal(t, "dQw4w9WgXcQ", media.YoutubeId)
	assert.Equal(t, storeID, media.StoreId)
}

func TestBuildMediaRejectsUnrecognizedYoutubeURL(t *testing.T) {
	_, err := buildMedia(uuid.New(), &structs.AttachMediaRequest{
		YoutubeURL: "https://www.youtube.com/feed/subscriptions",
	})
	assert.ErrorIs(t, err, lib.ErrInvalidMedia)
}

func TestBuildMediaRejectsEmptyRequest(t *testing.T) {
	_, err := buildMedia(uuid.New(), &structs.AttachMediaRequest{Label: "just a label"})
	assert.ErrorIs(t, err, lib.ErrInvalidMedia)
}

func TestBuildMediaKeepsItemScope(t *testing.T) {
	itemID := uuid.New()

	media, err := buildMedia(uuid.New(), &structs.AttachMediaRequest{
		ItemID:  &itemID,
		FileURL: "https://cdn.example.com/shot.jpg",
	})

	require.NoError(t, err)
	require.NotNil(t, media.ItemId)
	assert.Equal(t, itemID, *media.ItemId)
	assert.Equal(t, tables.MediaFile, media.Kind)
}
