package services

import (
	"context"
	"testing"
	"vendora_server/structs"
	"vendora_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
)

// memEngagementStore mirrors the database store's matching rule: a row
// belongs to an identity when either the session token or the user id leg
// matches.
type memEngagementStore struct {
	views      []tables.ItemView
	likes      []tables.ItemLike
	itemViews  map[uuid.UUID]int
	storeViews map[uuid.UUID]int
}

func newMemEngagementStore() *memEngagementStore {
	return &memEngagementStore{
		itemViews:  map[uuid.UUID]int{},
		storeViews: map[uuid.UUID]int{},
	}
}

func identityMatches(identity structs.Identity, userID *uuid.UUID, sessionToken string) bool {
	if identity.SessionToken != "" && identity.SessionToken == sessionToken {
		return true
	}
	if identity.UserID != nil && userID != nil && *identity.UserID == *userID {
		return true
	}
	return false
}

func (m *memEngagementStore) ViewExists(_ context.Context, itemID uuid.UUID, identity structs.Identity) (bool, error) {
	for _, v := range m.views {
		if v.ItemId == itemID && identityMatches(identity, v.UserId, v.SessionToken) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memEngagementStore) InsertView(_ context.Context, view *tables.ItemView) error {
	view.Id = uuid.New()
	m.views = append(m.views, *view)
	return nil
}

func (m *memEngagementStore) IncrementItemViews(_ context.Context, itemID uuid.UUID) error {
	m.itemViews[itemID]++
	return nil
}

func (m *memEngagementStore) IncrementStoreViews(_ context.Context, storeID uuid.UUID) error {
	m.storeViews[storeID]++
	return nil
}

func (m *memEngagementStore) FindLike(_ context.Context, itemID uuid.UUID, identity structs.Identity) (*tables.ItemLike, error) {
	for i := range m.likes {
		if m.likes[i].ItemId == itemID && identityMatches(identity, m.likes[i].UserId, m.likes[i].SessionToken) {
			like := m.likes[i]
			return &like, nil
		}
	}
	return nil, nil
}

func (m *memEngagementStore) InsertLike(_ context.Context, like *tables.ItemLike) error {
	like.Id = uuid.New()
	m.likes = append(m.likes, *like)
	return nil
}

func (m *memEngagementStore) DeleteLike(_ context.Context, likeID uuid.UUID) error {
	for i := range m.likes {
		if m.likes[i].Id == likeID {
			m.likes = append(m.likes[:i], m.likes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memEngagementStore) CountLikes(_ context.Context, itemID uuid.UUID) (int, error) {
	count := 0
	for _, l := range m.likes {
		if l.ItemId == itemID {
			count++
		}
	}
	return count, nil
}

type recordingNotifier struct {
	calls int
}

func (rn *recordingNotifier) NotifyLike(context.Context, *tables.Store, *tables.Item, *uuid.UUID) error {
	rn.calls++
	return nil
}

func newTestEngagement() (*EngagementService, *memEngagementStore, *recordingNotifier) {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithLogLevel(gecho.ParseLogLevel("error"))))
	store := newMemEngagementStore()
	notifier := &recordingNotifier{}
	return NewEngagementService(logger, store, notifier), store, notifier
}

func testItem() (*tables.Store, *tables.Item) {
	store := &tables.Store{Id: uuid.New(), OwnerId: uuid.New(), Slug: "acme-store"}
	item := &tables.Item{Id: uuid.New(), StoreId: store.Id, Name: "Phone Case", Slug: "phone-case"}
	return store, item
}

func TestRecordItemViewCountsOncePerIdentity(t *testing.T) {
	es, store, _ := newTestEngagement()
	_, item := testItem()
	identity := structs.AnonymousIdentity("session-a")

	for i := 0; i < 5; i++ {
		counted, err := es.RecordItemView(context.Background(), item, identity)
		require.NoError(t, err)
		assert.Equal(t, i == 0, counted, "pass %d", i)
	}

	assert.Equal(t, 1, store.itemViews[item.Id])
	assert.Equal(t, 1, store.storeViews[item.StoreId])
	assert.Len(t, store.views, 1)
}

func TestRecordItemViewCountsDistinctIdentities(t *testing.T) {
	es, store, _ := newTestEngagement()
	_, item := testItem()

	counted, err := es.RecordItemView(context.Background(), item, structs.AnonymousIdentity("session-a"))
	require.NoError(t, err)
	assert.True(t, counted)

	counted, err = es.RecordItemView(context.Background(), item, structs.AnonymousIdentity("session-b"))
	require.NoError(t, err)
	assert.True(t, counted)

	assert.Equal(t, 2, store.itemViews[item.Id])
}

func TestRecordItemViewSurvivesLogin(t *testing.T) {
	// An anonymous view and a later logged-in view from the same browser
	// session are the same visitor
	es, store, _ := newTestEngagement()
	_, item := testItem()
	userID := uuid.New()

	counted, err := es.RecordItemView(context.Background(), item, structs.AnonymousIdentity("session-a"))
	require.NoError(t, err)
	assert.True(t, counted)

	counted, err = es.RecordItemView(context.Background(), item, structs.UserIdentity(userID, "session-a"))
	require.NoError(t, err)
	assert.False(t, counted)

	assert.Equal(t, 1, store.itemViews[item.Id])
}

func TestRecordItemViewNoIdentity(t *testing.T) {
	es, store, _ := newTestEngagement()
	_, item := testItem()

	counted, err := es.RecordItemView(context.Background(), item, structs.Identity{})
	require.NoError(t, err)
	assert.False(t, counted)
	assert.Empty(t, store.views)
}

func TestToggleLikeOddEven(t *testing.T) {
	es, _, _ := newTestEngagement()
	store, item := testItem()
	identity := structs.UserIdentity(uuid.New(), "session-a")

	for i := 1; i <= 4; i++ {
		liked, count, err := es.ToggleLike(context.Background(), store, item, identity)
		require.NoError(t, err)

		wantLiked := i%2 == 1
		assert.Equal(t, wantLiked, liked, "toggle %d", i)
		if wantLiked {
			assert.Equal(t, 1, count, "toggle %d", i)
		} else {
			assert.Equal(t, 0, count, "toggle %d", i)
		}
	}
}

func TestToggleLikeCountTracksLiveRows(t *testing.T) {
	es, _, _ := newTestEngagement()
	store, item := testItem()

	first := structs.UserIdentity(uuid.New(), "session-a")
	second := structs.UserIdentity(uuid.New(), "session-b")

	_, count, err := es.ToggleLike(context.Background(), store, item, first)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, count, err = es.ToggleLike(context.Background(), store, item, second)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	liked, count, err := es.ToggleLike(context.Background(), store, item, first)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 1, count)
}

func TestToggleLikeNotifiesOnlyOnNewLikes(t *testing.T) {
	es, _, notifier := newTestEngagement()
	store, item := testItem()
	identity := structs.UserIdentity(uuid.New(), "session-a")

	_, _, err := es.ToggleLike(context.Background(), store, item, identity)
	require.NoError(t, err)
	assert.Equal(t, 1, notifier.calls)

	// Unliking is silent
	_, _, err = es.ToggleLike(context.Background(), store, item, identity)
	require.NoError(t, err)
	assert.Equal(t, 1, notifier.calls)
}

func TestToggleLikeRejectsEmptyIdentity(t *testing.T) {
	es, _, _ := newTestEngagement()
	store, item := testItem()

	_, _, err := es.ToggleLike(context.Background(), store, item, structs.Identity{})
	assert.Error(t, err)
}
