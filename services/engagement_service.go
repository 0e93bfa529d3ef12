package services

import (
	"context"
	"vendora_server/database"
	"vendora_server/lib"
	"vendora_server/structs"
	"vendora_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// EngagementStore is the persistence surface behind view and like
// tracking. It exists so the idempotency logic can be tested against an
// in-memory implementation.
type EngagementStore interface {
	ViewExists(ctx context.Context, itemID uuid.UUID, identity structs.Identity) (bool, error)
	InsertView(ctx context.Context, view *tables.ItemView) error
	IncrementItemViews(ctx context.Context, itemID uuid.UUID) error
	IncrementStoreViews(ctx context.Context, storeID uuid.UUID) error

	FindLike(ctx context.Context, itemID uuid.UUID, identity structs.Identity) (*tables.ItemLike, error)
	InsertLike(ctx context.Context, like *tables.ItemLike) error
	DeleteLike(ctx context.Context, likeID uuid.UUID) error
	CountLikes(ctx context.Context, itemID uuid.UUID) (int, error)
}

// LikeNotifier decouples like notifications from the notification service
type LikeNotifier interface {
	NotifyLike(ctx context.Context, store *tables.Store, item *tables.Item, actorUserID *uuid.UUID) error
}

// EngagementService tracks who has seen and liked which items. A given
// identity counts at most one view and holds at most one like per item.
type EngagementService struct {
	logger   *gecho.Logger
	store    EngagementStore
	notifier LikeNotifier
}

func NewEngagementService(logger *gecho.Logger, store EngagementStore, notifier LikeNotifier) *EngagementService {
	return &EngagementService{
		logger:   logger,
		store:    store,
		notifier: notifier,
	}
}

// RecordItemView counts a view once per identity. Repeat visits by the
// same session or account insert nothing and bump no counters. Returns
// whether the view was counted.
//
// The existence check and insert are not atomic: two concurrent first
// views can both pass the check and the item gets counted twice. That is
// an accepted inaccuracy in a vanity counter, not worth a lock.
func (es *EngagementService) RecordItemView(ctx context.Context, item *tables.Item, identity structs.Identity) (bool, error) {
	if identity.UserID == nil && identity.SessionToken == "" {
		return false, nil
	}

	seen, err := es.store.ViewExists(ctx, item.Id, identity)
	if err != nil {
		return false, err
	}
	if seen {
		return false, nil
	}

	view := &tables.ItemView{
		ItemId:       item.Id,
		UserId:       identity.UserID,
		SessionToken: identity.SessionToken,
	}
	if err := es.store.InsertView(ctx, view); err != nil {
		return false, err
	}

	if err := es.store.IncrementItemViews(ctx, item.Id); err != nil {
		return false, err
	}
	if err := es.store.IncrementStoreViews(ctx, item.StoreId); err != nil {
		return false, err
	}

	es.logger.Debug("View counted", gecho.Field("item_id", item.Id))
	return true, nil
}

// ToggleLike flips the identity's like on the item: first call creates it,
// the next removes it. Returns the new state and the recomputed live count.
// The store owner liking someone's listing works like anyone else's like;
// only self-likes stay silent.
func (es *EngagementService) ToggleLike(ctx context.Context, store *tables.Store, item *tables.Item, identity structs.Identity) (liked bool, count int, err error) {
	if identity.UserID == nil && identity.SessionToken == "" {
		return false, 0, lib.ErrForbidden
	}

	existing, err := es.store.FindLike(ctx, item.Id, identity)
	if err != nil {
		return false, 0, err
	}

	if existing != nil {
		if err := es.store.DeleteLike(ctx, existing.Id); err != nil {
			return false, 0, err
		}
		liked = false
	} else {
		like := &tables.ItemLike{
			ItemId:       item.Id,
			UserId:       identity.UserID,
			SessionToken: identity.SessionToken,
		}
		if err := es.store.InsertLike(ctx, like); err != nil {
			// A concurrent toggle beat us to it; treat as already liked
			if lib.IsUniqueViolation(err) {
				liked = true
			} else {
				return false, 0, err
			}
		} else {
			liked = true
		}

		if liked && es.notifier != nil {
			if err := es.notifier.NotifyLike(ctx, store, item, identity.UserID); err != nil {
				es.logger.Warn("Failed to notify store owner of like",
					gecho.Field("item_id", item.Id),
					gecho.Field("error", err),
				)
			}
		}
	}

	count, err = es.store.CountLikes(ctx, item.Id)
	if err != nil {
		return liked, 0, err
	}

	return liked, count, nil
}

// IsLiked reports whether the identity currently likes the item
func (es *EngagementService) IsLiked(ctx context.Context, itemID uuid.UUID, identity structs.Identity) (bool, error) {
	if identity.UserID == nil && identity.SessionToken == "" {
		return false, nil
	}
	like, err := es.store.FindLike(ctx, itemID, identity)
	if err != nil {
		return false, err
	}
	return like != nil, nil
}

// LikeCount returns the live like count for an item
func (es *EngagementService) LikeCount(ctx context.Context, itemID uuid.UUID) (int, error) {
	return es.store.CountLikes(ctx, itemID)
}

// pgEngagementStore is the production EngagementStore on top of the
// query builder.
type pgEngagementStore struct {
	db *database.DB
}

// NewEngagementStore returns the database-backed engagement store
func NewEngagementStore(db *database.DB) EngagementStore {
	return &pgEngagementStore{db: db}
}

// identityConditions matches rows belonging to either leg of the identity:
// the session token or the account. A view recorded anonymously still
// counts after the visitor logs in on the same browser.
func identityConditions(identity structs.Identity) []database.WhereCondition {
	var conds []database.WhereCondition
	if identity.SessionToken != "" {
		conds = append(conds, database.Eq("session_token", identity.SessionToken))
	}
	if identity.UserID != nil {
		conds = append(conds, database.Eq("user_id", *identity.UserID))
	}
	return conds
}

func (ps *pgEngagementStore) ViewExists(ctx context.Context, itemID uuid.UUID, identity structs.Identity) (bool, error) {
	exists, err := database.Query[tables.ItemView](ps.db).
		Where("item_id", itemID).
		WhereAny(identityConditions(identity)...).
		Exists(ctx)
	if err != nil {
		return false, lib.MapPgError(err)
	}
	return exists, nil
}

func (ps *pgEngagementStore) InsertView(ctx context.Context, view *tables.ItemView) error {
	_, err := database.Query[tables.ItemView](ps.db).Insert(ctx, view)
	return lib.MapPgError(err)
}

func (ps *pgEngagementStore) IncrementItemViews(ctx context.Context, itemID uuid.UUID) error {
	_, err := database.Query[tables.Item](ps.db).Where("id", itemID).Increment(ctx, "views", 1)
	return lib.MapPgError(err)
}

func (ps *pgEngagementStore) IncrementStoreViews(ctx context.Context, storeID uuid.UUID) error {
	_, err := database.Query[tables.Store](ps.db).Where("id", storeID).Increment(ctx, "total_views", 1)
	return lib.MapPgError(err)
}

func (ps *pgEngagementStore) FindLike(ctx context.Context, itemID uuid.UUID, identity structs.Identity) (*tables.ItemLike, error) {
	like, err := database.Query[tables.ItemLike](ps.db).
		Where("item_id", itemID).
		WhereAny(identityConditions(identity)...).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return like, nil
}

func (ps *pgEngagementStore) InsertLike(ctx context.Context, like *tables.ItemLike) error {
	_, err := database.Query[tables.ItemLike](ps.db).Insert(ctx, like)
	return err
}

func (ps *pgEngagementStore) DeleteLike(ctx context.Context, likeID uuid.UUID) error {
	_, err := database.Query[tables.ItemLike](ps.db).Where("id", likeID).Delete(ctx)
	return lib.MapPgError(err)
}

func (ps *pgEngagementStore) CountLikes(ctx context.Context, itemID uuid.UUID) (int, error) {
	count, err := database.Query[tables.ItemLike](ps.db).Where("item_id", itemID).Count(ctx)
	if err != nil {
		return 0, lib.MapPgError(err)
	}
	return count, nil
}
