package services

import (
	"context"
	"fmt"
	"vendora_server/database"
	"vendora_server/lib"
	"vendora_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// NotificationService writes in-app notifications for store owners and
// mirrors them to email.
type NotificationService struct {
	logger       *gecho.Logger
	db           *database.DB
	emailService *EmailService
}

func NewNotificationService(logger *gecho.Logger, db *database.DB, emailService *EmailService) *NotificationService {
	return &NotificationService{
		logger:       logger,
		db:           db,
		emailService: emailService,
	}
}

// Notify stores a notification addressed to the store owner and mirrors it
// to their inbox in the background.
func (ns *NotificationService) Notify(ctx context.Context, store *tables.Store, itemID *uuid.UUID, kind tables.NotificationKind, actor, message string) error {
	notification := &tables.Notification{
		StoreId: store.Id,
		ItemId:  itemID,
		Kind:    kind,
		Actor:   actor,
		Message: message,
	}

	notification, err := database.Create(ns.db, ctx, notification)
	if err != nil {
		return lib.MapPgError(err)
	}

	go func() {
		owner, err := database.FindByID[tables.User](ns.db, context.Background(), store.OwnerId)
		if err != nil || owner == nil {
			ns.logger.Warn("Could not load owner for notification email", gecho.Field("store_id", store.Id), gecho.Field("error", err))
			return
		}
		ns.emailService.SendSellerNotificationEmail(owner, store, notification)
	}()

	return nil
}

// NotifyLike records that someone liked an item, unless the owner liked
// their own listing.
func (ns *NotificationService) NotifyLike(ctx context.Context, store *tables.Store, item *tables.Item, actorUserID *uuid.UUID) error {
	if actorUserID != nil && *actorUserID == store.OwnerId {
		return nil
	}

	actor := "Someone"
	message := fmt.Sprintf("%s liked %q", actor, item.Name)
	return ns.Notify(ctx, store, &item.Id, tables.NotificationLike, actor, message)
}

// NotifyComment records a new comment on an item
func (ns *NotificationService) NotifyComment(ctx context.Context, store *tables.Store, item *tables.Item, authorName string) error {
	message := fmt.Sprintf("%s commented on %q", authorName, item.Name)
	return ns.Notify(ctx, store, &item.Id, tables.NotificationComment, authorName, message)
}

// NotifyReport tells the owner their store or item was reported
func (ns *NotificationService) NotifyReport(ctx context.Context, store *tables.Store, itemID *uuid.UUID, reason string) error {
	message := fmt.Sprintf("Your store received a report: %s", reason)
	return ns.Notify(ctx, store, itemID, tables.NotificationReport, "", message)
}

// List returns the owner's notifications, newest first
func (ns *NotificationService) List(ctx context.Context, storeID uuid.UUID, unreadOnly bool, page, pageSize int) (*database.PaginationResult[tables.Notification], error) {
	query := database.Query[tables.Notification](ns.db).
		Where("store_id", storeID).
		OrderBy("created_at", "DESC")

	if unreadOnly {
		query = query.Where("read", false)
	}

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return result, nil
}

// MarkRead flags a single notification as seen
func (ns *NotificationService) MarkRead(ctx context.Context, storeID, notificationID uuid.UUID) error {
	affected, err := database.Query[tables.Notification](ns.db).
		Where("id", notificationID).
		Where("store_id", storeID).
		Update(ctx, map[string]any{"read": true})
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}

// MarkAllRead flags every unread notification for the store as seen
func (ns *NotificationService) MarkAllRead(ctx context.Context, storeID uuid.UUID) (int64, error) {
	affected, err := database.Query[tables.Notification](ns.db).
		Where("store_id", storeID).
		Where("read", false).
		Update(ctx, map[string]any{"read": true})
	if err != nil {
		return 0, lib.MapPgError(err)
	}
	return affected, nil
}

// UnreadCount returns the badge count for the dashboard
func (ns *NotificationService) UnreadCount(ctx context.Context, storeID uuid.UUID) (int, error) {
	count, err := database.Query[tables.Notification](ns.db).
		Where("store_id", storeID).
		Where("read", false).
		Count(ctx)
	if err != nil {
		return 0, lib.MapPgError(err)
	}
	return count, nil
}
