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

// CommentService handles public comments on items
type CommentService struct {
	logger              *gecho.Logger
	db                  *database.DB
	notificationService *NotificationService
}

func NewCommentService(logger *gecho.Logger, db *database.DB, notificationService *NotificationService) *CommentService {
	return &CommentService{
		logger:              logger,
		db:                  db,
		notificationService: notificationService,
	}
}

// CreateComment posts a comment on an item and notifies the store owner
func (cs *CommentService) CreateComment(ctx context.Context, store *tables.Store, item *tables.Item, identity structs.Identity, req *structs.CreateCommentRequest) (*tables.Comment, error) {
	comment := &tables.Comment{
		ItemId:     item.Id,
		UserId:     identity.UserID,
		AuthorName: req.AuthorName,
		Body:       req.Body,
	}

	comment, err := database.Query[tables.Comment](cs.db).Insert(ctx, comment)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	if err := cs.notificationService.NotifyComment(ctx, store, item, req.AuthorName); err != nil {
		cs.logger.Warn("Failed to notify owner of comment",
			gecho.Field("item_id", item.Id),
			gecho.Field("error", err),
		)
	}

	return comment, nil
}

// ListComments returns an item's comments, newest first, paginated
func (cs *CommentService) ListComments(ctx context.Context, itemID uuid.UUID, page, pageSize int) (*database.PaginationResult[tables.Comment], error) {
	query := database.Query[tables.Comment](cs.db).
		Where("item_id", itemID).
		OrderBy("created_at", "DESC")

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return result, nil
}

// DeleteComment lets the store owner moderate comments on their own items
func (cs *CommentService) DeleteComment(ctx context.Context, store *tables.Store, commentID uuid.UUID) error {
	affected, err := database.Query[tables.Comment](cs.db).
		Where("id", commentID).
		WhereRaw("item_id IN (SELECT id FROM items WHERE store_id = ?)", store.Id).
		Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}
