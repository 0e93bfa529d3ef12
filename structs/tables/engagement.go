package tables

import (
	"time"

	"github.com/google/uuid"
)

// ItemView records that an identity has seen an item. Rows are insert-only
// and are read back only for existence checks; the item's Views counter is
// incremented exactly when no prior row exists for the identity.
type ItemView struct {
	tableName    struct{}   `bun:"table:item_views,alias:iv"`
	Id           uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ItemId       uuid.UUID  `bun:"item_id,notnull,type:uuid" json:"item_id"`
	UserId       *uuid.UUID `bun:"user_id,type:uuid" json:"user_id,omitempty"`
	SessionToken string     `bun:"session_token" json:"-"`
	CreatedAt    time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
}

// ItemLike is one active like per (item, user, session token). Unlike
// deletes the row; the like count is always recomputed from live rows.
type ItemLike struct {
	tableName    struct{}   `bun:"table:item_likes,alias:il"`
	Id           uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ItemId       uuid.UUID  `bun:"item_id,notnull,type:uuid,unique:uq_item_like_identity" json:"item_id"`
	UserId       *uuid.UUID `bun:"user_id,type:uuid,unique:uq_item_like_identity" json:"user_id,omitempty"`
	SessionToken string     `bun:"session_token,unique:uq_item_like_identity" json:"-"`
	CreatedAt    time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
}
