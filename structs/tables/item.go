package tables

import (
	"time"

	"github.com/google/uuid"
)

// Item is a product listed under a store. PriceCents is nullable: sellers
// may list items without a price and negotiate over chat instead. The slug
// is unique and immutable once assigned.
type Item struct {
	tableName   struct{}   `bun:"table:items,alias:i"`
	Id          uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	StoreId     uuid.UUID  `bun:"store_id,notnull,type:uuid" json:"store_id"`
	Name        string     `bun:"name,notnull" json:"name"`
	PriceCents  *uint64    `bun:"price_cents" json:"price_cents,omitempty"`
	Currency    string     `bun:"currency,notnull,default:'NGN'" json:"currency"`
	Description string     `bun:"description" json:"description,omitempty"`
	ImageURL    string     `bun:"image_url" json:"image_url,omitempty"`
	Views       uint64     `bun:"views,notnull,default:0" json:"views"`
	Slug        string     `bun:"slug,notnull,unique" json:"slug"`
	CreatedAt   time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Store *Store  `bun:"rel:belongs-to,join:store_id=id" json:"store,omitempty"`
	Media []Media `bun:"rel:has-many,join:id=item_id" json:"media,omitempty"`
}
