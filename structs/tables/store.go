package tables

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

type ContactChannel string

const (
	ContactWhatsapp ContactChannel = "whatsapp"
	ContactTelegram ContactChannel = "telegram"
	ContactFacebook ContactChannel = "facebook"
)

// Store is a tenant: one branded storefront owned by one account and
// addressed by its unique slug (subdomain or /shop/<slug> path).
type Store struct {
	tableName      struct{}       `bun:"table:stores,alias:s"`
	Id             uuid.UUID      `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OwnerId        uuid.UUID      `bun:"owner_id,notnull,type:uuid" json:"owner_id"`
	BrandName      string         `bun:"brand_name,notnull" json:"brand_name"`
	BrandLogo      string         `bun:"brand_logo" json:"brand_logo,omitempty"`
	Bio            string         `bun:"bio" json:"bio,omitempty"`
	WhatsappNumber string         `bun:"whatsapp_number,notnull" json:"whatsapp_number"`
	ContactChannel ContactChannel `bun:"contact_channel,notnull,default:'whatsapp'" json:"contact_channel"`
	Slug           string         `bun:"slug,notnull,unique" json:"slug"`
	TotalViews     uint64         `bun:"total_views,notnull,default:0" json:"total_views"`
	TotalOrders    uint64         `bun:"total_orders,notnull,default:0" json:"total_orders"`
	CreatedAt      time.Time      `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt      time.Time      `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Owner *User  `bun:"rel:belongs-to,join:owner_id=id" json:"-"`
	Items []Item `bun:"rel:has-many,join:id=store_id" json:"items,omitempty"`
}

// ShareLink returns the order-taking link for the store's contact channel.
func (s *Store) ShareLink() string {
	switch s.ContactChannel {
	case ContactTelegram:
		return "https://t.me/" + url.PathEscape(s.WhatsappNumber)
	case ContactFacebook:
		return "https://m.me/" + url.PathEscape(s.WhatsappNumber)
	default:
		return "https://wa.me/" + url.PathEscape(s.WhatsappNumber)
	}
}
