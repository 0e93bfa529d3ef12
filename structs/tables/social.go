package tables

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	tableName  struct{}   `bun:"table:comments,alias:c"`
	Id         uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ItemId     uuid.UUID  `bun:"item_id,notnull,type:uuid" json:"item_id"`
	UserId     *uuid.UUID `bun:"user_id,type:uuid" json:"user_id,omitempty"`
	AuthorName string     `bun:"author_name,notnull" json:"author_name"`
	Body       string     `bun:"body,notnull" json:"body"`
	CreatedAt  time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
}

type NotificationKind string

const (
	NotificationLike    NotificationKind = "like"
	NotificationComment NotificationKind = "comment"
	NotificationReport  NotificationKind = "report"
)

// Notification is addressed to the owner of StoreId.
type Notification struct {
	tableName struct{}         `bun:"table:notifications,alias:n"`
	Id        uuid.UUID        `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	StoreId   uuid.UUID        `bun:"store_id,notnull,type:uuid" json:"store_id"`
	ItemId    *uuid.UUID       `bun:"item_id,type:uuid" json:"item_id,omitempty"`
	Kind      NotificationKind `bun:"kind,notnull" json:"kind"`
	Actor     string           `bun:"actor" json:"actor,omitempty"`
	Message   string           `bun:"message,notnull" json:"message"`
	Read      bool             `bun:"read,notnull,default:false" json:"read"`
	CreatedAt time.Time        `bun:"created_at,notnull,default:now()" json:"created_at"`
}

type ReportStatus string

const (
	ReportOpen     ReportStatus = "open"
	ReportResolved ReportStatus = "resolved"
)

type Report struct {
	tableName     struct{}     `bun:"table:reports,alias:r"`
	Id            uuid.UUID    `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	StoreId       uuid.UUID    `bun:"store_id,notnull,type:uuid" json:"store_id"`
	ItemId        *uuid.UUID   `bun:"item_id,type:uuid" json:"item_id,omitempty"`
	ReporterEmail string       `bun:"reporter_email,notnull" json:"reporter_email"`
	Reason        string       `bun:"reason,notnull" json:"reason"`
	Detail        string       `bun:"detail" json:"detail,omitempty"`
	Status        ReportStatus `bun:"status,notnull,default:'open'" json:"status"`
	CreatedAt     time.Time    `bun:"created_at,notnull,default:now()" json:"created_at"`
}
