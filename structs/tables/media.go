package tables

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type MediaKind string

const (
	MediaFile        MediaKind = "file"
	MediaExternalURL MediaKind = "external_url"
	MediaYoutube     MediaKind = "youtube"
)

// Media is an attachment on an item, or on the store gallery when ItemId is
// nil. Exactly one of the source fields is populated, selected by Kind.
type Media struct {
	tableName   struct{}   `bun:"table:media,alias:m"`
	Id          uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	StoreId     uuid.UUID  `bun:"store_id,notnull,type:uuid" json:"store_id"`
	ItemId      *uuid.UUID `bun:"item_id,type:uuid" json:"item_id,omitempty"`
	Kind        MediaKind  `bun:"kind,notnull" json:"kind"`
	FileURL     string     `bun:"file_url" json:"file_url,omitempty"`
	ExternalURL string     `bun:"external_url" json:"external_url,omitempty"`
	YoutubeId   string     `bun:"youtube_id" json:"youtube_id,omitempty"`
	YoutubeURL  string     `bun:"youtube_url" json:"youtube_url,omitempty"`
	Label       string     `bun:"label" json:"label,omitempty"`
	Position    int        `bun:"position,notnull,default:0" json:"position"`
	CreatedAt   time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
}

// RenderableRef is the uniform reference a client needs to render the media,
// regardless of where it is hosted.
type RenderableRef struct {
	Type string `json:"type"` // "image", "video" or "youtube"
	URL  string `json:"url,omitempty"`
	Id   string `json:"id,omitempty"` // YouTube video id
}

// Renderable maps the tagged media variant onto a RenderableRef.
func (m *Media) Renderable() RenderableRef {
	switch m.Kind {
	case MediaYoutube:
		return RenderableRef{Type: "youtube", Id: m.YoutubeId}
	case MediaExternalURL:
		return RenderableRef{Type: "image", URL: m.ExternalURL}
	default:
		if isVideoFile(m.FileURL) {
			return RenderableRef{Type: "video", URL: m.FileURL}
		}
		return RenderableRef{Type: "image", URL: m.FileURL}
	}
}

func isVideoFile(u string) bool {
	lower := strings.ToLower(u)
	for _, ext := range []string{".mp4", ".mov", ".webm", ".avi", ".mkv"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
