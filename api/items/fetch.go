package items

import (
	"errors"
	"net/http"
	"vendora_server/api/health"
	"vendora_server/api/middleware"
	"vendora_server/lib"
	"vendora_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type itemDetail struct {
	Item      *tables.Item           `json:"item"`
	Media     []tables.RenderableRef `json:"media"`
	LikeCount int                    `json:"like_count"`
	Liked     bool                   `json:"liked"`
	ShareLink string                 `json:"share_link,omitempty"`
}

// HandleGetItem serves a public item page and counts the visit. A repeat
// visit by the same session or account does not bump the counter again.
func (irm *ItemRoutesManager) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	item, err := irm.itemService.GetItemBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Item not found"), gecho.Send())
			return
		}
		irm.logger.Error("Failed to load item", gecho.Field("error", err), gecho.Field("slug", slug))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load this item"), gecho.Send())
		return
	}

	identity, _ := middleware.GetIdentityFromContext(r.Context())
	counted, err := irm.engagementService.RecordItemView(r.Context(), item, identity)
	if err != nil {
		// The page still renders when the counter write fails
		irm.logger.Warn("Failed to record item view", gecho.Field("error", err), gecho.Field("item_id", item.Id))
	}
	if counted {
		health.ViewsCounted.Inc()
	}

	// Reload media through the service so the gallery order (position,
	// then age) survives; the bun relation carries no ordering
	media, err := irm.mediaService.ListItemMedia(r.Context(), item.Id)
	if err != nil {
		irm.logger.Warn("Failed to load item media", gecho.Field("error", err), gecho.Field("item_id", item.Id))
		media = item.Media
	}

	detail := itemDetail{Item: item, Media: make([]tables.RenderableRef, 0, len(media))}
	for i := range media {
		detail.Media = append(detail.Media, media[i].Renderable())
	}

	detail.LikeCount, err = irm.engagementService.LikeCount(r.Context(), item.Id)
	if err != nil {
		irm.logger.Warn("Failed to load like count", gecho.Field("error", err), gecho.Field("item_id", item.Id))
	}

	detail.Liked, err = irm.engagementService.IsLiked(r.Context(), item.Id, identity)
	if err != nil {
		irm.logger.Warn("Failed to load liked state", gecho.Field("error", err), gecho.Field("item_id", item.Id))
	}

	if item.Store != nil {
		detail.ShareLink = item.Store.ShareLink()
	}

	gecho.Success(w,
		gecho.WithData(detail),
		gecho.Send(),
	)
}
