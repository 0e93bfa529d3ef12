package items

import (
	"errors"
	"net/http"
	"vendora_server/api/health"
	"vendora_server/api/middleware"
	"vendora_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type likeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

// HandleToggleLike flips the caller's like on an item. Anonymous visitors
// are not rejected with a plain error: the response tells the client to
// send them through registration first.
func (irm *ItemRoutesManager) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	identity, _ := middleware.GetIdentityFromContext(r.Context())
	if !identity.Authenticated() {
		gecho.Unauthorized(w,
			gecho.WithMessage("Create an account to like items"),
			gecho.WithData(map[string]any{
				"registration_required": true,
				"redirect":              "/auth/register",
			}),
			gecho.Send(),
		)
		return
	}

	item, err := irm.itemService.GetItemBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Item not found"), gecho.Send())
			return
		}
		irm.logger.Error("Failed to load item for like", gecho.Field("error", err), gecho.Field("slug", slug))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load this item"), gecho.Send())
		return
	}

	liked, count, err := irm.engagementService.ToggleLike(r.Context(), item.Store, item, identity)
	if err != nil {
		irm.logger.Error("Failed to toggle like", gecho.Field("error", err), gecho.Field("item_id", item.Id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update your like. Please try again"), gecho.Send())
		return
	}

	state := "unliked"
	if liked {
		state = "liked"
	}
	health.LikesToggled.WithLabelValues(state).Inc()

	gecho.Success(w,
		gecho.WithData(likeResult{Liked: liked, LikeCount: count}),
		gecho.Send(),
	)
}
