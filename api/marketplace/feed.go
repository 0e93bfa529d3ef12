package marketplace

import (
	"net/http"
	"strconv"

	"github.com/MonkyMars/gecho"
)

// HandleGetFeed serves a page of the cross-store discovery feed.
func (mrm *MarketplaceRoutesManager) HandleGetFeed(w http.ResponseWriter, r *http.Request) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if val, err := strconv.Atoi(pageStr); err == nil && val > 0 {
			page = val
		}
	}

	feed, err := mrm.marketplaceService.GetFeed(r.Context(), page)
	if err != nil {
		mrm.logger.Error("Failed to build marketplace feed", gecho.Field("error", err), gecho.Field("page", page))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load the marketplace"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(feed),
		gecho.Send(),
	)
}

// HandleGetHighlights serves the short feed embedded on landing pages.
func (mrm *MarketplaceRoutesManager) HandleGetHighlights(w http.ResponseWriter, r *http.Request) {
	items, err := mrm.marketplaceService.GetHighlights(r.Context())
	if err != nil {
		mrm.logger.Error("Failed to build marketplace highlights", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load highlights"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(items),
		gecho.Send(),
	)
}
