package marketplace

import (
	"net/http"
	"strings"

	"github.com/MonkyMars/gecho"
)

// HandleSearch runs the fuzzy search across items and stores.
func (mrm *MarketplaceRoutesManager) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		gecho.BadRequest(w, gecho.WithMessage("Provide a search query with ?q="), gecho.Send())
		return
	}
	if len(query) > 200 {
		gecho.BadRequest(w, gecho.WithMessage("Search query is too long"), gecho.Send())
		return
	}

	results, err := mrm.searchService.Search(r.Context(), query)
	if err != nil {
		mrm.logger.Error("Search failed", gecho.Field("error", err), gecho.Field("query", query))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to search right now"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(results),
		gecho.Send(),
	)
}
