package storefront

import (
	"context"
	"errors"
	"net/http"
	"time"
	"vendora_server/api/health"
	"vendora_server/api/middleware"
	"vendora_server/lib"
	"vendora_server/services"
	"vendora_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// HandleGetStorefront serves a tenant's public page by slug.
func (sfm *StorefrontRoutesManager) HandleGetStorefront(w http.ResponseWriter, r *http.Request) {
	sfm.serveStorefront(w, r, chi.URLParam(r, "slug"))
}

// HandleTenantRoot serves the storefront resolved from the request host.
// Mounted at the router root; hosts that do not map to a store get the
// plain API banner instead.
func (sfm *StorefrontRoutesManager) HandleTenantRoot(w http.ResponseWriter, r *http.Request) {
	store, ok := middleware.GetTenantFromContext(r.Context())
	if !ok || store == nil {
		gecho.Success(w,
			gecho.WithMessage("Vendora API"),
			gecho.Send(),
		)
		return
	}

	sfm.serveStorefront(w, r, store.Slug)
}

func (sfm *StorefrontRoutesManager) serveStorefront(w http.ResponseWriter, r *http.Request, slug string) {
	page, err := sfm.storefrontService.GetPage(r.Context(), slug)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Store not found"), gecho.Send())
			return
		}
		sfm.logger.Error("Failed to load storefront", gecho.Field("error", err), gecho.Field("slug", slug))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load this store"), gecho.Send())
		return
	}

	// Browsing the page counts as a view of every listing on it. The
	// writes happen off the request path so a slow counter never delays
	// the render.
	identity, _ := middleware.GetIdentityFromContext(r.Context())
	go sfm.recordPageViews(page, identity)

	gecho.Success(w,
		gecho.WithData(page),
		gecho.Send(),
	)
}

func (sfm *StorefrontRoutesManager) recordPageViews(page *services.StorefrontPage, identity structs.Identity) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for i := range page.Items {
		item := page.Items[i].Item
		counted, err := sfm.engagementService.RecordItemView(ctx, &item, identity)
		if err != nil {
			sfm.logger.Warn("Failed to record storefront view",
				gecho.Field("item_id", item.Id),
				gecho.Field("error", err),
			)
			continue
		}
		if counted {
			health.ViewsCounted.Inc()
		}
	}
}

// HandleOrderClick counts an order hand-off and returns the contact link
// the client should open.
func (sfm *StorefrontRoutesManager) HandleOrderClick(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	store, err := sfm.storeService.GetStoreBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Store not found"), gecho.Send())
			return
		}
		sfm.logger.Error("Failed to load store for order click", gecho.Field("error", err), gecho.Field("slug", slug))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to reach this store"), gecho.Send())
		return
	}

	if err := sfm.storeService.RecordOrderClick(r.Context(), store.Id); err != nil {
		// The hand-off link still works when the counter write fails
		sfm.logger.Warn("Failed to record order click", gecho.Field("error", err), gecho.Field("store_id", store.Id))
	}

	gecho.Success(w,
		gecho.WithData(map[string]string{
			"share_link":      store.ShareLink(),
			"contact_channel": string(store.ContactChannel),
		}),
		gecho.Send(),
	)
}
