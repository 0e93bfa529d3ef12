package stores

import (
	"errors"
	"net/http"
	"vendora_server/api/middleware"
	"vendora_server/lib"
	"vendora_server/services"
	"vendora_server/structs"
	"vendora_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// StoreRoutesManager serves the seller dashboard: store setup, item
// management and media, all scoped to the authenticated owner's store.
type StoreRoutesManager struct {
	logger         *gecho.Logger
	storeService   *services.StoreService
	itemService    *services.ItemService
	mediaService   *services.MediaService
	commentService *services.CommentService
	cfg            *structs.Config
	mw             *middleware.Middleware
}

func NewStoreRoutesManager(
	logger *gecho.Logger,
	storeService *services.StoreService,
	itemService *services.ItemService,
	mediaService *services.MediaService,
	commentService *services.CommentService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *StoreRoutesManager {
	return &StoreRoutesManager{
		logger:         logger,
		storeService:   storeService,
		itemService:    itemService,
		mediaService:   mediaService,
		commentService: commentService,
		cfg:            cfg,
		mw:             mw,
	}
}

func (srm *StoreRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/stores", func(r chi.Router) {
		r.Use(srm.mw.UserAuthMiddleware)

		r.Post("/", srm.HandleCreateStore)
		r.Route("/me", func(r chi.Router) {
			r.Get("/", srm.HandleGetMyStore)
			r.Patch("/", srm.HandleUpdateStore)
			r.Delete("/", srm.HandleDeleteStore)
			r.Get("/stats", srm.HandleGetStats)

			r.Get("/items", srm.HandleListItems)
			r.Post("/items", srm.HandleCreateItem)
			r.Patch("/items/{itemID}", srm.HandleUpdateItem)
			r.Delete("/items/{itemID}", srm.HandleDeleteItem)

			r.Get("/media", srm.HandleListGallery)
			r.Post("/media", srm.HandleAttachMedia)
			r.Delete("/media/{mediaID}", srm.HandleDeleteMedia)

			r.Delete("/comments/{commentID}", srm.HandleDeleteComment)
		})
	})
}

// ownedStore resolves the caller's store from their claims. Writes the error
// response itself and returns nil when the caller has no store yet.
func (srm *StoreRoutesManager) ownedStore(w http.ResponseWriter, r *http.Request) *tables.Store {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Not authenticated"), gecho.Send())
		return nil
	}

	store, err := srm.storeService.GetStoreByOwner(r.Context(), claims.Sub)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("You have not created a store yet"), gecho.Send())
			return nil
		}
		srm.logger.Error("Failed to load store for owner", gecho.Field("error", err), gecho.Field("userID", claims.Sub))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load your store"), gecho.Send())
		return nil
	}

	return store
}
