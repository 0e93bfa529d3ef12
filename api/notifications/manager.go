package notifications

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

// NotificationRoutesManager serves the seller's notification inbox.
type NotificationRoutesManager struct {
	logger              *gecho.Logger
	notificationService *services.NotificationService
	storeService        *services.StoreService
	cfg                 *structs.Config
	mw                  *middleware.Middleware
}

func NewNotificationRoutesManager(
	logger *gecho.Logger,
	notificationService *services.NotificationService,
	storeService *services.StoreService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *NotificationRoutesManager {
	return &NotificationRoutesManager{
		logger:              logger,
		notificationService: notificationService,
		storeService:        storeService,
		cfg:                 cfg,
		mw:                  mw,
	}
}

func (nrm *NotificationRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.Use(nrm.mw.UserAuthMiddleware)

		r.Get("/", nrm.HandleList)
		r.Get("/unread-count", nrm.HandleUnreadCount)
		r.Post("/read-all", nrm.HandleMarkAllRead)
		r.Post("/{notificationID}/read", nrm.HandleMarkRead)
	})
}

// ownedStore resolves the caller's store; notifications are addressed to
// stores, not accounts. Writes the error response itself on failure.
func (nrm *NotificationRoutesManager) ownedStore(w http.ResponseWriter, r *http.Request) *tables.Store {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Not authenticated"), gecho.Send())
		return nil
	}

	store, err := nrm.storeService.GetStoreByOwner(r.Context(), claims.Sub)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("You have not created a store yet"), gecho.Send())
			return nil
		}
		nrm.logger.Error("Failed to load store for notifications", gecho.Field("error", err), gecho.Field("userID", claims.Sub))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load your notifications"), gecho.Send())
		return nil
	}

	return store
}
