package stores

import (
	"errors"
	"net/http"
	"vendora_server/api/middleware"
	"vendora_server/lib"
	"vendora_server/structs"

	"github.com/MonkyMars/gecho"
)

func (srm *StoreRoutesManager) HandleCreateStore(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Not authenticated"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CreateStoreRequest](r)
	if err != nil {
		srm.logger.Warn("Failed to extract create store body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your store details and try again"), gecho.Send())
		return
	}

	store, err := srm.storeService.CreateStore(r.Context(), claims.Sub, body)
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.Conflict(w, gecho.WithMessage("You already have a store"), gecho.Send())
			return
		}
		srm.logger.Error("Failed to create store", gecho.Field("error", err), gecho.Field("userID", claims.Sub))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to create your store. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Store created"),
		gecho.WithData(store),
		gecho.Send(),
	)
}

func (srm *StoreRoutesManager) HandleGetMyStore(w http.ResponseWriter, r *http.Request) {
	store := srm.ownedStore(w, r)
	if store == nil {
		return
	}

	gecho.Success(w,
		gecho.WithData(store),
		gecho.Send(),
	)
}

func (srm *StoreRoutesManager) HandleUpdateStore(w http.ResponseWriter, r *http.Request) {
	store := srm.ownedStore(w, r)
	if store == nil {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateStoreRequest](r)
	if err != nil {
		srm.logger.Warn("Failed to extract update store body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your store details and try again"), gecho.Send())
		return
	}

	updated, err := srm.storeService.UpdateStore(r.Context(), store.OwnerId, store.Id, body)
	if err != nil {
		srm.logger.Error("Failed to update store", gecho.Field("error", err), gecho.Field("storeID", store.Id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update your store. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Store updated"),
		gecho.WithData(updated),
		gecho.Send(),
	)
}

func (srm *StoreRoutesManager) HandleDeleteStore(w http.ResponseWriter, r *http.Request) {
	store := srm.ownedStore(w, r)
	if store == nil {
		return
	}

	if err := srm.storeService.DeleteStore(r.Context(), store.OwnerId, store.Id); err != nil {
		srm.logger.Error("Failed to delete store", gecho.Field("error", err), gecho.Field("storeID", store.Id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to delete your store. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Store deleted"),
		gecho.Send(),
	)
}

func (srm *StoreRoutesManager) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Not authenticated"), gecho.Send())
		return
	}

	stats, err := srm.storeService.GetStats(r.Context(), claims.Sub)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("You have not created a store yet"), gecho.Send())
			return
		}
		srm.logger.Error("Failed to load store stats", gecho.Field("error", err), gecho.Field("userID", claims.Sub))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load your stats"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(stats),
		gecho.Send(),
	)
}
