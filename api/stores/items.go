package stores

import (
	"errors"
	"net/http"
	"strconv"
	"vendora_server/lib"
	"vendora_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (srm *StoreRoutesManager) HandleListItems(w http.ResponseWriter, r *http.Request) {
	store := srm.ownedStore(w, r)
	if store == nil {
		return
	}

	page := 1
	pageSize := 20
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if val, err := strconv.Atoi(pageStr); err == nil && val > 0 {
			page = val
		}
	}
	if pageSizeStr := r.URL.Query().Get("page_size"); pageSizeStr != "" {
		if val, err := strconv.Atoi(pageSizeStr); err == nil && val > 0 {
			pageSize = val
		}
	}

	result, err := srm.itemService.ListStoreItems(r.Context(), store.Id, page, pageSize)
	if err != nil {
		srm.logger.Error("Failed to list store items", gecho.Field("error", err), gecho.Field("storeID", store.Id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load your items"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (srm *StoreRoutesManager) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	store := srm.ownedStore(w, r)
	if store == nil {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CreateItemRequest](r)
	if err != nil {
		srm.logger.Warn("Failed to extract create item body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the item details and try again"), gecho.Send())
		return
	}

	item, err := srm.itemService.CreateItem(r.Context(), store, body)
	if err != nil {
		if errors.Is(err, lib.ErrInvalidPrice) {
			gecho.BadRequest(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
			return
		}
		srm.logger.Error("Failed to create item", gecho.Field("error", err), gecho.Field("storeID", store.Id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to create the item. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Item created"),
		gecho.WithData(item),
		gecho.Send(),
	)
}

func (srm *StoreRoutesManager) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	store := srm.ownedStore(w, r)
	if store == nil {
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid item id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateItemRequest](r)
	if err != nil {
		srm.logger.Warn("Failed to extract update item body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the item details and try again"), gecho.Send())
		return
	}

	item, err := srm.itemService.UpdateItem(r.Context(), store, itemID, body)
	if err != nil {
		switch {
		case errors.Is(err, lib.ErrNotFound):
			gecho.NotFound(w, gecho.WithMessage("Item not found"), gecho.Send())
		case errors.Is(err, lib.ErrInvalidPrice):
			gecho.BadRequest(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
		default:
			srm.logger.Error("Failed to update item", gecho.Field("error", err), gecho.Field("itemID", itemID))
			gecho.InternalServerError(w, gecho.WithMessage("Unable to update the item. Please try again"), gecho.Send())
		}
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Item updated"),
		gecho.WithData(item),
		gecho.Send(),
	)
}

func (srm *StoreRoutesManager) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	store := srm.ownedStore(w, r)
	if store == nil {
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid item id"), gecho.Send())
		return
	}

	if err := srm.itemService.DeleteItem(r.Context(), store, itemID); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Item not found"), gecho.Send())
			return
		}
		srm.logger.Error("Failed to delete item", gecho.Field("error", err), gecho.Field("itemID", itemID))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to delete the item. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Item deleted"),
		gecho.Send(),
	)
}
