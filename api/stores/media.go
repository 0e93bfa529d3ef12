package stores

import (
	"errors"
	"net/http"
	"vendora_server/lib"
	"vendora_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (srm *StoreRoutesManager) HandleListGallery(w http.ResponseWriter, r *http.Request) {
	store := srm.ownedStore(w, r)
	if store == nil {
		return
	}

	media, err := srm.mediaService.ListStoreGallery(r.Context(), store.Id)
	if err != nil {
		srm.logger.Error("Failed to list store gallery", gecho.Field("error", err), gecho.Field("storeID", store.Id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load your gallery"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(media),
		gecho.Send(),
	)
}

func (srm *StoreRoutesManager) HandleAttachMedia(w http.ResponseWriter, r *http.Request) {
	store := srm.ownedStore(w, r)
	if store == nil {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.AttachMediaRequest](r)
	if err != nil {
		srm.logger.Warn("Failed to extract attach media body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the media details and try again"), gecho.Send())
		return
	}

	media, err := srm.mediaService.AttachMedia(r.Context(), store.Id, body)
	if err != nil {
		if errors.Is(err, lib.ErrInvalidMedia) {
			gecho.BadRequest(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
			return
		}
		srm.logger.Error("Failed to attach media", gecho.Field("error", err), gecho.Field("storeID", store.Id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to attach the media. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Media attached"),
		gecho.WithData(media),
		gecho.Send(),
	)
}

func (srm *StoreRoutesManager) HandleDeleteMedia(w http.ResponseWriter, r *http.Request) {
	store := srm.ownedStore(w, r)
	if store == nil {
		return
	}

	mediaID, err := uuid.Parse(chi.URLParam(r, "mediaID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid media id"), gecho.Send())
		return
	}

	if err := srm.mediaService.DeleteMedia(r.Context(), store.Id, mediaID); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Media not found"), gecho.Send())
			return
		}
		srm.logger.Error("Failed to delete media", gecho.Field("error", err), gecho.Field("mediaID", mediaID))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to delete the media. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Media deleted"),
		gecho.Send(),
	)
}
