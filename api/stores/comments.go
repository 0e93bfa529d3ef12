package stores

import (
	"errors"
	"net/http"
	"vendora_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandleDeleteComment removes a comment from one of the owner's items.
func (srm *StoreRoutesManager) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
	store := srm.ownedStore(w, r)
	if store == nil {
		return
	}

	commentID, err := uuid.Parse(chi.URLParam(r, "commentID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid comment id"), gecho.Send())
		return
	}

	if err := srm.commentService.DeleteComment(r.Context(), store, commentID); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Comment not found"), gecho.Send())
			return
		}
		srm.logger.Error("Failed to delete comment", gecho.Field("error", err), gecho.Field("commentID", commentID))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to delete the comment"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Comment deleted"),
		gecho.Send(),
	)
}
