package items

import (
	"errors"
	"net/http"
	"strconv"
	"vendora_server/api/middleware"
	"vendora_server/lib"
	"vendora_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (irm *ItemRoutesManager) HandleListComments(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	item, err := irm.itemService.GetItemBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Item not found"), gecho.Send())
			return
		}
		irm.logger.Error("Failed to load item for comments", gecho.Field("error", err), gecho.Field("slug", slug))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load comments"), gecho.Send())
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

	result, err := irm.commentService.ListComments(r.Context(), item.Id, page, pageSize)
	if err != nil {
		irm.logger.Error("Failed to list comments", gecho.Field("error", err), gecho.Field("item_id", item.Id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load comments"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (irm *ItemRoutesManager) HandleCreateComment(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	body, err := lib.ExtractAndValidateBody[structs.CreateCommentRequest](r)
	if err != nil {
		irm.logger.Warn("Failed to extract comment body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your comment and try again"), gecho.Send())
		return
	}

	item, err := irm.itemService.GetItemBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Item not found"), gecho.Send())
			return
		}
		irm.logger.Error("Failed to load item for comment", gecho.Field("error", err), gecho.Field("slug", slug))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to post your comment"), gecho.Send())
		return
	}

	identity, _ := middleware.GetIdentityFromContext(r.Context())
	comment, err := irm.commentService.CreateComment(r.Context(), item.Store, item, identity, body)
	if err != nil {
		irm.logger.Error("Failed to create comment", gecho.Field("error", err), gecho.Field("item_id", item.Id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to post your comment. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Comment posted"),
		gecho.WithData(comment),
		gecho.Send(),
	)
}
