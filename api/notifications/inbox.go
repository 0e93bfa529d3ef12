package notifications

import (
	"errors"
	"net/http"
	"strconv"
	"vendora_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (nrm *NotificationRoutesManager) HandleList(w http.ResponseWriter, r *http.Request) {
	store := nrm.ownedStore(w, r)
	if store == nil {
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"

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

	result, err := nrm.notificationService.List(r.Context(), store.Id, unreadOnly, page, pageSize)
	if err != nil {
		nrm.logger.Error("Failed to list notifications", gecho.Field("error", err), gecho.Field("storeID", store.Id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load your notifications"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (nrm *NotificationRoutesManager) HandleUnreadCount(w http.ResponseWriter, r *http.Request) {
	store := nrm.ownedStore(w, r)
	if store == nil {
		return
	}

	count, err := nrm.notificationService.UnreadCount(r.Context(), store.Id)
	if err != nil {
		nrm.logger.Error("Failed to count unread notifications", gecho.Field("error", err), gecho.Field("storeID", store.Id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load your notifications"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]int{"unread": count}),
		gecho.Send(),
	)
}

func (nrm *NotificationRoutesManager) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	store := nrm.ownedStore(w, r)
	if store == nil {
		return
	}

	notificationID, err := uuid.Parse(chi.URLParam(r, "notificationID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid notification id"), gecho.Send())
		return
	}

	if err := nrm.notificationService.MarkRead(r.Context(), store.Id, notificationID); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Notification not found"), gecho.Send())
			return
		}
		nrm.logger.Error("Failed to mark notification read", gecho.Field("error", err), gecho.Field("notificationID", notificationID))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update the notification"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Notification marked read"),
		gecho.Send(),
	)
}

func (nrm *NotificationRoutesManager) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	store := nrm.ownedStore(w, r)
	if store == nil {
		return
	}

	updated, err := nrm.notificationService.MarkAllRead(r.Context(), store.Id)
	if err != nil {
		nrm.logger.Error("Failed to mark notifications read", gecho.Field("error", err), gecho.Field("storeID", store.Id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update your notifications"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]int64{"updated": updated}),
		gecho.Send(),
	)
}
