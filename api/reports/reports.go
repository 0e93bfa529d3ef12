package reports

import (
	"errors"
	"net/http"
	"strconv"
	"vendora_server/api/middleware"
	"vendora_server/lib"
	"vendora_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (rrm *ReportRoutesManager) HandleCreateReport(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreateReportRequest](r)
	if err != nil {
		rrm.logger.Warn("Failed to extract report body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the report details and try again"), gecho.Send())
		return
	}

	report, err := rrm.reportService.CreateReport(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Store or item not found"), gecho.Send())
			return
		}
		rrm.logger.Error("Failed to file report", gecho.Field("error", err), gecho.Field("storeSlug", body.StoreSlug))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to file the report. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Report filed"),
		gecho.WithData(report),
		gecho.Send(),
	)
}

func (rrm *ReportRoutesManager) HandleListMyReports(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Not authenticated"), gecho.Send())
		return
	}

	store, err := rrm.storeService.GetStoreByOwner(r.Context(), claims.Sub)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("You have not created a store yet"), gecho.Send())
			return
		}
		rrm.logger.Error("Failed to load store for reports", gecho.Field("error", err), gecho.Field("userID", claims.Sub))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load your reports"), gecho.Send())
		return
	}

	page, pageSize := parsePagination(r)
	result, err := rrm.reportService.ListStoreReports(r.Context(), store.Id, page, pageSize)
	if err != nil {
		rrm.logger.Error("Failed to list store reports", gecho.Field("error", err), gecho.Field("storeID", store.Id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load your reports"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (rrm *ReportRoutesManager) HandleListOpenReports(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := rrm.reportService.ListOpenReports(r.Context(), page, pageSize)
	if err != nil {
		rrm.logger.Error("Failed to list open reports", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load reports"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (rrm *ReportRoutesManager) HandleResolveReport(w http.ResponseWriter, r *http.Request) {
	reportID, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid report id"), gecho.Send())
		return
	}

	if err := rrm.reportService.ResolveReport(r.Context(), reportID); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("No open report with this id"), gecho.Send())
			return
		}
		rrm.logger.Error("Failed to resolve report", gecho.Field("error", err), gecho.Field("reportID", reportID))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to resolve the report"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Report resolved"),
		gecho.Send(),
	)
}

func parsePagination(r *http.Request) (int, int) {
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
	return page, pageSize
}
