package services

import (
	"context"
	"vendora_server/database"
	"vendora_server/lib"
	"vendora_server/structs"
	"vendora_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// ReportService records abuse reports against stores and items
type ReportService struct {
	logger              *gecho.Logger
	db                  *database.DB
	notificationService *NotificationService
}

func NewReportService(logger *gecho.Logger, db *database.DB, notificationService *NotificationService) *ReportService {
	return &ReportService{
		logger:              logger,
		db:                  db,
		notificationService: notificationService,
	}
}

// CreateReport files a report against a store (optionally a specific item)
// and tells the owner
func (rs *ReportService) CreateReport(ctx context.Context, req *structs.CreateReportRequest) (*tables.Report, error) {
	store, err := database.Query[tables.Store](rs.db).Where("slug", req.StoreSlug).First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if store == nil {
		return nil, lib.ErrNotFound
	}

	if req.ItemID != nil {
		item, err := database.FindByID[tables.Item](rs.db, ctx, *req.ItemID)
		if err != nil {
			return nil, lib.MapPgError(err)
		}
		if item == nil || item.StoreId != store.Id {
			return nil, lib.ErrNotFound
		}
	}

	report := &tables.Report{
		StoreId:       store.Id,
		ItemId:        req.ItemID,
		ReporterEmail: req.ReporterEmail,
		Reason:        req.Reason,
		Detail:        req.Detail,
	}

	report, err = database.Query[tables.Report](rs.db).Insert(ctx, report)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	rs.logger.Info("Report filed",
		gecho.Field("store_id", store.Id),
		gecho.Field("reason", req.Reason),
	)

	if err := rs.notificationService.NotifyReport(ctx, store, req.ItemID, req.Reason); err != nil {
		rs.logger.Warn("Failed to notify owner of report", gecho.Field("error", err), gecho.Field("store_id", store.Id))
	}

	return report, nil
}

// ListStoreReports returns the reports filed against one store, newest
// first, so the owner can see what was flagged
func (rs *ReportService) ListStoreReports(ctx context.Context, storeID uuid.UUID, page, pageSize int) (*database.PaginationResult[tables.Report], error) {
	query := database.Query[tables.Report](rs.db).
		Where("store_id", storeID).
		OrderBy("created_at", "DESC")

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return result, nil
}

// ListOpenReports returns unresolved reports for admin review
func (rs *ReportService) ListOpenReports(ctx context.Context, page, pageSize int) (*database.PaginationResult[tables.Report], error) {
	query := database.Query[tables.Report](rs.db).
		Where("status", tables.ReportOpen).
		OrderBy("created_at", "ASC")

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return result, nil
}

// ResolveReport closes a report after review
func (rs *ReportService) ResolveReport(ctx context.Context, reportID uuid.UUID) error {
	affected, err := database.Query[tables.Report](rs.db).
		Where("id", reportID).
		Where("status", tables.ReportOpen).
		Update(ctx, map[string]any{"status": tables.ReportResolved})
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}
