package reports

import (
	"vendora_server/api/middleware"
	"vendora_server/services"
	"vendora_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// ReportRoutesManager handles abuse reports: anyone can file one, owners
// see what was filed against their store, admins resolve them.
type ReportRoutesManager struct {
	logger        *gecho.Logger
	reportService *services.ReportService
	storeService  *services.StoreService
	cfg           *structs.Config
	mw            *middleware.Middleware
}

func NewReportRoutesManager(
	logger *gecho.Logger,
	reportService *services.ReportService,
	storeService *services.StoreService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *ReportRoutesManager {
	return &ReportRoutesManager{
		logger:        logger,
		reportService: reportService,
		storeService:  storeService,
		cfg:           cfg,
		mw:            mw,
	}
}

func (rrm *ReportRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/reports", rrm.HandleCreateReport)

	r.Group(func(r chi.Router) {
		r.Use(rrm.mw.UserAuthMiddleware)
		r.Get("/reports/mine", rrm.HandleListMyReports)
	})

	r.Route("/admin/reports", func(r chi.Router) {
		r.Use(rrm.mw.AdminAuthMiddleware)
		r.Get("/", rrm.HandleListOpenReports)
		r.Post("/{reportID}/resolve", rrm.HandleResolveReport)
	})
}
