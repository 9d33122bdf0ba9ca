package adaptor

import (
	"net/http"
	"time"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/usecase"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// DashboardSummary handles GET /api/admin/reports/summary (staff only)
func (h *ReportHandler) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.DashboardSummary(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get dashboard summary")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}

// RevenueReport handles GET /api/admin/reports/revenue?period=week|month|year (staff only)
func (h *ReportHandler) RevenueReport(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = "month"
	}

	report, err := h.service.RevenueReport(r.Context(), period)
	if err != nil {
		handleServiceError(w, h.log, err, "get revenue report")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}

// ExportMonthlyReport handles GET /api/admin/reports/export?year=2025&month=1 (staff only)
func (h *ReportHandler) ExportMonthlyReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	nowTime := time.Now()
	year := utils.ParseInt(query.Get("year"), nowTime.Year())
	month := utils.ParseInt(query.Get("month"), int(nowTime.Month()))

	content, filename, err := h.service.ExportMonthlyReport(r.Context(), year, month)
	if err != nil {
		handleServiceError(w, h.log, err, "export monthly report")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}
