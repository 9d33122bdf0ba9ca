package usecase

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/entity"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/repository"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/dto/response"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/cache"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const dashboardCacheKey = "report:dashboard"

// topEquipmentLimit caps the per-equipment revenue ranking.
const topEquipmentLimit = 5

type ReportService interface {
	DashboardSummary(ctx context.Context) (*response.DashboardSummary, error)
	RevenueReport(ctx context.Context, period string) (*response.RevenueReport, error)

	// ExportMonthlyReport renders the month's paid transactions as an xlsx
	// workbook. Returns the file content and a suggested filename.
	ExportMonthlyReport(ctx context.Context, year, month int) ([]byte, string, error)
}

type reportService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
	nowFn func() time.Time
}

func NewReportService(repo *repository.Repository, reportCache *cache.Cache, log *zap.Logger) ReportService {
	return &reportService{
		repo:  repo,
		cache: reportCache,
		log:   log.With(zap.String("service", "report")),
		nowFn: time.Now,
	}
}

func (s *reportService) DashboardSummary(ctx context.Context) (*response.DashboardSummary, error) {
	var cached response.DashboardSummary
	hit, err := s.cache.Get(ctx, dashboardCacheKey, &cached)
	if err != nil {
		s.log.Warn("Dashboard cache read failed", zap.Error(err))
	}
	if hit {
		return &cached, nil
	}

	at := s.nowFn()
	summary := &response.DashboardSummary{}

	if summary.TotalEquipment, err = s.repo.Equipment.Count(ctx); err != nil {
		s.log.Error("Failed to count equipment", zap.Error(err))
		return nil, fmt.Errorf("count equipment: %w", err)
	}

	dayStart := now.New(at).BeginningOfDay()
	if summary.BookingsToday, err = s.repo.Booking.CountApprovedBetween(ctx, dayStart, dayStart.AddDate(0, 0, 1)); err != nil {
		s.log.Error("Failed to count today's bookings", zap.Error(err))
		return nil, fmt.Errorf("count today's bookings: %w", err)
	}

	if summary.RegisteredUsers, err = s.repo.User.Count(ctx); err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	if summary.TotalRevenue, err = s.repo.Transaction.SumAmountByStatus(ctx, entity.TransactionStatusPaid); err != nil {
		s.log.Error("Failed to sum revenue", zap.Error(err))
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	if summary.PendingBookings, err = s.repo.Booking.Count(ctx, entity.BookingStatusPending); err != nil {
		s.log.Error("Failed to count pending bookings", zap.Error(err))
		return nil, fmt.Errorf("count pending bookings: %w", err)
	}

	if summary.UnpaidCount, err = s.repo.Transaction.Count(ctx, entity.TransactionStatusUnpaid); err != nil {
		s.log.Error("Failed to count unpaid transactions", zap.Error(err))
		return nil, fmt.Errorf("count unpaid transactions: %w", err)
	}

	monthStart := now.New(at).BeginningOfMonth()
	if summary.MonthlyPenalties, err = s.repo.LateReturn.SumCreatedBetween(ctx, monthStart, monthStart.AddDate(0, 1, 0)); err != nil {
		s.log.Error("Failed to sum monthly penalties", zap.Error(err))
		return nil, fmt.Errorf("sum monthly penalties: %w", err)
	}

	if err := s.cache.Set(ctx, dashboardCacheKey, summary); err != nil {
		s.log.Warn("Dashboard cache write failed", zap.Error(err))
	}

	return summary, nil
}

func (s *reportService) RevenueReport(ctx context.Context, period string) (*response.RevenueReport, error) {
	if period != "week" && period != "month" && period != "year" {
		return nil, fmt.Errorf("invalid period %q, must be week, month or year", period)
	}

	sales, err := s.repo.Transaction.FindPaidSales(ctx)
	if err != nil {
		s.log.Error("Failed to load paid sales", zap.Error(err))
		return nil, fmt.Errorf("load paid sales: %w", err)
	}

	at := s.nowFn()
	from, to := revenueWindow(period, at)
	windowed := filterSales(sales, from, to)

	report := &response.RevenueReport{
		Period:       period,
		Points:       groupRevenue(windowed, period, at),
		TopEquipment: topEquipment(windowed, topEquipmentLimit),
		Total:        sumSales(windowed),
	}

	s.log.Info("Revenue report built",
		zap.String("period", period),
		zap.Int("sales", len(windowed)),
		zap.Float64("total", report.Total),
	)

	return report, nil
}

func (s *reportService) ExportMonthlyReport(ctx context.Context, year, month int) ([]byte, string, error) {
	if month < 1 || month > 12 {
		return nil, "", fmt.Errorf("invalid month %d", month)
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	sales, err := s.repo.Transaction.FindPaidSales(ctx)
	if err != nil {
		s.log.Error("Failed to load paid sales for export", zap.Error(err))
		return nil, "", fmt.Errorf("load paid sales: %w", err)
	}
	windowed := filterSales(sales, from, to)

	penaltyTotal, err := s.repo.LateReturn.SumCreatedBetween(ctx, from, to)
	if err != nil {
		s.log.Error("Failed to sum penalties for export", zap.Error(err))
		return nil, "", fmt.Errorf("sum penalties: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headers := []any{"Date Paid", "Equipment", "Amount"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, "", fmt.Errorf("write report header: %w", err)
	}

	row := 2
	for _, sale := range windowed {
		cells := []any{
			sale.PaidAt.Format("2006-01-02"),
			sale.EquipmentName,
			sale.Amount,
		}
		if err := f.SetSheetRow(sheet, "A"+strconv.Itoa(row), &cells); err != nil {
			return nil, "", fmt.Errorf("write report row %d: %w", row, err)
		}
		row++
	}

	row++
	totals := [][]any{
		{"Rental revenue", sumSales(windowed)},
		{"Late return penalties", penaltyTotal},
	}
	for _, cells := range totals {
		line := cells
		if err := f.SetSheetRow(sheet, "A"+strconv.Itoa(row), &line); err != nil {
			return nil, "", fmt.Errorf("write report totals: %w", err)
		}
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("render report workbook: %w", err)
	}

	filename := fmt.Sprintf("rental-report-%04d-%02d.xlsx", year, month)

	s.log.Info("Monthly report exported",
		zap.String("filename", filename),
		zap.Int("transactions", len(windowed)),
	)

	return buf.Bytes(), filename, nil
}

// ==================== PURE HELPERS ====================

func revenueWindow(period string, at time.Time) (time.Time, time.Time) {
	n := now.New(at)
	switch period {
	case "week":
		start := n.BeginningOfWeek()
		return start, start.AddDate(0, 0, 7)
	case "year":
		start := n.BeginningOfYear()
		return start, start.AddDate(1, 0, 0)
	default:
		start := n.BeginningOfMonth()
		return start, start.AddDate(0, 1, 0)
	}
}

func filterSales(sales []repository.PaidSale, from, to time.Time) []repository.PaidSale {
	var out []repository.PaidSale
	for _, sale := range sales {
		if !sale.PaidAt.Before(from) && sale.PaidAt.Before(to) {
			out = append(out, sale)
		}
	}
	return out
}

// groupRevenue buckets sales into chart points: weekdays for a week,
// day-of-month for a month, month names for a year. Empty buckets stay in
// the series so charts keep a stable x axis.
func groupRevenue(sales []repository.PaidSale, period string, at time.Time) []response.RevenuePoint {
	var labels []string
	var keyOf func(time.Time) string

	switch period {
	case "week":
		start := now.New(at).BeginningOfWeek()
		for i := 0; i < 7; i++ {
			labels = append(labels, start.AddDate(0, 0, i).Weekday().String()[:3])
		}
		keyOf = func(t time.Time) string { return t.Weekday().String()[:3] }
	case "year":
		for m := time.January; m <= time.December; m++ {
			labels = append(labels, m.String()[:3])
		}
		keyOf = func(t time.Time) string { return t.Month().String()[:3] }
	default:
		start := now.New(at).BeginningOfMonth()
		days := start.AddDate(0, 1, -1).Day()
		for d := 1; d <= days; d++ {
			labels = append(labels, strconv.Itoa(d))
		}
		keyOf = func(t time.Time) string { return strconv.Itoa(t.Day()) }
	}

	totals := make(map[string]decimal.Decimal, len(labels))
	for _, sale := range sales {
		key := keyOf(sale.PaidAt)
		totals[key] = totals[key].Add(decimal.NewFromFloat(sale.Amount))
	}

	points := make([]response.RevenuePoint, len(labels))
	for i, label := range labels {
		points[i] = response.RevenuePoint{
			Label:   label,
			Revenue: totals[label].InexactFloat64(),
		}
	}

	return points
}

func topEquipment(sales []repository.PaidSale, limit int) []response.EquipmentRevenue {
	totals := make(map[string]decimal.Decimal)
	for _, sale := range sales {
		totals[sale.EquipmentName] = totals[sale.EquipmentName].Add(decimal.NewFromFloat(sale.Amount))
	}

	ranked := make([]response.EquipmentRevenue, 0, len(totals))
	for name, total := range totals {
		ranked = append(ranked, response.EquipmentRevenue{
			EquipmentName: name,
			Revenue:       total.InexactFloat64(),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}
		return ranked[i].EquipmentName < ranked[j].EquipmentName
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

func sumSales(sales []repository.PaidSale) float64 {
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(decimal.NewFromFloat(sale.Amount))
	}
	return total.InexactFloat64()
}
