package usecase

import (
	"context"
	"time"

	"github.com/foxrun/ordertrack/internal/domain"
)

// ReportUC turns order rows into downloadable spreadsheets through the
// report sink. It only builds rows; the sink owns the file format.
type ReportUC struct {
	Orders domain.OrderRepo
	Sink   domain.ReportSink
	Window []int
}

var reportHeader = []string{
	"id", "order_code", "name", "start_date", "lead_time", "expected_date",
	"delivered_date", "status", "delta_days", "notes", "package_info",
	"quantity", "unit_price", "total_amount", "deposit_amount", "deposit_ratio",
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func orderRows(orders []domain.Order) [][]any {
	rows := make([][]any, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		var delta any = ""
		if d, ok := o.DeliveryDelta(); ok {
			delta = d
		}
		rows = append(rows, []any{
			o.ID, o.OrderCode, o.Name, fmtDate(o.StartDate), o.LeadTime,
			fmtDate(o.ExpectedDate), fmtDate(o.DeliveredDate), o.Status, delta,
			o.Notes, o.PackageInfo,
			o.Quantity, o.UnitPrice, o.TotalAmount, o.DepositAmount, o.DepositRatio,
		})
	}
	return rows
}

// ExportAll renders every order into the full report workbook.
func (uc *ReportUC) ExportAll(ctx context.Context) ([]byte, error) {
	orders, err := uc.Orders.List(ctx, domain.OrderFilter{})
	if err != nil {
		return nil, err
	}
	return uc.Sink.Export("orders", reportHeader, orderRows(orders))
}

// ExportReminders renders only the rows the reminder view would show
// for the reference date. Row selection shares the reminder predicate,
// so the two can never disagree.
func (uc *ReportUC) ExportReminders(ctx context.Context, ref time.Time) ([]byte, error) {
	orders, err := uc.Orders.List(ctx, domain.OrderFilter{})
	if err != nil {
		return nil, err
	}
	window := uc.Window
	if len(window) == 0 {
		window = domain.DefaultReminderWindow()
	}
	due := domain.FilterReminderOrders(orders, ref, window)
	return uc.Sink.Export("reminders", reportHeader, orderRows(due))
}
