package usecase

import (
	"context"
	"time"

	"github.com/foxrun/ordertrack/internal/domain"
)

// ReminderUC computes which open orders need attention on a given day.
// The window is injected at startup so nothing reads mutable globals.
type ReminderUC struct {
	Orders domain.OrderRepo
	Window []int
}

func (uc *ReminderUC) window() []int {
	if len(uc.Window) == 0 {
		return domain.DefaultReminderWindow()
	}
	return uc.Window
}

func (uc *ReminderUC) Build(ctx context.Context, ref time.Time) ([]domain.Reminder, error) {
	orders, err := uc.Orders.List(ctx, domain.OrderFilter{})
	if err != nil {
		return nil, err
	}
	return domain.BuildReminders(orders, ref, uc.window()), nil
}
