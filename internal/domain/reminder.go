package domain

import (
	"fmt"
	"time"
)

// DefaultReminderWindow lists the day-offsets before the due date at
// which a reminder fires. It is a sparse schedule: an order 8 or 2 days
// out is deliberately silent. Callers pass the window explicitly so
// tests and deployments can vary it without shared state.
func DefaultReminderWindow() []int { return []int{9, 7, 5, 3} }

type Severity string

const (
	SeverityOverdue  Severity = "overdue"
	SeverityDueToday Severity = "due-today"
	SeverityUpcoming Severity = "upcoming"
)

type Reminder struct {
	OrderID      int64     `json:"order_id"`
	OrderCode    string    `json:"order_code"`
	Name         string    `json:"name"`
	ExpectedDate time.Time `json:"expected_date"`
	DaysLeft     int       `json:"days_left"`
	Severity     Severity  `json:"severity"`
	Message      string    `json:"message"`
}

// needsReminder is the one predicate both BuildReminders and
// FilterReminderOrders derive from, so the view and the export can
// never drift apart.
func needsReminder(daysLeft int, window []int) bool {
	if daysLeft <= 0 {
		return true
	}
	for _, d := range window {
		if daysLeft == d {
			return true
		}
	}
	return false
}

// BuildReminders computes the reminder entries for the given reference
// date. Only open orders with an expected date are eligible; everything
// else is skipped. The result preserves the input iteration order and
// the function has no side effects.
func BuildReminders(orders []Order, ref time.Time, window []int) []Reminder {
	refDay := DateOnly(ref)
	out := []Reminder{}
	for i := range orders {
		o := &orders[i]
		if !o.Open() || o.ExpectedDate == nil {
			continue
		}
		daysLeft := DaysBetween(refDay, *o.ExpectedDate)
		if !needsReminder(daysLeft, window) {
			continue
		}
		rem := Reminder{
			OrderID:      o.ID,
			OrderCode:    o.OrderCode,
			Name:         o.Name,
			ExpectedDate: *o.ExpectedDate,
			DaysLeft:     daysLeft,
		}
		expStr := rem.ExpectedDate.Format("2006-01-02")
		switch {
		case daysLeft < 0:
			rem.Severity = SeverityOverdue
			rem.Message = fmt.Sprintf("[OVERDUE] %s (ID:%d) is %d days late (expected %s)", o.Name, o.ID, -daysLeft, expStr)
		case daysLeft == 0:
			rem.Severity = SeverityDueToday
			rem.Message = fmt.Sprintf("[TODAY] %s (ID:%d) is due today (%s)", o.Name, o.ID, expStr)
		default:
			rem.Severity = SeverityUpcoming
			rem.Message = fmt.Sprintf("[UPCOMING - %d days] %s (ID:%d) expected %s", daysLeft, o.Name, o.ID, expStr)
		}
		out = append(out, rem)
	}
	return out
}

// FilterReminderOrders keeps the orders BuildReminders would report,
// in the same order. The export path uses it to select rows.
func FilterReminderOrders(orders []Order, ref time.Time, window []int) []Order {
	refDay := DateOnly(ref)
	out := []Order{}
	for i := range orders {
		o := orders[i]
		if !o.Open() || o.ExpectedDate == nil {
			continue
		}
		if needsReminder(DaysBetween(refDay, *o.ExpectedDate), window) {
			out = append(out, o)
		}
	}
	return out
}
