package domain

import (
	"fmt"
	"time"
)

// StatusInProduction is the status every order carries until its delivery
// is confirmed. Once delivered the status encodes the day-delta against
// the expected date and is never reset.
const StatusInProduction = "in production"

type Order struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	OrderCode     string     `gorm:"size:40;index"`
	Name          string     `gorm:"size:180"`
	StartDate     *time.Time `gorm:"type:date"`
	LeadTime      int        `gorm:"not null;default:0"`
	ExpectedDate  *time.Time `gorm:"type:date;index"`
	DeliveredDate *time.Time `gorm:"type:date"`
	Status        string     `gorm:"size:60"`
	Notes         string     `gorm:"type:text"`
	PackageInfo   string     `gorm:"size:200"`
	Quantity      int        `gorm:"default:0"`
	UnitPrice     float64    `gorm:"type:decimal(12,2);default:0"`
	TotalAmount   float64    `gorm:"type:decimal(12,2);default:0"`
	DepositAmount float64    `gorm:"type:decimal(12,2);default:0"`
	DepositRatio  float64    `gorm:"type:decimal(6,4);default:0"`
	CreatedAt     time.Time
}

// Open reports whether the order is still pending delivery.
func (o *Order) Open() bool { return o.DeliveredDate == nil }

// DateOnly truncates t to a calendar date at UTC midnight. All date
// arithmetic in the engine assumes this normalization.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed whole-day count from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// DeriveExpectedDate computes start + leadTime days. It is the single
// place expected-date arithmetic lives; create and update both go
// through it.
func DeriveExpectedDate(start time.Time, leadTime int) (time.Time, error) {
	if leadTime < 0 {
		return time.Time{}, fmt.Errorf("%w: lead time %d", ErrNegativeLeadTime, leadTime)
	}
	return DateOnly(start).AddDate(0, 0, leadTime), nil
}

// Recalculate re-derives every computed field from its inputs:
// expected_date from (start_date, lead_time) and the money totals from
// (quantity, unit_price, deposit_amount). Both write paths call it
// before persisting, so the derived columns are never hand-edited.
func (o *Order) Recalculate() error {
	if o.StartDate != nil {
		exp, err := DeriveExpectedDate(*o.StartDate, o.LeadTime)
		if err != nil {
			return err
		}
		o.ExpectedDate = &exp
	} else {
		if o.LeadTime < 0 {
			return fmt.Errorf("%w: lead time %d", ErrNegativeLeadTime, o.LeadTime)
		}
		o.ExpectedDate = nil
	}
	o.TotalAmount = float64(o.Quantity) * o.UnitPrice
	if o.TotalAmount > 0 {
		o.DepositRatio = o.DepositAmount / o.TotalAmount
	} else {
		o.DepositRatio = 0
	}
	return nil
}

// ClassifyDelivery turns the signed day-delta between expected and
// delivered into the terminal status text.
func ClassifyDelivery(expected, delivered time.Time) (int, string) {
	delta := DaysBetween(expected, delivered)
	switch {
	case delta == 0:
		return delta, "delivered on time"
	case delta > 0:
		return delta, fmt.Sprintf("delivered late by %d days", delta)
	default:
		return delta, fmt.Sprintf("delivered early by %d days", -delta)
	}
}

// DeliveryDelta returns the signed day-delta for a delivered order, or
// false while the order is open or lacks an expected date. Report rows
// leave the column blank in that case.
func (o *Order) DeliveryDelta() (int, bool) {
	if o.DeliveredDate == nil || o.ExpectedDate == nil {
		return 0, false
	}
	return DaysBetween(*o.ExpectedDate, *o.DeliveredDate), true
}

// Stats is the aggregate view over all orders. Delivered orders are
// bucketed by their delivery delta, not by parsing status text.
type Stats struct {
	Total     int `json:"total"`
	Delivered int `json:"delivered"`
	Open      int `json:"open"`
	OnTime    int `json:"on_time"`
	Late      int `json:"late"`
	Early     int `json:"early"`
}

func ComputeStats(orders []Order) Stats {
	var s Stats
	s.Total = len(orders)
	for i := range orders {
		o := &orders[i]
		if o.Open() {
			s.Open++
			continue
		}
		s.Delivered++
		delta, ok := o.DeliveryDelta()
		if !ok {
			continue
		}
		switch {
		case delta == 0:
			s.OnTime++
		case delta > 0:
			s.Late++
		default:
			s.Early++
		}
	}
	return s
}
