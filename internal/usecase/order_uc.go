package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/foxrun/ordertrack/internal/domain"
)

type OrderUC struct {
	Orders domain.OrderRepo
}

// OrderInput carries the editable fields of an order. Derived fields
// (expected_date, total_amount, deposit_ratio) are never accepted from
// the caller; they are recomputed before every write.
type OrderInput struct {
	OrderCode     string
	Name          string
	StartDate     *time.Time
	LeadTime      int
	Notes         string
	PackageInfo   string
	Quantity      int
	UnitPrice     float64
	DepositAmount float64
}

func (in *OrderInput) apply(o *domain.Order) {
	o.OrderCode = in.OrderCode
	o.Name = in.Name
	o.StartDate = in.StartDate
	o.LeadTime = in.LeadTime
	o.Notes = in.Notes
	o.PackageInfo = in.PackageInfo
	o.Quantity = in.Quantity
	o.UnitPrice = in.UnitPrice
	o.DepositAmount = in.DepositAmount
}

func (uc *OrderUC) Create(ctx context.Context, in OrderInput) (*domain.Order, error) {
	o := &domain.Order{Status: domain.StatusInProduction, CreatedAt: time.Now()}
	in.apply(o)
	if o.OrderCode == "" {
		o.OrderCode = "OD" + strconv.FormatInt(time.Now().Unix(), 10)
	}
	if err := o.Recalculate(); err != nil {
		return nil, err
	}
	if err := uc.Orders.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	return o, nil
}

func (uc *OrderUC) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	return uc.Orders.List(ctx, f)
}

func (uc *OrderUC) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return uc.Orders.FindByID(ctx, id)
}

// Update overwrites the editable fields and re-derives the computed
// ones. delivered_date and status are left alone; delivery state only
// changes through ConfirmDelivery.
func (uc *OrderUC) Update(ctx context.Context, id int64, in OrderInput) (*domain.Order, error) {
	o := &domain.Order{ID: id}
	in.apply(o)
	if err := o.Recalculate(); err != nil {
		return nil, err
	}
	if err := uc.Orders.Update(ctx, o); err != nil {
		return nil, err
	}
	return uc.Orders.FindByID(ctx, id)
}

func (uc *OrderUC) Delete(ctx context.Context, id int64) error {
	return uc.Orders.Delete(ctx, id)
}

// ConfirmDelivery closes an order: it compares the delivered date
// against the stored expected date, derives the terminal status text
// and persists both in one update. Re-confirming with a different date
// overwrites the previous status; no history is kept.
func (uc *OrderUC) ConfirmDelivery(ctx context.Context, id int64, delivered time.Time) (string, error) {
	expected, err := uc.Orders.ExpectedDate(ctx, id)
	if err != nil {
		return "", err
	}
	if expected == nil {
		return "", fmt.Errorf("%w: order %d", domain.ErrMissingExpectedDate, id)
	}
	delivered = domain.DateOnly(delivered)
	_, status := domain.ClassifyDelivery(*expected, delivered)
	if err := uc.Orders.MarkDelivered(ctx, id, delivered, status); err != nil {
		return "", err
	}
	return status, nil
}

func (uc *OrderUC) Stats(ctx context.Context) (domain.Stats, error) {
	orders, err := uc.Orders.List(ctx, domain.OrderFilter{})
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.ComputeStats(orders), nil
}
