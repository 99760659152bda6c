package orderdb

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/foxrun/ordertrack/internal/domain"
)

// OrderRepo is the single gorm-backed implementation of
// domain.OrderRepo. Which backend sits underneath (embedded sqlite file
// or a hosted postgres) is decided by the dialector chosen at startup;
// no code in here branches on it.
type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

// editableCols are the columns Update may overwrite. delivered_date and
// status are deliberately absent; they change only via MarkDelivered.
var editableCols = []string{
	"order_code", "name", "start_date", "lead_time", "expected_date",
	"notes", "package_info",
	"quantity", "unit_price", "total_amount", "deposit_amount", "deposit_ratio",
}

func (r *OrderRepo) Save(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepo) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	list := []domain.Order{}
	q := r.db.WithContext(ctx).Model(&domain.Order{})
	if f.ExpectedFrom != nil {
		q = q.Where("expected_date >= ?", *f.ExpectedFrom)
	}
	if f.ExpectedTo != nil {
		q = q.Where("expected_date <= ?", *f.ExpectedTo)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if err := q.Order("id desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *OrderRepo) Update(ctx context.Context, o *domain.Order) error {
	res := r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ?", o.ID).Select(editableCols).Updates(*o)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Order{}, "id = ?", id).Error
}

func (r *OrderRepo) ExpectedDate(ctx context.Context, id int64) (*time.Time, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).Select("id", "expected_date").First(&o, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return o.ExpectedDate, nil
}

func (r *OrderRepo) MarkDelivered(ctx context.Context, id int64, delivered time.Time, status string) error {
	res := r.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).
		Updates(map[string]any{"delivered_date": delivered, "status": status})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
