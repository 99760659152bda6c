package domain

import (
	"context"
	"time"
)

// OrderFilter narrows List. The zero value means "everything".
type OrderFilter struct {
	ExpectedFrom *time.Time
	ExpectedTo   *time.Time
	Status       string
}

// OrderRepo is the persistence surface the core needs. Backends are
// selected at startup; nothing above this interface knows which driver
// is behind it.
type OrderRepo interface {
	Save(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id int64) (*Order, error)
	// List returns every matching order newest first (id descending).
	List(ctx context.Context, f OrderFilter) ([]Order, error)
	// Update overwrites the editable fields of an existing order. It
	// never touches delivered_date or status and returns ErrNotFound
	// when the id does not exist.
	Update(ctx context.Context, o *Order) error
	// Delete is idempotent: removing a missing id is a success.
	Delete(ctx context.Context, id int64) error
	// ExpectedDate fetches just the expected date of one order, the
	// read delivery confirmation does before comparing dates.
	ExpectedDate(ctx context.Context, id int64) (*time.Time, error)
	// MarkDelivered persists delivered_date and status in a single
	// update.
	MarkDelivered(ctx context.Context, id int64, delivered time.Time, status string) error
}

// ReportSink renders ordered tabular rows into a downloadable file.
// The core only depends on "given rows, get bytes".
type ReportSink interface {
	Export(sheet string, header []string, rows [][]any) ([]byte, error)
}
