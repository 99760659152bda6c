package app

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/foxrun/ordertrack/internal/adapters/httpserver"
	"github.com/foxrun/ordertrack/internal/adapters/report/excel"
	"github.com/foxrun/ordertrack/internal/adapters/repo/orderdb"
	"github.com/foxrun/ordertrack/internal/domain"
	"github.com/foxrun/ordertrack/internal/usecase"
)

type App struct {
	DB         *gorm.DB
	OrderUC    *usecase.OrderUC
	ReminderUC *usecase.ReminderUC
	ReportUC   *usecase.ReportUC
}

// NewApp wires the repository, the report sink and the use cases.
// window is the reminder day-offset list; nil means the default.
func NewApp(db *gorm.DB, window []int) *App {
	repo := orderdb.NewOrderRepo(db)
	sink := excel.New()

	a := &App{DB: db}
	a.OrderUC = &usecase.OrderUC{Orders: repo}
	a.ReminderUC = &usecase.ReminderUC{Orders: repo, Window: window}
	a.ReportUC = &usecase.ReportUC{Orders: repo, Sink: sink, Window: window}
	return a
}

func (a *App) Migrate() error {
	return a.DB.AutoMigrate(&domain.Order{})
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.OrderUC, a.ReminderUC, a.ReportUC)
}
