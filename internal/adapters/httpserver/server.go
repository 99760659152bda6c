package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/foxrun/ordertrack/internal/domain"
	"github.com/foxrun/ordertrack/internal/usecase"
)

type Server struct {
	mux       *http.ServeMux
	orders    *usecase.OrderUC
	reminders *usecase.ReminderUC
	reports   *usecase.ReportUC
}

func New(o *usecase.OrderUC, rem *usecase.ReminderUC, rep *usecase.ReportUC) http.Handler {
	s := &Server{orders: o, reminders: rem, reports: rep, mux: http.NewServeMux()}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/orders", s.apiOrders)
	s.mux.HandleFunc("/api/orders/", s.apiOrderByID)
	s.mux.HandleFunc("/api/reminders", s.apiReminders)
	s.mux.HandleFunc("/api/stats", s.apiStats)
	s.mux.HandleFunc("/api/export/orders", s.apiExportOrders)
	s.mux.HandleFunc("/api/export/reminders", s.apiExportReminders)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrNegativeLeadTime):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrMissingExpectedDate):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Error().Err(err).Msg("storage")
		http.Error(w, "storage", http.StatusInternalServerError)
	}
}

func parseDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}
	t = domain.DateOnly(t)
	return &t, nil
}

type orderReq struct {
	OrderCode     string  `json:"order_code"`
	Name          string  `json:"name"`
	StartDate     string  `json:"start_date"`
	LeadTime      int     `json:"lead_time"`
	Notes         string  `json:"notes"`
	PackageInfo   string  `json:"package_info"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	DepositAmount float64 `json:"deposit_amount"`
}

func (req *orderReq) input() (usecase.OrderInput, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return usecase.OrderInput{}, err
	}
	return usecase.OrderInput{
		OrderCode:     req.OrderCode,
		Name:          req.Name,
		StartDate:     start,
		LeadTime:      req.LeadTime,
		Notes:         req.Notes,
		PackageInfo:   req.PackageInfo,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		DepositAmount: req.DepositAmount,
	}, nil
}

func (s *Server) apiOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		var f domain.OrderFilter
		from, err := parseDate(r.URL.Query().Get("expected_from"))
		if err != nil {
			writeErr(w, err)
			return
		}
		to, err := parseDate(r.URL.Query().Get("expected_to"))
		if err != nil {
			writeErr(w, err)
			return
		}
		f.ExpectedFrom, f.ExpectedTo = from, to
		f.Status = r.URL.Query().Get("status")
		list, err := s.orders.List(r.Context(), f)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"items": list, "total": len(list)})
		return
	}
	if r.Method == http.MethodPost {
		var req orderReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", 400)
			return
		}
		in, err := req.input()
		if err != nil {
			writeErr(w, err)
			return
		}
		o, err := s.orders.Create(r.Context(), in)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 201, o)
		return
	}
	http.Error(w, "method", 405)
}

func (s *Server) apiOrderByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	// Delivery confirmation nested under the order:
	// POST /api/orders/{id}/deliver
	if strings.HasSuffix(rest, "/deliver") {
		s.apiOrderDeliver(w, r, strings.TrimSuffix(rest, "/deliver"))
		return
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		http.Error(w, "id", 400)
		return
	}
	switch r.Method {
	case http.MethodGet:
		o, err := s.orders.Get(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 200, o)
	case http.MethodPut:
		var req orderReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", 400)
			return
		}
		in, err := req.input()
		if err != nil {
			writeErr(w, err)
			return
		}
		o, err := s.orders.Update(r.Context(), id, in)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 200, o)
	case http.MethodDelete:
		if err := s.orders.Delete(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiOrderDeliver(w http.ResponseWriter, r *http.Request, idStr string) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "id", 400)
		return
	}
	var req struct {
		DeliveredDate string `json:"delivered_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "json", 400)
		return
	}
	delivered, err := parseDate(req.DeliveredDate)
	if err != nil {
		writeErr(w, err)
		return
	}
	if delivered == nil {
		writeErr(w, fmt.Errorf("%w: delivered_date required", domain.ErrInvalidDate))
		return
	}
	status, err := s.orders.ConfirmDelivery(r.Context(), id, *delivered)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, 200, map[string]string{"status": status})
}

// refDate reads the optional ?date= query, defaulting to today.
func refDate(r *http.Request) (time.Time, error) {
	d, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		return time.Time{}, err
	}
	if d == nil {
		return domain.DateOnly(time.Now()), nil
	}
	return *d, nil
}

func (s *Server) apiReminders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	ref, err := refDate(r)
	if err != nil {
		writeErr(w, err)
		return
	}
	list, err := s.reminders.Build(r.Context(), ref)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, 200, map[string]any{"items": list, "total": len(list)})
}

func (s *Server) apiStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	stats, err := s.orders.Stats(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, 200, stats)
}

func serveXLSX(w http.ResponseWriter, name string, data []byte) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, _ = w.Write(data)
}

func (s *Server) apiExportOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	data, err := s.reports.ExportAll(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	serveXLSX(w, "orders.xlsx", data)
}

func (s *Server) apiExportReminders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	ref, err := refDate(r)
	if err != nil {
		writeErr(w, err)
		return
	}
	data, err := s.reports.ExportReminders(r.Context(), ref)
	if err != nil {
		writeErr(w, err)
		return
	}
	serveXLSX(w, "reminders.xlsx", data)
}
