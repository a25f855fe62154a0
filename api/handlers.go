/*
handlers.go - HTTP API handlers for the limit calculators

ENDPOINTS:
  Cash:
    POST   /api/cash/records            Add a record (amount in roubles)
    GET    /api/cash/records            List records
    GET    /api/cash/stats              Limit, today and week totals
    GET    /api/cash/remained?currency= Remaining balance message

  Calories:
    POST   /api/calories/records        Add a record (kcal)
    GET    /api/calories/records        List records
    GET    /api/calories/stats          Limit, today and week totals
    GET    /api/calories/remained       Remaining calories message

CONCURRENCY:
  The calculators do no locking of their own, so every handler that touches
  one holds Handler.mu.

ERROR HANDLING:
  - 400: bad JSON, negative amount, bad date, unknown currency
  - 500: storage failures
*/
package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/warp/limit-calculator/calories"
	"github.com/warp/limit-calculator/cash"
	"github.com/warp/limit-calculator/generic"
)

// Kind names a calculator in routes, metrics and logs.
type Kind string

const (
	KindCash     Kind = "cash"
	KindCalories Kind = "calories"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

type Handler struct {
	mu       sync.Mutex
	cash     *cash.Calculator
	calories *calories.Calculator
	logger   *zap.Logger
}

// NewHandler serves the given calculators. A nil logger logs nothing.
func NewHandler(c *cash.Calculator, cal *calories.Calculator, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{cash: c, calories: cal, logger: logger}
}

func (h *Handler) base(kind Kind) *generic.Calculator {
	if kind == KindCash {
		return h.cash.Calculator
	}
	return h.calories.Calculator
}

// =============================================================================
// RECORDS
// =============================================================================

// AddRecord returns the handler for POST /api/{kind}/records.
func (h *Handler) AddRecord(kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body", err)
			return
		}

		h.mu.Lock()
		defer h.mu.Unlock()

		calc := h.base(kind)
		rec, err := generic.NewRecord(calc.Clock(), req.Amount, req.Comment, req.Date)
		if err != nil {
			h.fail(w, kind, "invalid record", err)
			return
		}
		if err := calc.AddRecord(r.Context(), rec); err != nil {
			h.fail(w, kind, "failed to add record", err)
			return
		}

		RecordsAdded.WithLabelValues(string(kind)).Inc()
		AmountAdded.WithLabelValues(string(kind)).Add(float64(rec.Amount))
		h.logger.Debug("record added",
			zap.String("calculator", string(kind)),
			zap.String("record_id", rec.ID),
			zap.Int64("amount", rec.Amount),
			zap.Stringer("date", rec.Date),
		)

		writeJSON(w, http.StatusCreated, toRecordDTO(rec))
	}
}

// ListRecords returns the handler for GET /api/{kind}/records.
func (h *Handler) ListRecords(kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		defer h.mu.Unlock()

		records, err := h.base(kind).Records(r.Context())
		if err != nil {
			h.fail(w, kind, "failed to load records", err)
			return
		}
		writeJSON(w, http.StatusOK, toRecordDTOs(records))
	}
}

// Stats returns the handler for GET /api/{kind}/stats.
func (h *Handler) Stats(kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		defer h.mu.Unlock()

		calc := h.base(kind)
		week, err := calc.WeekStats(r.Context())
		if err != nil {
			h.fail(w, kind, "failed to compute week stats", err)
			return
		}
		writeJSON(w, http.StatusOK, StatsDTO{
			Limit: calc.Limit().String(),
			Today: calc.TodayStats(),
			Week:  week,
		})
	}
}

// =============================================================================
// REMAINED
// =============================================================================

// CashRemained handles GET /api/cash/remained?currency=rub. The currency
// defaults to rub.
func (h *Handler) CashRemained(w http.ResponseWriter, r *http.Request) {
	code := cash.Currency(r.URL.Query().Get("currency"))
	if code == "" {
		code = cash.RUB
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	msg, err := h.cash.TodayCashRemained(code)
	if err != nil {
		h.fail(w, KindCash, "cannot compute remaining cash", err)
		return
	}
	amount, rate, err := h.cash.RemainedIn(code)
	if err != nil {
		h.fail(w, KindCash, "cannot compute remaining cash", err)
		return
	}

	writeJSON(w, http.StatusOK, CashRemainedDTO{
		Message:   msg,
		Remaining: cash.FormatAmount(amount),
		Currency:  string(rate.Code),
		Label:     rate.Label,
	})
}

// CaloriesRemained handles GET /api/calories/remained.
func (h *Handler) CaloriesRemained(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	writeJSON(w, http.StatusOK, CaloriesRemainedDTO{
		Message:   h.calories.CaloriesRemained(),
		Remaining: h.calories.Remaining().String(),
	})
}

// =============================================================================
// HELPERS
// =============================================================================

// fail maps err to a status and writes it. Client errors are not logged
// above debug.
func (h *Handler) fail(w http.ResponseWriter, kind Kind, message string, err error) {
	if generic.IsClientError(err) {
		h.logger.Debug(message, zap.String("calculator", string(kind)), zap.Error(err))
		writeError(w, http.StatusBadRequest, message, err)
		return
	}
	h.logger.Error(message, zap.String("calculator", string(kind)), zap.Error(err))
	writeError(w, http.StatusInternalServerError, message, err)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
