package attendance

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/andika/attendance-management/internal/transport"
	"github.com/andika/attendance-management/pkg/logger"
)

type ServiceAPI interface {
	CheckIn(dto CheckDTO) (*Record, bool, error)
	CheckOut(dto CheckDTO) (*Record, error)
	Today() ([]*Record, error)
	Range(q RangeQuery) ([]*Record, error)
	SummaryReport(q RangeQuery) ([]StaffSummary, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.L()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// CheckIn answers 201 for a fresh record, 200 when the day's record
// already existed.
func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var dto CheckDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CheckIn: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, created, err := h.Service.CheckIn(dto)
	if err != nil {
		h.Logger.Error("CheckIn: service error", "error", err, "staff_id", dto.StaffID)
		h.HandleServiceError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.WriteJSON(w, status, record)
}

func (h *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	var dto CheckDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CheckOut: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.CheckOut(dto)
	if err != nil {
		h.Logger.Error("CheckOut: service error", "error", err, "staff_id", dto.StaffID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) TodayRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.Today()
	if err != nil {
		h.Logger.Error("TodayRecords: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	if records == nil {
		records = []*Record{}
	}
	h.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	q := rangeQueryFromRequest(r)

	records, err := h.Service.Range(q)
	if err != nil {
		h.Logger.Error("ListRecords: service error", "error", err, "from", q.From, "to", q.To)
		h.HandleServiceError(w, err)
		return
	}

	if records == nil {
		records = []*Record{}
	}
	h.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	q := rangeQueryFromRequest(r)

	summary, err := h.Service.SummaryReport(q)
	if err != nil {
		h.Logger.Error("Summary: service error", "error", err, "from", q.From, "to", q.To)
		h.HandleServiceError(w, err)
		return
	}

	if summary == nil {
		summary = []StaffSummary{}
	}
	h.WriteJSON(w, http.StatusOK, summary)
}

func rangeQueryFromRequest(r *http.Request) RangeQuery {
	return RangeQuery{
		From:    r.URL.Query().Get("from"),
		To:      r.URL.Query().Get("to"),
		StaffID: r.URL.Query().Get("staffId"),
	}
}
