package staff

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/andika/attendance-management/internal/transport"
	"github.com/andika/attendance-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListStaff() ([]*Staff, error)
	GetStaff(id string) (*Staff, error)
	CreateStaff(dto CreateStaffDTO) (*Staff, error)
	UpdateStaff(id string, dto UpdateStaffDTO) (*Staff, error)
	DeleteStaff(id string) error
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

func (h *Handler) ListStaff(w http.ResponseWriter, r *http.Request) {
	members, err := h.Service.ListStaff()
	if err != nil {
		h.Logger.Error("ListStaff: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	if members == nil {
		members = []*Staff{}
	}
	h.WriteJSON(w, http.StatusOK, members)
}

func (h *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	member, err := h.Service.GetStaff(id)
	if err != nil {
		h.Logger.Error("GetStaff: service error", "error", err, "staff_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, member)
}

func (h *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var dto CreateStaffDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateStaff: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	member, err := h.Service.CreateStaff(dto)
	if err != nil {
		h.Logger.Error("CreateStaff: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateStaff: staff created", "staff_id", member.ID)
	h.WriteJSON(w, http.StatusCreated, member)
}

func (h *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateStaffDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateStaff: invalid request body", "error", err, "staff_id", id)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	member, err := h.Service.UpdateStaff(id, dto)
	if err != nil {
		h.Logger.Error("UpdateStaff: service error", "error", err, "staff_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, member)
}

func (h *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Service.DeleteStaff(id); err != nil {
		h.Logger.Error("DeleteStaff: service error", "error", err, "staff_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("DeleteStaff: staff deleted", "staff_id", id)
	w.WriteHeader(http.StatusNoContent)
}
