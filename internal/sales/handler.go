package sales

import (
	"net/http"

	"github.com/salestrack/sales-api/internal/auth"
	"github.com/salestrack/sales-api/internal/logging"
	"github.com/salestrack/sales-api/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	DB          *gorm.DB
	Coordinator *Coordinator
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Coordinator: NewCoordinator()}
}

// POST /salesdetails
func (h *Handler) CreateSalesRecord(w http.ResponseWriter, r *http.Request) {
	var in SalesRecordInput
	if err := utils.DecodeBody(r, &in); err != nil {
		utils.WriteError(w, r, err)
		return
	}
	ids, err := h.Coordinator.CreateSalesRecord(r.Context(), h.DB, in)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, "Sales data added successfully", map[string]interface{}{"ids": ids})
}

// POST /location
func (h *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var in LocationInput
	if err := utils.DecodeBody(r, &in); err != nil {
		utils.WriteError(w, r, err)
		return
	}
	ids, err := h.Coordinator.CreateLocation(r.Context(), h.DB, in)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, "Location and office added successfully", map[string]interface{}{"ids": ids})
}

// DELETE /client/{id}
func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	s, err := h.Coordinator.DeleteClientCascade(r.Context(), h.DB, id)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Client and all related data deleted successfully", map[string]interface{}{"deleted": s})
}

// DELETE /locations/building/{id}
func (h *Handler) DeleteBuilding(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	s, err := h.Coordinator.DeleteBuildingCascade(r.Context(), h.DB, id)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Building and its offices deleted successfully", map[string]interface{}{"deleted": s})
}

// DELETE /clear-all-data (dev)
func (h *Handler) ClearAllData(w http.ResponseWriter, r *http.Request) {
	s, err := h.Coordinator.ClearAllData(r.Context(), h.DB)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	ev := logging.FromRequest(r).Warn().Interface("deleted", s)
	if by, ok := auth.UserID(r); ok {
		ev = ev.Uint("cleared_by", by)
	}
	ev.Msg("base de vendas limpa")
	utils.WriteSuccess(w, http.StatusOK, "All data cleared", map[string]interface{}{"deleted": s})
}

// GET /sales
func (h *Handler) GetAllSales(w http.ResponseWriter, r *http.Request) {
	report, err := h.Coordinator.GetAllSales(r.Context(), h.DB)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", map[string]interface{}{
		"sales":         report.Sales,
		"total_clients": report.TotalClients,
	})
}

// GET /sales/{id}
func (h *Handler) GetClientComplete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	cc, err := h.Coordinator.GetClientComplete(r.Context(), h.DB, id)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", map[string]interface{}{"data": cc})
}

// GET /summary
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.Coordinator.CountSummary(r.Context(), h.DB)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", map[string]interface{}{"summary": s})
}
