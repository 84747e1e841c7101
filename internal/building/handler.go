package building

import (
	"context"
	"net/http"

	"github.com/salestrack/sales-api/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// GET /locations/buildings
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListAll(h.DB.WithContext(r.Context()))
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", map[string]interface{}{"buildings": ToDTOs(list)})
}

// GET /locations/building/{id}, com os escritórios
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	b, err := h.Repository.FindByIDWithOffices(h.DB.WithContext(r.Context()), id)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", map[string]interface{}{"building": ToDTO(*b)})
}

// PUT /locations/building/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	var body map[string]interface{}
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, r, err)
		return
	}
	dto, err := h.Apply(r.Context(), id, body)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Building updated successfully", map[string]interface{}{"updatedBuilding": dto})
}

func (h *Handler) Apply(ctx context.Context, id uint, body map[string]interface{}) (interface{}, error) {
	cols, err := AllowedFields.Apply(body)
	if err != nil {
		return nil, err
	}
	b, err := h.Repository.Update(h.DB.WithContext(ctx), id, cols)
	if err != nil {
		return nil, err
	}
	return ToDTO(*b), nil
}
