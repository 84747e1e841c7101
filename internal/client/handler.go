package client

import (
	"context"
	"net/http"

	"github.com/salestrack/sales-api/internal/utils"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// GET /clients
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListAll(h.DB.WithContext(r.Context()))
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", map[string]interface{}{"clients": ToDTOs(list)})
}

// GET /client/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	c, err := h.Repository.FindByID(h.DB.WithContext(r.Context()), id)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", map[string]interface{}{"client": ToDTO(*c)})
}

// PUT /client/{id}
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
	utils.WriteSuccess(w, http.StatusOK, "Client data updated successfully", map[string]interface{}{"updatedClient": dto})
}

// Apply valida body contra a allow-list e atualiza o cliente. Também é usado
// pelo PUT /update genérico.
func (h *Handler) Apply(ctx context.Context, id uint, body map[string]interface{}) (interface{}, error) {
	cols, err := AllowedFields.Apply(body)
	if err != nil {
		return nil, err
	}
	c, err := h.Repository.Update(h.DB.WithContext(ctx), id, cols)
	if err != nil {
		return nil, err
	}
	return ToDTO(*c), nil
}
