package internet

import (
	"context"
	"net/http"

	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/models"
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

// POST /client/{id}/internet
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	clientID, err := utils.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	var req InternetRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, r, err)
		return
	}
	deal, err := req.Build(clientID)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	err = h.DB.WithContext(r.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Client{}, clientID).Error; err != nil {
			return apperr.FromDB(err, "client")
		}
		return h.Repository.Create(tx, deal)
	})
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, "Internet deal added successfully", map[string]interface{}{"internet": ToDTO(*deal)})
}

// GET /internet
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListAll(h.DB.WithContext(r.Context()))
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", map[string]interface{}{"internet": ToDTOs(list)})
}

// GET /internet/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	deal, err := h.Repository.FindByID(h.DB.WithContext(r.Context()), id)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", map[string]interface{}{"internet": ToDTO(*deal)})
}

// PUT /internet/{id}
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
	utils.WriteSuccess(w, http.StatusOK, "Internet data updated successfully", map[string]interface{}{"updatedInternet": dto})
}

func (h *Handler) Apply(ctx context.Context, id uint, body map[string]interface{}) (interface{}, error) {
	cols, err := AllowedFields.Apply(body)
	if err != nil {
		return nil, err
	}
	deal, err := h.Repository.Update(h.DB.WithContext(ctx), id, cols)
	if err != nil {
		return nil, err
	}
	return ToDTO(*deal), nil
}

// DELETE /internet/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	if err := h.Repository.Delete(h.DB.WithContext(r.Context()), id); err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Internet deal deleted successfully", map[string]interface{}{
		"deleted": map[string]int64{"internet": 1},
	})
}
