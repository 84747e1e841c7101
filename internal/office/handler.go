package office

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

// officeCreateRequest aceita client_id opcional para vincular o escritório.
type officeCreateRequest struct {
	OfficeRequest
	ClientID utils.FlexInt `json:"client_id"`
}

// POST /locations/building/{id}/offices
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	buildingID, err := utils.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	var req officeCreateRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, r, err)
		return
	}
	var clientID *uint
	if req.ClientID.Set {
		if req.ClientID.Value <= 0 {
			utils.WriteError(w, r, apperr.Validation("client_id", "invalid id"))
			return
		}
		id := uint(req.ClientID.Value)
		clientID = &id
	}
	o, err := req.Build(buildingID, clientID)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}

	err = h.DB.WithContext(r.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Building{}, buildingID).Error; err != nil {
			return apperr.FromDB(err, "building")
		}
		if clientID != nil {
			if err := tx.First(&models.Client{}, *clientID).Error; err != nil {
				return apperr.FromDB(err, "client")
			}
		}
		return h.Repository.Create(tx, o)
	})
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, "Office added successfully", map[string]interface{}{"office": ToDTO(*o)})
}

// GET /offices e GET /locations/offices
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListAll(h.DB.WithContext(r.Context()))
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", map[string]interface{}{"offices": ToDTOs(list)})
}

// GET /office/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	o, err := h.Repository.FindByID(h.DB.WithContext(r.Context()), id)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", map[string]interface{}{"office": ToDTO(*o)})
}

// PUT /office/{id} e PUT /locations/office/{id}
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
	utils.WriteSuccess(w, http.StatusOK, "Office updated successfully", map[string]interface{}{"updatedOffice": dto})
}

func (h *Handler) Apply(ctx context.Context, id uint, body map[string]interface{}) (interface{}, error) {
	cols, err := AllowedFields.Apply(body)
	if err != nil {
		return nil, err
	}
	o, err := h.Repository.Update(h.DB.WithContext(ctx), id, cols)
	if err != nil {
		return nil, err
	}
	return ToDTO(*o), nil
}

// DELETE /office/{id} e DELETE /locations/office/{id}
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
	utils.WriteSuccess(w, http.StatusOK, "Office deleted successfully", map[string]interface{}{
		"deleted": map[string]int64{"offices": 1},
	})
}
