package sales

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/patch"
	"github.com/salestrack/sales-api/internal/utils"
)

// Updater aplica um mapa de campos à entidade id, validando pela allow-list
// da própria entidade.
type Updater interface {
	Apply(ctx context.Context, id uint, body map[string]interface{}) (interface{}, error)
}

// categoryOrder define a ordem de detecção da categoria quando o payload não
// traz "category": ids de entidades filhas antes de client_id.
var categoryOrder = []string{"meeting", "internet", "office", "building", "client"}

// UpdateHandler atende PUT /update nas duas formas aceitas:
//
//	{"category": "client", "client_id": 1, "field": "job_title", "value": "CEO"}
//	{"client_id": 1, "job_title": "CEO", ...}
type UpdateHandler struct {
	Updaters map[string]Updater
}

func (h *UpdateHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, r, err)
		return
	}
	category, id, fields, err := h.parse(body)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	dto, err := h.Updaters[category].Apply(r.Context(), id, fields)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, fmt.Sprintf("%s updated successfully", strings.ToUpper(category[:1])+category[1:]), map[string]interface{}{
		"category": category,
		"updated":  dto,
	})
}

func (h *UpdateHandler) parse(body map[string]interface{}) (string, uint, map[string]interface{}, error) {
	category, _ := body["category"].(string)
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		for _, c := range categoryOrder {
			if _, ok := body[c+"_id"]; ok {
				category = c
				break
			}
		}
	}
	if _, ok := h.Updaters[category]; !ok {
		return "", 0, nil, apperr.Validation("category", "category must be one of client, meeting, internet, building, office")
	}

	idField := category + "_id"
	raw, ok := body[idField]
	if !ok {
		return "", 0, nil, apperr.Required(idField)
	}
	n, err := patch.ToInt(raw)
	if err != nil || n <= 0 {
		return "", 0, nil, apperr.Validation(idField, "invalid id")
	}

	fields := make(map[string]interface{}, len(body))
	if field, ok := body["field"].(string); ok {
		fields[field] = body["value"]
	} else {
		for k, v := range body {
			if k != "category" && k != idField {
				fields[k] = v
			}
		}
	}
	return category, uint(n), fields, nil
}
