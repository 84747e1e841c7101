package office

import (
	"strings"

	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/models"
	"github.com/salestrack/sales-api/internal/patch"
	"github.com/salestrack/sales-api/internal/utils"
)

var AllowedFields = patch.AllowList{
	"office_name":         {Kind: patch.String, NonEmpty: true},
	"office_floor":        {Kind: patch.Int},
	"staff_number":        {Kind: patch.Int, Min: patch.NonNegative()},
	"industry_category":   {Kind: patch.String},
	"more_data_on_office": {Kind: patch.String},
}

// OfficeRequest usa os nomes de campo do formulário de vendas.
type OfficeRequest struct {
	OfficeName  string        `json:"office_name"`
	OfficeFloor utils.FlexInt `json:"office_floor"`
	StaffNumber utils.FlexInt `json:"number_staff"`
	Industry    string        `json:"industry"`
	MoreOffices string        `json:"more_offices"`
}

// Build monta o escritório no prédio buildingID; clientID pode ser nil.
func (req OfficeRequest) Build(buildingID uint, clientID *uint) (*models.Office, error) {
	name := strings.TrimSpace(req.OfficeName)
	if name == "" {
		return nil, apperr.Required("office_name")
	}
	if req.StaffNumber.Value < 0 {
		return nil, apperr.Validation("number_staff", `field "number_staff" must be >= 0`)
	}
	return &models.Office{
		OfficeName:       name,
		OfficeFloor:      req.OfficeFloor.Value,
		StaffNumber:      req.StaffNumber.Value,
		IndustryCategory: req.Industry,
		MoreDataOnOffice: req.MoreOffices,
		BuildingID:       buildingID,
		ClientID:         clientID,
	}, nil
}

type OfficeDTO struct {
	OfficeID         uint   `json:"office_id"`
	OfficeName       string `json:"office_name"`
	OfficeFloor      int    `json:"office_floor"`
	StaffNumber      int    `json:"staff_number"`
	IndustryCategory string `json:"industry_category"`
	MoreDataOnOffice string `json:"more_data_on_office"`
	BuildingID       uint   `json:"building_id"`
	ClientID         *uint  `json:"client_id"`
}

func ToDTO(o models.Office) OfficeDTO {
	return OfficeDTO{
		OfficeID:         o.ID,
		OfficeName:       o.OfficeName,
		OfficeFloor:      o.OfficeFloor,
		StaffNumber:      o.StaffNumber,
		IndustryCategory: o.IndustryCategory,
		MoreDataOnOffice: o.MoreDataOnOffice,
		BuildingID:       o.BuildingID,
		ClientID:         o.ClientID,
	}
}

func ToDTOs(list []models.Office) []OfficeDTO {
	out := make([]OfficeDTO, 0, len(list))
	for _, o := range list {
		out = append(out, ToDTO(o))
	}
	return out
}
