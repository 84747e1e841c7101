package building

import (
	"strings"

	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/models"
	"github.com/salestrack/sales-api/internal/office"
	"github.com/salestrack/sales-api/internal/patch"
	"github.com/salestrack/sales-api/internal/utils"
)

var AllowedFields = patch.AllowList{
	"building_name":      {Kind: patch.String, NonEmpty: true},
	"is_fibre_setup":     {Kind: patch.Bool},
	"ease_of_access":     {Kind: patch.Int, Min: patch.NonNegative()},
	"access_information": {Kind: patch.String},
	"number_offices":     {Kind: patch.Int, Min: patch.NonNegative()},
}

// BuildingRequest carrega os campos de prédio usados em /location e
// /salesdetails.
type BuildingRequest struct {
	BuildingName      string         `json:"building_name"`
	IsFibreSetup      utils.FlexBool `json:"is_fibre_setup"`
	EaseOfAccess      utils.FlexInt  `json:"ease_of_access"`
	AccessInformation string         `json:"more_info_access"`
	NumberOffices     utils.FlexInt  `json:"number_offices"`
}

func (req BuildingRequest) Build() (*models.Building, error) {
	name := strings.TrimSpace(req.BuildingName)
	if name == "" {
		return nil, apperr.Required("building_name")
	}
	if req.EaseOfAccess.Value < 0 {
		return nil, apperr.Validation("ease_of_access", `field "ease_of_access" must be >= 0`)
	}
	if req.NumberOffices.Value < 0 {
		return nil, apperr.Validation("number_offices", `field "number_offices" must be >= 0`)
	}
	return &models.Building{
		BuildingName:      name,
		IsFibreSetup:      req.IsFibreSetup.Value,
		EaseOfAccess:      req.EaseOfAccess.Value,
		AccessInformation: req.AccessInformation,
		NumberOffices:     req.NumberOffices.Value,
	}, nil
}

type BuildingDTO struct {
	BuildingID        uint               `json:"building_id"`
	BuildingName      string             `json:"building_name"`
	IsFibreSetup      bool               `json:"is_fibre_setup"`
	EaseOfAccess      int                `json:"ease_of_access"`
	AccessInformation string             `json:"access_information"`
	NumberOffices     int                `json:"number_offices"`
	ClientID          *uint              `json:"client_id"`
	Offices           []office.OfficeDTO `json:"offices,omitempty"`
}

func ToDTO(b models.Building) BuildingDTO {
	dto := BuildingDTO{
		BuildingID:        b.ID,
		BuildingName:      b.BuildingName,
		IsFibreSetup:      b.IsFibreSetup,
		EaseOfAccess:      b.EaseOfAccess,
		AccessInformation: b.AccessInformation,
		NumberOffices:     b.NumberOffices,
		ClientID:          b.ClientID,
	}
	if b.Offices != nil {
		dto.Offices = office.ToDTOs(b.Offices)
	}
	return dto
}

func ToDTOs(list []models.Building) []BuildingDTO {
	out := make([]BuildingDTO, 0, len(list))
	for _, b := range list {
		out = append(out, ToDTO(b))
	}
	return out
}
