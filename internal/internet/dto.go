package internet

import (
	"strings"
	"time"

	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/models"
	"github.com/salestrack/sales-api/internal/patch"
	"github.com/salestrack/sales-api/internal/utils"
)

const StatusPending = "Pending"

var AllowedFields = patch.AllowList{
	"is_isp_connected":         {Kind: patch.Bool},
	"isp_name":                 {Kind: patch.String},
	"internet_connection_type": {Kind: patch.String},
	"service_provided":         {Kind: patch.String},
	"isp_price":                {Kind: patch.Float, Min: patch.NonNegative()},
	"deal_status":              {Kind: patch.String, NonEmpty: true},
}

// InternetRequest é o corpo de POST /client/{id}/internet. Os mesmos campos
// chegam achatados no POST /salesdetails.
type InternetRequest struct {
	IsISPConnected         utils.FlexBool  `json:"is_isp_connected"`
	ISPName                string          `json:"isp_name"`
	InternetConnectionType string          `json:"internet_connection_type"`
	ServiceProvided        string          `json:"service_provided"`
	ISPPrice               utils.FlexFloat `json:"isp_price"`
	DealStatus             string          `json:"deal_status"`
}

// Build monta o negócio para clientID. deal_status é obrigatório, como no
// update. Sem ISP conectado os dados do provedor são descartados e o preço
// fica zerado.
func (req InternetRequest) Build(clientID uint) (*models.Internet, error) {
	if strings.TrimSpace(req.DealStatus) == "" {
		return nil, apperr.Required("deal_status")
	}
	if req.ISPPrice.Value < 0 {
		return nil, apperr.Validation("isp_price", `field "isp_price" must be >= 0`)
	}
	i := &models.Internet{
		IsISPConnected: req.IsISPConnected.Value,
		DealStatus:     req.DealStatus,
		ClientID:       clientID,
	}
	if i.IsISPConnected {
		i.ISPName = req.ISPName
		i.InternetConnectionType = req.InternetConnectionType
		i.ServiceProvided = req.ServiceProvided
		i.ISPPrice = req.ISPPrice.Value
	}
	return i, nil
}

type InternetDTO struct {
	InternetID             uint      `json:"internet_id"`
	IsISPConnected         bool      `json:"is_isp_connected"`
	ISPName                string    `json:"isp_name"`
	InternetConnectionType string    `json:"internet_connection_type"`
	ServiceProvided        string    `json:"service_provided"`
	ISPPrice               float64   `json:"isp_price"`
	DealStatus             string    `json:"deal_status"`
	ClientID               uint      `json:"client_id"`
	Timestamp              time.Time `json:"timestamp"`
}

func ToDTO(i models.Internet) InternetDTO {
	return InternetDTO{
		InternetID:             i.ID,
		IsISPConnected:         i.IsISPConnected,
		ISPName:                i.ISPName,
		InternetConnectionType: i.InternetConnectionType,
		ServiceProvided:        i.ServiceProvided,
		ISPPrice:               i.ISPPrice,
		DealStatus:             i.DealStatus,
		ClientID:               i.ClientID,
		Timestamp:              i.Timestamp,
	}
}

func ToDTOs(list []models.Internet) []InternetDTO {
	out := make([]InternetDTO, 0, len(list))
	for _, i := range list {
		out = append(out, ToDTO(i))
	}
	return out
}
