package sales

import (
	"strings"

	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/building"
	"github.com/salestrack/sales-api/internal/internet"
	"github.com/salestrack/sales-api/internal/meeting"
	"github.com/salestrack/sales-api/internal/models"
	"github.com/salestrack/sales-api/internal/office"
	"github.com/salestrack/sales-api/internal/utils"
)

// SalesRecordInput é o payload de POST /salesdetails. Os nomes de campo são
// os do formulário do front; prédio e escritório reaproveitam os requests
// dos respectivos pacotes.
type SalesRecordInput struct {
	ClientName string `json:"client_name"`
	Contact    string `json:"contact"`
	ClientMail string `json:"client_email"`
	Job        string `json:"job"`
	DealInfo   string `json:"deal_info"`

	MeetingDate     string `json:"meetingDate"`
	MeetingLocation string `json:"meetingLocation"`
	MeetingType     string `json:"meetingType"`
	MeetingRemarks  string `json:"meetingRemarks"`
	MeetingStatus   string `json:"meetingStatus"`

	IsConnected    utils.FlexBool  `json:"is_connected"`
	ISPName        string          `json:"isp_name"`
	ConnectionType string          `json:"connection_type"`
	Product        string          `json:"product"`
	NetPrice       utils.FlexFloat `json:"net_price"`
	DealStatus     string          `json:"deal_status"`

	building.BuildingRequest
	office.OfficeRequest
}

// salesPlan são os modelos já validados, ainda sem ids nem vínculos.
type salesPlan struct {
	client   *models.Client
	meeting  *models.Meeting
	internet *models.Internet
	building *models.Building
	office   *models.Office
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperr.Required(field)
	}
	return nil
}

// plan valida o payload inteiro antes de qualquer acesso ao banco. O primeiro
// campo inválido é devolvido como erro de validação nomeado.
func (in SalesRecordInput) plan() (*salesPlan, error) {
	for _, f := range []struct{ name, value string }{
		{"client_name", in.ClientName},
		{"contact", in.Contact},
		{"client_email", in.ClientMail},
		{"job", in.Job},
		{"deal_info", in.DealInfo},
		{"meetingDate", in.MeetingDate},
		{"meetingLocation", in.MeetingLocation},
		{"meetingStatus", in.MeetingStatus},
	} {
		if err := required(f.name, f.value); err != nil {
			return nil, err
		}
	}

	m, err := meeting.MeetingRequest{
		MeetingDate:     in.MeetingDate,
		MeetingLocation: in.MeetingLocation,
		MeetingType:     in.MeetingType,
		MeetingRemarks:  in.MeetingRemarks,
		MeetingStatus:   in.MeetingStatus,
	}.Build(0)
	if err != nil {
		return nil, renameField(err, map[string]string{
			"meeting_date":     "meetingDate",
			"meeting_location": "meetingLocation",
			"meeting_status":   "meetingStatus",
		})
	}

	deal, err := internet.InternetRequest{
		IsISPConnected:         in.IsConnected,
		ISPName:                in.ISPName,
		InternetConnectionType: in.ConnectionType,
		ServiceProvided:        in.Product,
		ISPPrice:               in.NetPrice,
		DealStatus:             in.DealStatus,
	}.Build(0)
	if err != nil {
		return nil, renameField(err, map[string]string{"isp_price": "net_price"})
	}

	b, err := in.BuildingRequest.Build()
	if err != nil {
		return nil, err
	}
	o, err := in.OfficeRequest.Build(0, nil)
	if err != nil {
		return nil, err
	}

	return &salesPlan{
		client: &models.Client{
			ClientName:      strings.TrimSpace(in.ClientName),
			ClientContact:   strings.TrimSpace(in.Contact),
			ClientEmail:     strings.TrimSpace(in.ClientMail),
			JobTitle:        in.Job,
			DealInformation: in.DealInfo,
		},
		meeting:  m,
		internet: deal,
		building: b,
		office:   o,
	}, nil
}

// LocationInput é o payload de POST /location. number_of_offices é o nome
// antigo de number_offices e ainda é aceito.
type LocationInput struct {
	building.BuildingRequest
	office.OfficeRequest
	NumberOfOffices utils.FlexInt `json:"number_of_offices"`
}

func (in LocationInput) plan() (*models.Building, *models.Office, error) {
	req := in.BuildingRequest
	if !req.NumberOffices.Set && in.NumberOfOffices.Set {
		req.NumberOffices = in.NumberOfOffices
	}
	b, err := req.Build()
	if err != nil {
		return nil, nil, err
	}
	o, err := in.OfficeRequest.Build(0, nil)
	if err != nil {
		return nil, nil, err
	}
	return b, o, nil
}

// renameField troca o nome do campo de um erro de validação para o nome usado
// no payload de vendas.
func renameField(err error, names map[string]string) error {
	ae, ok := err.(*apperr.Error)
	if !ok || ae.Kind != apperr.KindValidation {
		return err
	}
	name, ok := names[ae.Field]
	if !ok {
		return err
	}
	msg := strings.ReplaceAll(ae.Message, `"`+ae.Field+`"`, `"`+name+`"`)
	return apperr.Validation(name, msg)
}
