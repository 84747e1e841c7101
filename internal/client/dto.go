package client

import (
	"time"

	"github.com/salestrack/sales-api/internal/models"
	"github.com/salestrack/sales-api/internal/patch"
)

// AllowedFields é a allow-list de PUT /client/{id}.
var AllowedFields = patch.AllowList{
	"client_name":      {Kind: patch.String, NonEmpty: true},
	"client_contact":   {Kind: patch.String, NonEmpty: true},
	"client_email":     {Kind: patch.String, NonEmpty: true},
	"job_title":        {Kind: patch.String},
	"deal_information": {Kind: patch.String},
}

type ClientDTO struct {
	ClientID        uint      `json:"client_id"`
	ClientName      string    `json:"client_name"`
	ClientContact   string    `json:"client_contact"`
	ClientEmail     string    `json:"client_email"`
	JobTitle        string    `json:"job_title"`
	DealInformation string    `json:"deal_information"`
	Timestamp       time.Time `json:"timestamp"`
}

func ToDTO(c models.Client) ClientDTO {
	return ClientDTO{
		ClientID:        c.ID,
		ClientName:      c.ClientName,
		ClientContact:   c.ClientContact,
		ClientEmail:     c.ClientEmail,
		JobTitle:        c.JobTitle,
		DealInformation: c.DealInformation,
		Timestamp:       c.Timestamp,
	}
}

func ToDTOs(list []models.Client) []ClientDTO {
	out := make([]ClientDTO, 0, len(list))
	for _, c := range list {
		out = append(out, ToDTO(c))
	}
	return out
}
