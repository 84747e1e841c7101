package meeting

import (
	"strings"
	"time"

	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/models"
	"github.com/salestrack/sales-api/internal/patch"
)

const (
	StatusScheduled = "Scheduled"
	dateLayout      = "2006-01-02"
)

var AllowedFields = patch.AllowList{
	"meeting_date":     {Kind: patch.Date},
	"meeting_location": {Kind: patch.String, NonEmpty: true},
	"meeting_type":     {Kind: patch.String},
	"meeting_remarks":  {Kind: patch.String},
	"meeting_status":   {Kind: patch.String, NonEmpty: true},
}

// MeetingRequest é o corpo de POST /client/{id}/meetings.
type MeetingRequest struct {
	MeetingDate     string `json:"meeting_date"`
	MeetingLocation string `json:"meeting_location"`
	MeetingType     string `json:"meeting_type"`
	MeetingRemarks  string `json:"meeting_remarks"`
	MeetingStatus   string `json:"meeting_status"`
}

// Build valida os campos obrigatórios e monta o modelo para clientID.
func (req MeetingRequest) Build(clientID uint) (*models.Meeting, error) {
	if strings.TrimSpace(req.MeetingDate) == "" {
		return nil, apperr.Required("meeting_date")
	}
	date, err := patch.ParseDate(req.MeetingDate)
	if err != nil {
		return nil, apperr.Validation("meeting_date", `field "meeting_date" must be a date (YYYY-MM-DD)`)
	}
	if strings.TrimSpace(req.MeetingLocation) == "" {
		return nil, apperr.Required("meeting_location")
	}
	if strings.TrimSpace(req.MeetingStatus) == "" {
		return nil, apperr.Required("meeting_status")
	}
	return &models.Meeting{
		MeetingDate:     date,
		MeetingLocation: req.MeetingLocation,
		MeetingType:     req.MeetingType,
		MeetingRemarks:  req.MeetingRemarks,
		MeetingStatus:   req.MeetingStatus,
		ClientID:        &clientID,
	}, nil
}

type MeetingDTO struct {
	MeetingID       uint      `json:"meeting_id"`
	MeetingDate     string    `json:"meeting_date"`
	MeetingLocation string    `json:"meeting_location"`
	MeetingType     string    `json:"meeting_type"`
	MeetingRemarks  string    `json:"meeting_remarks"`
	MeetingStatus   string    `json:"meeting_status"`
	ClientID        *uint     `json:"client_id"`
	Timestamp       time.Time `json:"timestamp"`
}

func ToDTO(m models.Meeting) MeetingDTO {
	return MeetingDTO{
		MeetingID:       m.ID,
		MeetingDate:     time.Time(m.MeetingDate).Format(dateLayout),
		MeetingLocation: m.MeetingLocation,
		MeetingType:     m.MeetingType,
		MeetingRemarks:  m.MeetingRemarks,
		MeetingStatus:   m.MeetingStatus,
		ClientID:        m.ClientID,
		Timestamp:       m.Timestamp,
	}
}

func ToDTOs(list []models.Meeting) []MeetingDTO {
	out := make([]MeetingDTO, 0, len(list))
	for _, m := range list {
		out = append(out, ToDTO(m))
	}
	return out
}
