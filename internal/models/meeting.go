package models

import (
	"time"

	"gorm.io/datatypes"
)

type Meeting struct {
	ID              uint           `gorm:"primaryKey;column:meeting_id"`
	MeetingDate     datatypes.Date `gorm:"column:meeting_date;not null"`
	MeetingLocation string         `gorm:"column:meeting_location;not null"`
	MeetingType     string         `gorm:"column:meeting_type"`
	MeetingRemarks  string         `gorm:"column:meeting_remarks;type:text;not null"`
	MeetingStatus   string         `gorm:"column:meeting_status;not null;index"`
	ClientID        *uint          `gorm:"column:client_id;index"`
	Timestamp       time.Time      `gorm:"column:timestamp;autoCreateTime"`
}

func (Meeting) TableName() string { return "meeting" }
