package models

import "time"

// Client é a raiz do agregado Client+Meeting+Internet e dona dos Buildings
// criados junto com ela.
type Client struct {
	ID              uint      `gorm:"primaryKey;column:client_id"`
	ClientName      string    `gorm:"column:client_name;uniqueIndex;not null"`
	ClientContact   string    `gorm:"column:client_contact;uniqueIndex;not null"`
	ClientEmail     string    `gorm:"column:client_email;uniqueIndex;not null"`
	JobTitle        string    `gorm:"column:job_title;not null"`
	DealInformation string    `gorm:"column:deal_information;type:text;not null"`
	Timestamp       time.Time `gorm:"column:timestamp;autoCreateTime"`

	Meetings  []Meeting  `gorm:"foreignKey:ClientID"`
	Internet  []Internet `gorm:"foreignKey:ClientID"`
	Buildings []Building `gorm:"foreignKey:ClientID"`
	Offices   []Office   `gorm:"foreignKey:ClientID"`
}

func (Client) TableName() string { return "client" }
