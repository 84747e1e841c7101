package models

import "time"

// Internet é o negócio de conectividade fechado (ou em negociação) com o cliente.
type Internet struct {
	ID                     uint      `gorm:"primaryKey;column:internet_id"`
	IsISPConnected         bool      `gorm:"column:is_isp_connected;not null"`
	ISPName                string    `gorm:"column:isp_name"`
	InternetConnectionType string    `gorm:"column:internet_connection_type"`
	ServiceProvided        string    `gorm:"column:service_provided"`
	ISPPrice               float64   `gorm:"column:isp_price;not null;default:0"`
	DealStatus             string    `gorm:"column:deal_status;index"`
	ClientID               uint      `gorm:"column:client_id;not null;index"`
	Timestamp              time.Time `gorm:"column:timestamp;autoCreateTime"`
}

func (Internet) TableName() string { return "internet" }
