package models

type Office struct {
	ID               uint   `gorm:"primaryKey;column:office_id"`
	OfficeName       string `gorm:"column:office_name;not null"`
	OfficeFloor      int    `gorm:"column:office_floor;not null;default:0"`
	StaffNumber      int    `gorm:"column:staff_number;not null;default:0"`
	IndustryCategory string `gorm:"column:industry_category"`
	MoreDataOnOffice string `gorm:"column:more_data_on_office;type:text"`
	BuildingID       uint   `gorm:"column:building_id;not null;index"`
	ClientID         *uint  `gorm:"column:client_id;index"`
}

func (Office) TableName() string { return "buildingoffice" }
