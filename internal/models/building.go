package models

// Building é a raiz do agregado Building+Office. ClientID aponta para o
// cliente que cadastrou o prédio (dono para fins de exclusão em cascata).
type Building struct {
	ID                uint   `gorm:"primaryKey;column:building_id"`
	BuildingName      string `gorm:"column:building_name;uniqueIndex;not null"`
	IsFibreSetup      bool   `gorm:"column:is_fibre_setup;not null"`
	EaseOfAccess      int    `gorm:"column:ease_of_access;not null;default:0"`
	AccessInformation string `gorm:"column:access_information;not null"`
	NumberOffices     int    `gorm:"column:number_offices;not null;default:0"`
	ClientID          *uint  `gorm:"column:client_id;index"`

	Offices []Office `gorm:"foreignKey:BuildingID"`
}

func (Building) TableName() string { return "building" }
