package models

import "gorm.io/gorm"

// Departamento unidad organizativa de un hotel
type Departamento struct {
	BaseModel
	Nombre    string         `json:"nombre" gorm:"not null;size:100;uniqueIndex:idx_departamentos_nombre_hotel"`
	HotelID   uint           `json:"hotelId" gorm:"not null;index;uniqueIndex:idx_departamentos_nombre_hotel"`
	DeletedAt gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	Hotel *Hotel `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
}

func (d *Departamento) TableName() string {
	return "departamentos"
}
