package models

import "gorm.io/gorm"

// Area subdivisión de un departamento. HotelID se desnormaliza para que el
// filtrado por tenant no requiera recorrer la relación.
type Area struct {
	BaseModel
	Nombre         string         `json:"nombre" gorm:"not null;size:100;uniqueIndex:idx_areas_nombre_depto_hotel"`
	DepartamentoID uint           `json:"departamentoId" gorm:"not null;index;uniqueIndex:idx_areas_nombre_depto_hotel"`
	HotelID        uint           `json:"hotelId" gorm:"not null;index;uniqueIndex:idx_areas_nombre_depto_hotel"`
	DeletedAt      gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	Departamento *Departamento `json:"departamento,omitempty" gorm:"foreignKey:DepartamentoID"`
	Hotel        *Hotel        `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
}

func (a *Area) TableName() string {
	return "areas"
}
