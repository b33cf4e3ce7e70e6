package models

import "gorm.io/gorm"

// Hotel la unidad de aislamiento de datos (tenant)
type Hotel struct {
	BaseModel
	Nombre      string         `json:"nombre" gorm:"not null;size:100"`
	Codigo      string         `json:"codigo" gorm:"not null;size:50;uniqueIndex:uni_hoteles_codigo"`
	Direccion   string         `json:"direccion" gorm:"size:255"`
	Ciudad      string         `json:"ciudad" gorm:"size:100"`
	RazonSocial string         `json:"razonSocial" gorm:"size:150"`
	Diminutivo  string         `json:"diminutivo" gorm:"size:20"`
	Activo      bool           `json:"activo" gorm:"default:true"`
	DeletedAt   gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

func (h *Hotel) TableName() string {
	return "hoteles"
}

// HotelResumen vista mínima de un hotel para membresías y selectores
type HotelResumen struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Codigo string `json:"codigo"`
}
