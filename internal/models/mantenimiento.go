package models

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de mantenimiento
const (
	MantenimientoPreventivo = "preventivo"
	MantenimientoCorrectivo = "correctivo"
)

// Mantenimiento intervención programada o realizada sobre un equipo
type Mantenimiento struct {
	BaseModel
	DispositivoID   uint           `json:"dispositivoId" gorm:"not null;index"`
	HotelID         uint           `json:"hotelId" gorm:"not null;index"`
	Tipo            string         `json:"tipo" gorm:"not null;size:30"`
	Descripcion     string         `json:"descripcion" gorm:"size:500"`
	FechaProgramada time.Time      `json:"fechaProgramada" gorm:"not null"`
	FechaRealizada  *time.Time     `json:"fechaRealizada"`
	Tecnico         string         `json:"tecnico" gorm:"size:150"`
	DeletedAt       gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	Dispositivo *Dispositivo `json:"dispositivo,omitempty" gorm:"foreignKey:DispositivoID"`
	Hotel       *Hotel       `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
}

func (m *Mantenimiento) TableName() string {
	return "mantenimientos"
}
