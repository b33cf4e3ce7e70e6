package models

import (
	"time"

	"gorm.io/gorm"
)

// Baja registro de disposición final de un equipo
type Baja struct {
	BaseModel
	DispositivoID uint           `json:"dispositivoId" gorm:"not null;index"`
	HotelID       uint           `json:"hotelId" gorm:"not null;index"`
	Motivo        string         `json:"motivo" gorm:"size:300"`
	Observaciones string         `json:"observaciones" gorm:"size:500"`
	Fecha         time.Time      `json:"fecha" gorm:"not null"`
	DeletedAt     gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	Dispositivo *Dispositivo `json:"dispositivo,omitempty" gorm:"foreignKey:DispositivoID"`
	Hotel       *Hotel       `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
}

func (b *Baja) TableName() string {
	return "bajas"
}
