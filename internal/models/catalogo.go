package models

import "gorm.io/gorm"

// Catálogos globales de inventario. No se acotan por hotel.

// TipoDispositivo tipo de equipo (Laptop, Estación, Servidor, AIO)
type TipoDispositivo struct {
	BaseModel
	Nombre    string         `json:"nombre" gorm:"not null;size:100;uniqueIndex:uni_tipos_dispositivo_nombre"`
	DeletedAt gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

func (t *TipoDispositivo) TableName() string {
	return "tipos_dispositivo"
}

// SistemaOperativo sistema operativo de un equipo
type SistemaOperativo struct {
	BaseModel
	Nombre    string         `json:"nombre" gorm:"not null;size:100;uniqueIndex:uni_sistemas_operativos_nombre"`
	DeletedAt gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

func (s *SistemaOperativo) TableName() string {
	return "sistemas_operativos"
}

// EstadoDispositivo estado operativo de un equipo
type EstadoDispositivo struct {
	BaseModel
	Nombre    string         `json:"nombre" gorm:"not null;size:100;uniqueIndex:uni_estados_dispositivo_nombre"`
	DeletedAt gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

func (e *EstadoDispositivo) TableName() string {
	return "estados_dispositivo"
}

// Estados estándar sembrados al inicio
const (
	EstadoActivo       = "Activo"
	EstadoEnReparacion = "En Reparación"
	EstadoInactivo     = "Inactivo"
	EstadoBaja         = "Baja"
)
