package models

import "gorm.io/gorm"

// Dispositivo equipo de cómputo inventariado en un hotel
type Dispositivo struct {
	BaseModel
	Nombre             string         `json:"nombre" gorm:"not null;size:150"`
	NumeroSerie        *string        `json:"numero_serie" gorm:"size:100;uniqueIndex:idx_dispositivos_numero_serie_hotel"`
	Etiqueta           *string        `json:"etiqueta" gorm:"size:100;uniqueIndex:idx_dispositivos_etiqueta_hotel"`
	TipoID             *uint          `json:"tipoId" gorm:"index"`
	SistemaOperativoID *uint          `json:"sistemaOperativoId" gorm:"index"`
	EstadoID           *uint          `json:"estadoId" gorm:"index"`
	AreaID             *uint          `json:"areaId" gorm:"index"`
	EmpleadoID         *uint          `json:"empleadoId" gorm:"index"`
	HotelID            uint           `json:"hotelId" gorm:"not null;index;uniqueIndex:idx_dispositivos_numero_serie_hotel;uniqueIndex:idx_dispositivos_etiqueta_hotel"`
	DeletedAt          gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	Tipo             *TipoDispositivo   `json:"tipo,omitempty" gorm:"foreignKey:TipoID"`
	SistemaOperativo *SistemaOperativo  `json:"sistemaOperativo,omitempty" gorm:"foreignKey:SistemaOperativoID"`
	Estado           *EstadoDispositivo `json:"estado,omitempty" gorm:"foreignKey:EstadoID"`
	Area             *Area              `json:"area,omitempty" gorm:"foreignKey:AreaID"`
	Empleado         *Empleado          `json:"empleado,omitempty" gorm:"foreignKey:EmpleadoID"`
	Hotel            *Hotel             `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
}

func (d *Dispositivo) TableName() string {
	return "dispositivos"
}
