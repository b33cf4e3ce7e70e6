package models

import "gorm.io/gorm"

// Empleado miembro del staff de un hotel. No es una cuenta de acceso al
// sistema; ver UsuarioSistema.
type Empleado struct {
	BaseModel
	Nombre       string         `json:"nombre" gorm:"not null;size:150"`
	Correo       *string        `json:"correo" gorm:"size:150"`
	UsuarioLogin *string        `json:"usuario_login" gorm:"size:100;uniqueIndex:idx_empleados_usuario_login_hotel"`
	EsJefeDeArea bool           `json:"es_jefe_de_area" gorm:"default:false"`
	AreaID       *uint          `json:"areaId" gorm:"index"`
	HotelID      uint           `json:"hotelId" gorm:"not null;index;uniqueIndex:idx_empleados_usuario_login_hotel"`
	DeletedAt    gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	Area  *Area  `json:"area,omitempty" gorm:"foreignKey:AreaID"`
	Hotel *Hotel `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
}

func (e *Empleado) TableName() string {
	return "empleados"
}
