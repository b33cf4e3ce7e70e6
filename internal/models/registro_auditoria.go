package models

import (
	"time"

	"gorm.io/datatypes"
)

// Acciones auditables
const (
	AccionCreate             = "CREATE"
	AccionUpdate             = "UPDATE"
	AccionDelete             = "DELETE"
	AccionImport             = "IMPORT"
	AccionLoginFail          = "LOGIN_FAIL"
	AccionUnauthorizedAccess = "UNAUTHORIZED_ACCESS"
)

// RegistroAuditoria entrada inmutable de la bitácora. Solo se inserta:
// nunca se actualiza ni se elimina, por eso no lleva DeletedAt ni UpdatedAt.
type RegistroAuditoria struct {
	ID           uint           `json:"id" gorm:"primarykey"`
	CreatedAt    time.Time      `json:"created_at" gorm:"index"`
	Accion       string         `json:"accion" gorm:"not null;size:30;index"`
	Entidad      string         `json:"entidad" gorm:"not null;size:50;index"`
	EntidadID    uint           `json:"entidadId" gorm:"not null;default:0"`
	UsuarioID    *uint          `json:"usuarioId" gorm:"index"`
	HotelID      *uint          `json:"hotelId" gorm:"index"`
	DatosAntes   datatypes.JSON `json:"datosAntes,omitempty"`
	DatosDespues datatypes.JSON `json:"datosDespues,omitempty"`
	Detalles     string         `json:"detalles" gorm:"size:500"`

	Usuario *UsuarioSistema `json:"usuario,omitempty" gorm:"foreignKey:UsuarioID"`
}

func (r *RegistroAuditoria) TableName() string {
	return "registros_auditoria"
}
