package services

import (
	"fmt"

	"hotelops/internal/models"
	"hotelops/pkg/apperrors"

	"gorm.io/gorm"
)

// hotelImposible centinela que no coincide con ninguna fila: los ids
// empiezan en 1. Un principal sin alcance resoluble ve cero filas, nunca
// todas.
const hotelImposible = 0

// ScopeHotel devuelve el predicado de acotación por tenant que todo
// servicio de recursos aplica antes de consultar:
//   - hotel activo asignado: solo ese hotel
//   - rol global (ROOT/CORP_VIEWER): sin restricción
//   - membresías presentes: el conjunto de sus hoteles
//   - en cualquier otro caso: el centinela (cero filas)
//
// La columna se califica con la tabla de la entidad para que el predicado
// siga siendo válido cuando la consulta lleva JOINs.
func ScopeHotel(p *models.Principal, tabla string) func(*gorm.DB) *gorm.DB {
	col := fmt.Sprintf("%s.hotel_id", tabla)
	return func(db *gorm.DB) *gorm.DB {
		if p == nil {
			return db.Where(col+" = ?", hotelImposible)
		}
		if p.HotelActivo != nil {
			return db.Where(col+" = ?", *p.HotelActivo)
		}
		if p.Rol.EsGlobal() {
			return db
		}
		if ids := p.HotelIDs(); len(ids) > 0 {
			return db.Where(col+" IN ?", ids)
		}
		return db.Where(col+" = ?", hotelImposible)
	}
}

// CanCreateIn autoriza una mutación de creación bajo el hotel destino:
// ROOT puede en cualquiera; el resto solo dentro de sus membresías.
func CanCreateIn(p *models.Principal, hotelID uint, recurso string) error {
	if p == nil {
		return apperrors.PermissionDenied(fmt.Sprintf("No tienes permiso para crear %s en este hotel.", recurso))
	}
	if p.Rol == models.RolRoot {
		return nil
	}
	if p.EsMiembro(hotelID) {
		return nil
	}
	return apperrors.PermissionDenied(fmt.Sprintf("No tienes permiso para crear %s en este hotel.", recurso))
}

// ResolverHotelDestino determina el hotel de una creación: el hotel activo
// del principal tiene precedencia sobre el id enviado por el cliente.
func ResolverHotelDestino(p *models.Principal, hotelID *uint, recurso string) (uint, error) {
	if p != nil && p.HotelActivo != nil {
		return *p.HotelActivo, nil
	}
	if hotelID != nil && *hotelID > 0 {
		return *hotelID, nil
	}
	return 0, apperrors.Validation(fmt.Sprintf("Se requiere un Hotel para crear %s.", recurso))
}
