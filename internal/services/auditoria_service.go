package services

import (
	"encoding/json"
	"strconv"

	"hotelops/internal/models"
	"hotelops/pkg/apperrors"
	"hotelops/pkg/logger"
	"hotelops/pkg/pagination"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditoriaService bitácora inmutable de operaciones. El registro es de
// mejor esfuerzo: una falla al escribir la bitácora jamás aborta la
// operación de negocio que la acompaña.
type AuditoriaService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewAuditoriaService(db *gorm.DB) *AuditoriaService {
	return &AuditoriaService{
		db:  db,
		log: logger.GetLogger(),
	}
}

// EntradaAuditoria datos de un evento auditable
type EntradaAuditoria struct {
	Accion    string
	Entidad   string
	EntidadID uint
	Antes     interface{}
	Despues   interface{}
	Principal *models.Principal
	Detalles  string
}

// Acciones que se registran sin id de entidad (eventos de seguridad e
// importaciones masivas)
var accionesSinID = map[string]bool{
	models.AccionLoginFail:          true,
	models.AccionUnauthorizedAccess: true,
	models.AccionImport:             true,
}

// Registrar agrega una entrada a la bitácora. Nunca devuelve error al
// llamador: las fallas se registran en el log local y se descartan (un solo
// intento, sin reintentos).
func (s *AuditoriaService) Registrar(e EntradaAuditoria) {
	if e.EntidadID == 0 && !accionesSinID[e.Accion] {
		return
	}

	antes, hotelAntes := snapshot(e.Antes)
	despues, hotelDespues := snapshot(e.Despues)

	// Atribución de hotel: hotel activo del actor, luego el hotel de la
	// entidad resultante, luego el de la entidad previa.
	var hotelID *uint
	if e.Principal != nil && e.Principal.HotelActivo != nil {
		hotelID = e.Principal.HotelActivo
	} else if hotelDespues != nil {
		hotelID = hotelDespues
	} else if hotelAntes != nil {
		hotelID = hotelAntes
	}

	var usuarioID *uint
	if e.Principal != nil && e.Principal.UsuarioID() > 0 {
		id := e.Principal.UsuarioID()
		usuarioID = &id
	}

	registro := models.RegistroAuditoria{
		Accion:       e.Accion,
		Entidad:      e.Entidad,
		EntidadID:    e.EntidadID,
		UsuarioID:    usuarioID,
		HotelID:      hotelID,
		DatosAntes:   antes,
		DatosDespues: despues,
		Detalles:     e.Detalles,
	}

	if err := s.db.Create(&registro).Error; err != nil {
		s.log.WithFields(logrus.Fields{
			"accion":  e.Accion,
			"entidad": e.Entidad,
		}).Warnf("Error al registrar auditoría: %v", err)
	}
}

// snapshot serializa la entidad a JSON para desacoplar la bitácora de
// mutaciones posteriores del objeto vivo, y extrae el hotelId del resultado.
// Los campos sensibles (hash de contraseña) quedan fuera por su etiqueta
// json:"-".
func snapshot(v interface{}) (datatypes.JSON, *uint) {
	if v == nil {
		return nil, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, nil
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return datatypes.JSON(raw), nil
	}

	var hotelID *uint
	if valor, ok := decoded["hotelId"].(float64); ok && valor > 0 {
		id := uint(valor)
		hotelID = &id
	}

	return datatypes.JSON(raw), hotelID
}

// FiltrosAuditoria filtros de consulta de la bitácora. Los valores llegan
// como texto del query string; los literales "undefined", "null" y la cadena
// vacía se tratan como ausentes.
type FiltrosAuditoria struct {
	Entidad   string
	UsuarioID string
	HotelID   string
}

// filtroPresente normaliza el valor textual de un filtro opcional
func filtroPresente(valor string) (string, bool) {
	switch valor {
	case "", "undefined", "null":
		return "", false
	}
	return valor, true
}

// GetRegistros consulta paginada de la bitácora, más reciente primero.
// Lectura de página y conteo en una sola transacción para que el total sea
// consistente con la página devuelta.
func (s *AuditoriaService) GetRegistros(params *pagination.Params, filtros FiltrosAuditoria, p *models.Principal) ([]models.RegistroAuditoria, int64, error) {
	var registros []models.RegistroAuditoria
	var total int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.RegistroAuditoria{})

		// Acotación por tenant: misma regla que cualquier recurso, con la
		// diferencia de que la vista global puede filtrar por hotel.
		if p != nil && p.HotelActivo != nil {
			query = query.Where("registros_auditoria.hotel_id = ?", *p.HotelActivo)
		} else if p != nil && p.Rol.EsGlobal() {
			if valor, ok := filtroPresente(filtros.HotelID); ok {
				if hotelID, err := strconv.ParseUint(valor, 10, 32); err == nil {
					query = query.Where("registros_auditoria.hotel_id = ?", uint(hotelID))
				}
			}
		} else if p != nil && len(p.Hoteles) > 0 {
			query = query.Where("registros_auditoria.hotel_id IN ?", p.HotelIDs())
		} else {
			query = query.Where("registros_auditoria.hotel_id = ?", hotelImposible)
		}

		if valor, ok := filtroPresente(filtros.Entidad); ok {
			query = query.Where("entidad = ?", valor)
		}
		if valor, ok := filtroPresente(filtros.UsuarioID); ok {
			if usuarioID, err := strconv.ParseUint(valor, 10, 32); err == nil {
				query = query.Where("usuario_id = ?", uint(usuarioID))
			}
		}

		if err := query.Count(&total).Error; err != nil {
			return err
		}

		return query.
			Preload("Usuario", func(db *gorm.DB) *gorm.DB {
				return db.Select("id", "username", "nombre", "rol")
			}).
			Order("created_at DESC").
			Offset(params.GetOffset()).
			Limit(params.GetLimit()).
			Find(&registros).Error
	})
	if err != nil {
		return nil, 0, apperrors.FromDB(err)
	}

	return registros, total, nil
}
